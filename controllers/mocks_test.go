package controllers

import (
	"context"
	"mime/multipart"
	"sync"

	"github.com/stretchr/testify/mock"

	"wedding-backend/models"
	"wedding-backend/services"
)

type catalogStoreMock struct{ mock.Mock }

func (m *catalogStoreMock) ListServices(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Service)
	return list, args.Error(1)
}

func (m *catalogStoreMock) GetService(ctx context.Context, id uint) (*models.Service, error) {
	args := m.Called(ctx, id)
	svc, _ := args.Get(0).(*models.Service)
	return svc, args.Error(1)
}

func (m *catalogStoreMock) CreateService(ctx context.Context, in services.ServiceInput) (uint, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(uint), args.Error(1)
}

func (m *catalogStoreMock) UpdateService(ctx context.Context, id uint, in services.ServiceInput) error {
	return m.Called(ctx, id, in).Error(0)
}

func (m *catalogStoreMock) DeleteService(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *catalogStoreMock) ListServiceItems(ctx context.Context, serviceID uint) ([]services.ServiceItemView, error) {
	args := m.Called(ctx, serviceID)
	list, _ := args.Get(0).([]services.ServiceItemView)
	return list, args.Error(1)
}

func (m *catalogStoreMock) AddServiceItem(ctx context.Context, serviceID uint, in services.ServiceItemInput) (uint, error) {
	args := m.Called(ctx, serviceID, in)
	return args.Get(0).(uint), args.Error(1)
}

func (m *catalogStoreMock) UpdateServiceItem(ctx context.Context, id uint, in services.ServiceItemInput) error {
	return m.Called(ctx, id, in).Error(0)
}

func (m *catalogStoreMock) DeleteServiceItem(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type itemStoreMock struct{ mock.Mock }

func (m *itemStoreMock) ListActive(ctx context.Context) ([]models.Item, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.Item)
	return list, args.Error(1)
}

func (m *itemStoreMock) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]string)
	return list, args.Error(1)
}

func (m *itemStoreMock) Get(ctx context.Context, id uint) (*models.Item, error) {
	args := m.Called(ctx, id)
	it, _ := args.Get(0).(*models.Item)
	return it, args.Error(1)
}

func (m *itemStoreMock) Create(ctx context.Context, in services.ItemInput) (uint, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(uint), args.Error(1)
}

func (m *itemStoreMock) Update(ctx context.Context, id uint, in services.ItemInput) error {
	return m.Called(ctx, id, in).Error(0)
}

func (m *itemStoreMock) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *itemStoreMock) AddImages(ctx context.Context, id uint, files []*multipart.FileHeader) ([]string, error) {
	args := m.Called(ctx, id, files)
	list, _ := args.Get(0).([]string)
	return list, args.Error(1)
}

func (m *itemStoreMock) RemoveImage(ctx context.Context, id uint, filename string) ([]string, error) {
	args := m.Called(ctx, id, filename)
	list, _ := args.Get(0).([]string)
	return list, args.Error(1)
}

type orderStoreMock struct{ mock.Mock }

func (m *orderStoreMock) Create(ctx context.Context, in services.OrderInput) (*models.Order, error) {
	args := m.Called(ctx, in)
	o, _ := args.Get(0).(*models.Order)
	return o, args.Error(1)
}

func (m *orderStoreMock) List(ctx context.Context, f services.ListFilter) ([]models.Order, int64, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]models.Order)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *orderStoreMock) Get(ctx context.Context, id uint) (*models.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*models.Order)
	return o, args.Error(1)
}

func (m *orderStoreMock) UpdateStatus(ctx context.Context, id uint, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *orderStoreMock) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type customRequestStoreMock struct{ mock.Mock }

func (m *customRequestStoreMock) Create(ctx context.Context, in services.CustomRequestInput) (*models.CustomRequest, error) {
	args := m.Called(ctx, in)
	r, _ := args.Get(0).(*models.CustomRequest)
	return r, args.Error(1)
}

func (m *customRequestStoreMock) Quote(ctx context.Context, servicesText string) services.PriceBreakdown {
	return m.Called(ctx, servicesText).Get(0).(services.PriceBreakdown)
}

func (m *customRequestStoreMock) List(ctx context.Context, f services.ListFilter) ([]services.CustomRequestView, int64, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]services.CustomRequestView)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *customRequestStoreMock) Get(ctx context.Context, id uint) (*services.CustomRequestView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*services.CustomRequestView)
	return v, args.Error(1)
}

func (m *customRequestStoreMock) UpdateStatus(ctx context.Context, id uint, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *customRequestStoreMock) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type invoiceBuilderMock struct{ mock.Mock }

func (m *invoiceBuilderMock) ForOrder(ctx context.Context, id uint, pmID *uint) (*services.Invoice, error) {
	args := m.Called(ctx, id, pmID)
	inv, _ := args.Get(0).(*services.Invoice)
	return inv, args.Error(1)
}

func (m *invoiceBuilderMock) ForCustomRequest(ctx context.Context, id uint, pmID *uint) (*services.Invoice, error) {
	args := m.Called(ctx, id, pmID)
	inv, _ := args.Get(0).(*services.Invoice)
	return inv, args.Error(1)
}

// recordingPublisher keeps published event types in order.
type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(eventType string, _ any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
}

func (p *recordingPublisher) Events() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

var (
	_ CatalogStore       = (*catalogStoreMock)(nil)
	_ ItemStore          = (*itemStoreMock)(nil)
	_ OrderStore         = (*orderStoreMock)(nil)
	_ CustomRequestStore = (*customRequestStoreMock)(nil)
	_ InvoiceBuilder     = (*invoiceBuilderMock)(nil)
	_ Publisher          = (*recordingPublisher)(nil)
)
