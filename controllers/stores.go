package controllers

import (
	"context"
	"mime/multipart"

	"wedding-backend/models"
	"wedding-backend/services"
)

// The interfaces below are what the handlers need from the services
// package; tests swap in mocks.

type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, *models.Admin, error)
}

type StatsProvider interface {
	Stats(ctx context.Context) (services.Stats, error)
}

type CatalogStore interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	CreateService(ctx context.Context, in services.ServiceInput) (uint, error)
	UpdateService(ctx context.Context, id uint, in services.ServiceInput) error
	DeleteService(ctx context.Context, id uint) error
	ListServiceItems(ctx context.Context, serviceID uint) ([]services.ServiceItemView, error)
	AddServiceItem(ctx context.Context, serviceID uint, in services.ServiceItemInput) (uint, error)
	UpdateServiceItem(ctx context.Context, id uint, in services.ServiceItemInput) error
	DeleteServiceItem(ctx context.Context, id uint) error
}

type ItemStore interface {
	ListActive(ctx context.Context) ([]models.Item, error)
	Categories(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id uint) (*models.Item, error)
	Create(ctx context.Context, in services.ItemInput) (uint, error)
	Update(ctx context.Context, id uint, in services.ItemInput) error
	Delete(ctx context.Context, id uint) error
	AddImages(ctx context.Context, id uint, files []*multipart.FileHeader) ([]string, error)
	RemoveImage(ctx context.Context, id uint, filename string) ([]string, error)
}

type ImageSaver interface {
	SaveUpload(fh *multipart.FileHeader) (string, error)
}

type OrderStore interface {
	Create(ctx context.Context, in services.OrderInput) (*models.Order, error)
	List(ctx context.Context, f services.ListFilter) ([]models.Order, int64, error)
	Get(ctx context.Context, id uint) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type CustomRequestStore interface {
	Create(ctx context.Context, in services.CustomRequestInput) (*models.CustomRequest, error)
	Quote(ctx context.Context, servicesText string) services.PriceBreakdown
	List(ctx context.Context, f services.ListFilter) ([]services.CustomRequestView, int64, error)
	Get(ctx context.Context, id uint) (*services.CustomRequestView, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type InvoiceBuilder interface {
	ForOrder(ctx context.Context, id uint, paymentMethodID *uint) (*services.Invoice, error)
	ForCustomRequest(ctx context.Context, id uint, paymentMethodID *uint) (*services.Invoice, error)
}

type PaymentMethodStore interface {
	List(ctx context.Context) ([]models.PaymentMethod, error)
	Create(ctx context.Context, in services.PaymentMethodInput) (uint, error)
	Update(ctx context.Context, id uint, in services.PaymentMethodInput) error
	Delete(ctx context.Context, id uint) error
}

type ArticleStore interface {
	List(ctx context.Context) ([]models.Article, error)
	Get(ctx context.Context, id uint) (*models.Article, error)
	Create(ctx context.Context, in services.ArticleInput) (uint, error)
	Update(ctx context.Context, id uint, in services.ArticleInput) error
	Delete(ctx context.Context, id uint) error
}

type GalleryStore interface {
	ListCategories(ctx context.Context) ([]models.GalleryCategory, error)
	CreateCategory(ctx context.Context, in services.GalleryCategoryInput) (uint, error)
	UpdateCategory(ctx context.Context, id uint, in services.GalleryCategoryInput) error
	DeleteCategory(ctx context.Context, id uint) error
	ListImages(ctx context.Context, f services.GalleryFilter) ([]models.GalleryImageView, error)
	GetImage(ctx context.Context, id uint) (*models.GalleryImageView, error)
	CreateImage(ctx context.Context, in services.GalleryImageInput) (uint, error)
	UpdateImage(ctx context.Context, id uint, in services.GalleryImageInput) error
	DeleteImage(ctx context.Context, id uint) error
}

type ContentStore interface {
	ListSections(ctx context.Context, activeOnly bool) ([]models.ContentSection, error)
	GetSection(ctx context.Context, name string) (*models.ContentSection, error)
	CreateSection(ctx context.Context, in services.ContentSectionInput) (uint, error)
	UpdateSection(ctx context.Context, id uint, in services.ContentSectionInput) error
	DeleteSection(ctx context.Context, id uint) error
	ListFeatures(ctx context.Context, activeOnly bool) ([]models.ServiceFeature, error)
	CreateFeature(ctx context.Context, in services.ServiceFeatureInput) (uint, error)
	UpdateFeature(ctx context.Context, id uint, in services.ServiceFeatureInput) error
	DeleteFeature(ctx context.Context, id uint) error
}

type ContactStore interface {
	Create(ctx context.Context, in services.ContactInput) (*models.ContactMessage, error)
	List(ctx context.Context, f services.ListFilter) ([]models.ContactMessage, int64, error)
	Delete(ctx context.Context, id uint) error
}

type SuratJalanStore interface {
	List(ctx context.Context) ([]models.SuratJalan, error)
	Get(ctx context.Context, id uint) (*models.SuratJalan, error)
	Create(ctx context.Context, in services.SuratJalanInput, files services.SuratJalanFiles) (uint, error)
	Update(ctx context.Context, id uint, in services.SuratJalanInput, files services.SuratJalanFiles) error
	Delete(ctx context.Context, id uint) error
}

// Publisher pushes events to connected admin dashboards.
type Publisher interface {
	Publish(eventType string, payload any)
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, any) {}

func publisherOrNop(p Publisher) Publisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}
