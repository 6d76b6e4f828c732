package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"wedding-backend/config"
	"wedding-backend/models"
)

const invoiceDueDays = 7

type InvoiceLine struct {
	No          int             `json:"no"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

type BillTo struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address,omitempty"`
	WeddingDate time.Time `json:"wedding_date"`
}

// Invoice is everything the admin UI needs to render a printable invoice.
type Invoice struct {
	Number        string                `json:"invoice_number"`
	Kind          string                `json:"kind"`
	SourceID      uint                  `json:"source_id"`
	Status        string                `json:"status"`
	IssuedAt      time.Time             `json:"issued_at"`
	DueAt         time.Time             `json:"due_at"`
	Company       config.CompanyInfo    `json:"company"`
	BillTo        BillTo                `json:"bill_to"`
	Lines         []InvoiceLine         `json:"lines"`
	Total         decimal.Decimal       `json:"total"`
	BookingAmount decimal.Decimal       `json:"booking_amount"`
	Remaining     decimal.Decimal       `json:"remaining"`
	PaymentMethod *models.PaymentMethod `json:"payment_method"`
}

// InvoiceSettings are the fixed parts of every invoice.
type InvoiceSettings struct {
	Company              config.CompanyInfo
	DefaultBookingAmount decimal.Decimal
}

func (st InvoiceSettings) newInvoice(kind, prefix string, id uint, created, now time.Time, booking decimal.NullDecimal, pm *models.PaymentMethod) Invoice {
	issued := startOfDay(now)
	inv := Invoice{
		Number:        fmt.Sprintf("%s-%s-%05d", prefix, created.Format("20060102"), id),
		Kind:          kind,
		SourceID:      id,
		IssuedAt:      issued,
		DueAt:         issued.AddDate(0, 0, invoiceDueDays),
		Company:       st.Company,
		Lines:         []InvoiceLine{},
		BookingAmount: st.DefaultBookingAmount,
		PaymentMethod: pm,
	}
	if booking.Valid {
		inv.BookingAmount = booking.Decimal
	}
	return inv
}

func (inv *Invoice) addLine(desc string, qty int, unit decimal.Decimal) {
	inv.Lines = append(inv.Lines, InvoiceLine{
		No:          len(inv.Lines) + 1,
		Description: desc,
		Quantity:    qty,
		UnitPrice:   unit,
		Amount:      unit.Mul(decimal.NewFromInt(int64(qty))),
	})
}

// finish sets the total; the remaining balance never goes below zero.
func (inv *Invoice) finish(total decimal.Decimal) {
	inv.Total = total
	inv.Remaining = decimal.Max(total.Sub(inv.BookingAmount), decimal.Zero)
}

// BuildOrderInvoice lists the service first, then each selected item. The
// service row carries whatever part of the stored total the items do not
// account for, so the lines add up to total_amount when they can.
func (st InvoiceSettings) BuildOrderInvoice(o models.Order, pm *models.PaymentMethod, now time.Time) Invoice {
	inv := st.newInvoice("order", "INV", o.ID, o.CreatedAt, now, o.BookingAmount, pm)
	inv.Status = o.Status
	inv.BillTo = BillTo{Name: o.Name, Email: o.Email, Phone: o.Phone, Address: o.Address, WeddingDate: o.WeddingDate}

	items := parseSelectedItems(o.SelectedItems)
	itemsTotal := decimal.Zero
	for _, it := range items {
		itemsTotal = itemsTotal.Add(it.price.Mul(decimal.NewFromInt(int64(it.quantity))))
	}

	serviceName := strings.TrimSpace(o.ServiceName)
	if serviceName == "" {
		serviceName = "Wedding package"
	}
	servicePrice := o.TotalAmount.Sub(itemsTotal)
	if servicePrice.IsNegative() {
		servicePrice = decimal.Zero
	}
	inv.addLine(serviceName, 1, servicePrice)
	for _, it := range items {
		inv.addLine(it.name, it.quantity, it.price)
	}

	inv.finish(o.TotalAmount)
	return inv
}

// BuildCustomRequestInvoice uses the resolved catalog prices as lines.
func (st InvoiceSettings) BuildCustomRequestInvoice(r models.CustomRequest, b PriceBreakdown, pm *models.PaymentMethod, now time.Time) Invoice {
	inv := st.newInvoice("custom_request", "CUSTOM", r.ID, r.CreatedAt, now, r.BookingAmount, pm)
	inv.Status = r.Status
	inv.BillTo = BillTo{Name: r.Name, Email: r.Email, Phone: r.Phone, WeddingDate: r.WeddingDate}

	for _, line := range b.Items {
		desc := line.ItemName
		if line.ItemName != line.Name {
			desc = fmt.Sprintf("%s (%s)", line.ItemName, line.Name)
		}
		inv.addLine(desc, 1, line.Price)
	}

	inv.finish(b.TotalAmount)
	return inv
}

type selectedItem struct {
	name     string
	price    decimal.Decimal
	quantity int
}

// parseSelectedItems reads the storefront's free-form selected_items JSON.
// Unreadable entries are skipped.
func parseSelectedItems(raw []byte) []selectedItem {
	var entries []map[string]any
	if len(raw) == 0 || json.Unmarshal(raw, &entries) != nil {
		return nil
	}

	out := make([]selectedItem, 0, len(entries))
	for _, e := range entries {
		name := firstString(e, "name", "item_name", "title")
		if name == "" {
			name = "Item"
		}
		qty := int(firstDecimal(e, "quantity", "qty").IntPart())
		if qty < 1 {
			qty = 1
		}
		out = append(out, selectedItem{
			name:     name,
			price:    firstDecimal(e, "final_price", "item_price", "price", "custom_price"),
			quantity: qty,
		})
	}
	return out
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// firstDecimal returns the first non-zero numeric value among keys.
func firstDecimal(m map[string]any, keys ...string) decimal.Decimal {
	for _, k := range keys {
		var d decimal.Decimal
		switch v := m[k].(type) {
		case float64:
			d = decimal.NewFromFloat(v)
		case string:
			parsed, err := decimal.NewFromString(strings.TrimSpace(v))
			if err != nil {
				continue
			}
			d = parsed
		case json.Number:
			parsed, err := decimal.NewFromString(v.String())
			if err != nil {
				continue
			}
			d = parsed
		default:
			continue
		}
		if !d.IsZero() {
			return d
		}
	}
	return decimal.Zero
}

// InvoiceService loads the source rows and payment method for an invoice.
type InvoiceService struct {
	DB       *gorm.DB
	Orders   *OrderService
	Requests *CustomRequestService
	Settings InvoiceSettings
	Now      func() time.Time
}

func NewInvoiceService(db *gorm.DB, orders *OrderService, requests *CustomRequestService, settings InvoiceSettings) *InvoiceService {
	return &InvoiceService{DB: db, Orders: orders, Requests: requests, Settings: settings, Now: time.Now}
}

func (s *InvoiceService) ForOrder(ctx context.Context, id uint, paymentMethodID *uint) (*Invoice, error) {
	order, err := s.Orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	pm, err := s.paymentMethod(ctx, paymentMethodID)
	if err != nil {
		return nil, err
	}
	inv := s.Settings.BuildOrderInvoice(*order, pm, s.Now())
	return &inv, nil
}

func (s *InvoiceService) ForCustomRequest(ctx context.Context, id uint, paymentMethodID *uint) (*Invoice, error) {
	view, err := s.Requests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	pm, err := s.paymentMethod(ctx, paymentMethodID)
	if err != nil {
		return nil, err
	}
	b := PriceBreakdown{Items: view.Items, TotalAmount: view.TotalAmount}
	inv := s.Settings.BuildCustomRequestInvoice(view.CustomRequest, b, pm, s.Now())
	return &inv, nil
}

// paymentMethod returns the requested method, else the first configured
// one, else nil.
func (s *InvoiceService) paymentMethod(ctx context.Context, id *uint) (*models.PaymentMethod, error) {
	var pm models.PaymentMethod
	db := s.DB.WithContext(ctx)
	if id != nil {
		if err := db.First(&pm, *id).Error; err != nil {
			return nil, notFoundAs(err, ErrPaymentMethodNotFound)
		}
		return &pm, nil
	}

	var methods []models.PaymentMethod
	if err := db.Order("id").Limit(1).Find(&methods).Error; err != nil {
		return nil, err
	}
	if len(methods) == 0 {
		return nil, nil
	}
	return &methods[0], nil
}

// ParseOptionalID reads an optional numeric query value such as
// ?payment_method_id=.
func ParseOptionalID(raw string) (*uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return nil, fmt.Errorf("%w %q", ErrInvalidID, raw)
	}
	id := uint(v)
	return &id, nil
}
