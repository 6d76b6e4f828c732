package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"wedding-backend/config"
	"wedding-backend/models"
)

func testSettings() InvoiceSettings {
	return InvoiceSettings{
		Company:              config.CompanyInfo{Name: "Wedding Bliss"},
		DefaultBookingAmount: decimal.NewFromInt(2000000),
	}
}

func TestBuildOrderInvoice_ServiceRowTakesRemainder(t *testing.T) {
	created := time.Date(2026, 3, 4, 10, 0, 0, 0, time.Local)
	order := models.Order{
		ID:          42,
		Name:        "Ayu",
		ServiceName: "Paket Gold",
		SelectedItems: datatypes.JSON(`[
			{"name": "Foto", "price": 500000},
			{"item_name": "Kursi", "final_price": "25000", "quantity": 10}
		]`),
		TotalAmount: decimal.NewFromInt(10000000),
		Status:      models.StatusConfirmed,
		CreatedAt:   created,
	}
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.Local)

	inv := testSettings().BuildOrderInvoice(order, nil, now)

	assert.Equal(t, "INV-20260304-00042", inv.Number)
	assert.Equal(t, "order", inv.Kind)
	assert.Equal(t, time.Date(2026, 3, 17, 0, 0, 0, 0, time.Local), inv.DueAt)
	require.Len(t, inv.Lines, 3)
	assert.Equal(t, "Paket Gold", inv.Lines[0].Description)
	assertMoney(t, 9250000, inv.Lines[0].Amount)
	assert.Equal(t, 2, inv.Lines[1].No)
	assert.Equal(t, "Kursi", inv.Lines[2].Description)
	assert.Equal(t, 10, inv.Lines[2].Quantity)
	assertMoney(t, 250000, inv.Lines[2].Amount)
	assertMoney(t, 10000000, inv.Total)
	assertMoney(t, 2000000, inv.BookingAmount)
	assertMoney(t, 8000000, inv.Remaining)
	assert.Nil(t, inv.PaymentMethod)
}

func TestBuildOrderInvoice_StoredBookingAmountWins(t *testing.T) {
	order := models.Order{
		ID:            1,
		TotalAmount:   decimal.NewFromInt(5000000),
		BookingAmount: decimal.NewNullDecimal(decimal.NewFromInt(1000000)),
	}
	pm := &models.PaymentMethod{ID: 3, Name: "BSI"}

	inv := testSettings().BuildOrderInvoice(order, pm, time.Now())

	assertMoney(t, 1000000, inv.BookingAmount)
	assertMoney(t, 4000000, inv.Remaining)
	assert.Equal(t, "Wedding package", inv.Lines[0].Description)
	assert.Equal(t, pm, inv.PaymentMethod)
}

func TestBuildOrderInvoice_MalformedSelectedItems(t *testing.T) {
	order := models.Order{
		ID:            7,
		ServiceName:   "Paket Silver",
		SelectedItems: datatypes.JSON(`"not a list"`),
		TotalAmount:   decimal.NewFromInt(3000000),
	}

	inv := testSettings().BuildOrderInvoice(order, nil, time.Now())

	require.Len(t, inv.Lines, 1)
	assertMoney(t, 3000000, inv.Lines[0].Amount)
}

func TestBuildCustomRequestInvoice(t *testing.T) {
	req := models.CustomRequest{
		ID:        9,
		Name:      "Dimas",
		CreatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.Local),
	}
	b := PriceBreakdown{
		Items: []PricedLine{
			{Name: "Foto", ItemName: "Foto", Price: decimal.NewFromInt(500000)},
			{Name: "Katering", ItemName: "Katering Premium", Price: decimal.NewFromInt(1000000)},
		},
		TotalAmount: decimal.NewFromInt(1500000),
	}

	inv := testSettings().BuildCustomRequestInvoice(req, b, nil, time.Now())

	assert.Equal(t, "CUSTOM-20260102-00009", inv.Number)
	require.Len(t, inv.Lines, 2)
	assert.Equal(t, "Foto", inv.Lines[0].Description)
	assert.Equal(t, "Katering Premium (Katering)", inv.Lines[1].Description)
	assertMoney(t, 1500000, inv.Total)
	assertMoney(t, 0, inv.Remaining)
}

func TestParseOptionalID(t *testing.T) {
	id, err := ParseOptionalID("")
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = ParseOptionalID(" 12 ")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, uint(12), *id)

	_, err = ParseOptionalID("abc")
	assert.Error(t, err)
}

func TestParseSelectedItems_PriceKeyPrecedence(t *testing.T) {
	items := parseSelectedItems([]byte(`[
		{"name": "Dekorasi", "final_price": 0, "item_price": 4000000, "price": 5000000},
		{"name": "Foto", "final_price": "0", "price": 750000, "custom_price": 900000},
		{"name": "MUA", "item_price": "1500000", "price": 1200000},
		{"name": "Band", "price": 0, "custom_price": 2500000},
		{"name": "Souvenir", "final_price": 0, "price": 0}
	]`))

	require.Len(t, items, 5)
	assertMoney(t, 4000000, items[0].price)
	assertMoney(t, 750000, items[1].price)
	assertMoney(t, 1500000, items[2].price)
	assertMoney(t, 2500000, items[3].price)
	assertMoney(t, 0, items[4].price)
}
