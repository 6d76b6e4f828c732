package services

import (
	"context"
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"wedding-backend/models"
	"wedding-backend/utils"
)

// PricedLine is one requested service name resolved against the catalog.
type PricedLine struct {
	Name     string          `json:"name"`
	ItemName string          `json:"item_name"`
	Price    decimal.Decimal `json:"price"`
}

type PriceBreakdown struct {
	Items       []PricedLine    `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

func emptyBreakdown() PriceBreakdown {
	return PriceBreakdown{Items: []PricedLine{}, TotalAmount: decimal.Zero}
}

// ItemCatalog looks up active items for one requested name.
// Each finder returns (nil, nil) when nothing matches.
type ItemCatalog interface {
	FindExact(ctx context.Context, name string) (*models.Item, error)
	FindContaining(ctx context.Context, token string) (*models.Item, error)
	FindContainedIn(ctx context.Context, token string) (*models.Item, error)
}

// PriceResolver prices the comma separated services string of a custom
// request. Results are computed on every call and never stored, so catalog
// price changes show up on the next read.
type PriceResolver struct {
	Catalog ItemCatalog
}

func NewPriceResolver(catalog ItemCatalog) *PriceResolver {
	return &PriceResolver{Catalog: catalog}
}

// Resolve never fails: a lookup error empties the whole breakdown and is
// only logged.
func (r *PriceResolver) Resolve(ctx context.Context, services string) PriceBreakdown {
	out, err := r.resolve(ctx, services)
	if err != nil {
		log.Printf("❌ price resolution for %q failed: %v", services, err)
		return emptyBreakdown()
	}
	return out
}

func (r *PriceResolver) resolve(ctx context.Context, services string) (PriceBreakdown, error) {
	out := emptyBreakdown()
	for _, token := range utils.SplitCSV(services) {
		item, err := r.match(ctx, token)
		if err != nil {
			return PriceBreakdown{}, err
		}

		line := PricedLine{Name: token, ItemName: token, Price: decimal.Zero}
		if item != nil {
			line.ItemName = item.Name
			line.Price = item.Price
		}
		out.Items = append(out.Items, line)
		out.TotalAmount = out.TotalAmount.Add(line.Price)
	}
	return out, nil
}

// match tries exact, then substring, then reverse containment.
func (r *PriceResolver) match(ctx context.Context, token string) (*models.Item, error) {
	finders := []func(context.Context, string) (*models.Item, error){
		r.Catalog.FindExact,
		r.Catalog.FindContaining,
		r.Catalog.FindContainedIn,
	}
	for _, find := range finders {
		item, err := find(ctx, token)
		if err != nil || item != nil {
			return item, err
		}
	}
	return nil, nil
}

// GormItemCatalog runs the three lookups against the items table.
type GormItemCatalog struct {
	DB *gorm.DB
}

func NewGormItemCatalog(db *gorm.DB) *GormItemCatalog {
	return &GormItemCatalog{DB: db}
}

func (c *GormItemCatalog) FindExact(ctx context.Context, name string) (*models.Item, error) {
	q := c.active(ctx).Where("BINARY name = ?", name).Order("id")
	return firstItem(q)
}

// FindContaining prefers the shortest matching name, then the lowest id.
func (c *GormItemCatalog) FindContaining(ctx context.Context, token string) (*models.Item, error) {
	pattern := "%" + escapeLike(strings.ToLower(token)) + "%"
	q := c.active(ctx).Where("LOWER(name) LIKE ?", pattern).Order("CHAR_LENGTH(name), id")
	return firstItem(q)
}

// FindContainedIn prefers the longest item name found inside the token.
func (c *GormItemCatalog) FindContainedIn(ctx context.Context, token string) (*models.Item, error) {
	q := c.active(ctx).
		Where("name <> '' AND LOCATE(LOWER(name), ?) > 0", strings.ToLower(token)).
		Order("CHAR_LENGTH(name) DESC, id")
	return firstItem(q)
}

func (c *GormItemCatalog) active(ctx context.Context) *gorm.DB {
	return c.DB.WithContext(ctx).Model(&models.Item{}).Where("is_active = ?", true)
}

func firstItem(q *gorm.DB) (*models.Item, error) {
	var items []models.Item
	if err := q.Limit(1).Find(&items).Error; err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes token match literally inside a LIKE pattern.
func escapeLike(token string) string {
	return likeEscaper.Replace(token)
}
