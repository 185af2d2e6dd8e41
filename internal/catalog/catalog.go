package catalog

import (
	"errors"
	"fmt"

	"github.com/zamtimber/shop/internal/models"
)

var ErrNotFound = errors.New("not found")

// Catalog is the static wood-product listing. Entries are configuration,
// not data: they are loaded once and never mutated.
type Catalog struct {
	products []models.Product
	byID     map[int]models.Product
}

func New(products []models.Product) (*Catalog, error) {
	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		if _, ok := byID[p.ID]; ok {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}, nil
}

// Default returns the catalog shipped with the storefront.
func Default() *Catalog {
	c, err := New(woodProducts)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Product(id int) (models.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return models.Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return p, nil
}

// Filter returns products matching the given type and category. Empty
// arguments match everything.
func (c *Catalog) Filter(woodType, category string) []models.Product {
	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if woodType != "" && p.Type != woodType {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}

var woodProducts = []models.Product{
	{
		ID:          1,
		Name:        "Zambezi Teak",
		Origin:      "Western Province, Zambia",
		Description: "Dense, durable hardwood with a rich reddish-brown grain, prized for flooring and heavy construction.",
		Price:       850,
		PriceUnit:   "cubic meter",
		Type:        models.TypeHardwood,
		Category:    models.CategoryZambian,
		Image:       "/images/products/zambezi-teak.jpg",
	},
	{
		ID:          2,
		Name:        "African Blackwood",
		Origin:      "Southern Tanzania",
		Description: "One of the hardest and most valuable timbers in the world, used for fine instruments and turnery.",
		Price:       2400,
		PriceUnit:   "cubic meter",
		Type:        models.TypeHardwood,
		Category:    models.CategoryAfrican,
		Image:       "/images/products/african-blackwood.jpg",
	},
	{
		ID:          3,
		Name:        "Mukwa",
		Origin:      "Copperbelt Province, Zambia",
		Description: "Warm golden-brown hardwood with excellent workability, a favourite for furniture and joinery.",
		Price:       720,
		PriceUnit:   "cubic meter",
		Type:        models.TypeHardwood,
		Category:    models.CategoryZambian,
		Image:       "/images/products/mukwa.jpg",
	},
	{
		ID:          4,
		Name:        "African Mahogany",
		Origin:      "West Africa",
		Description: "Classic cabinet timber with an even, interlocked grain and a deep reddish lustre.",
		Price:       980,
		PriceUnit:   "cubic meter",
		Type:        models.TypeHardwood,
		Category:    models.CategoryAfrican,
		Image:       "/images/products/african-mahogany.jpg",
	},
	{
		ID:          5,
		Name:        "African Pine",
		Origin:      "Eastern Highlands plantations",
		Description: "Fast-grown plantation softwood, lightweight and versatile for construction and carpentry.",
		Price:       320,
		PriceUnit:   "cubic meter",
		Type:        models.TypeSoftwood,
		Category:    models.CategoryAfrican,
		Image:       "/images/products/african-pine.jpg",
	},
	{
		ID:          6,
		Name:        "Zambian Cedar",
		Origin:      "Northern Province, Zambia",
		Description: "Aromatic softwood with natural insect resistance, suited to cladding and outdoor use.",
		Price:       410,
		PriceUnit:   "cubic meter",
		Type:        models.TypeSoftwood,
		Category:    models.CategoryZambian,
		Image:       "/images/products/zambian-cedar.jpg",
	},
}
