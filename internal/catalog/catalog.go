package catalog

import (
	"errors"
	"sort"

	"github.com/Ravi2k3/E-commerce-assessment/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// Catalog is the read-only product listing. It is fully populated by
// New and never mutated afterwards, so lookups need no locking.
type Catalog struct {
	products map[int64]domain.Product
	ids      []int64
}

func New(products []domain.Product) *Catalog {
	c := &Catalog{
		products: make(map[int64]domain.Product, len(products)),
		ids:      make([]int64, 0, len(products)),
	}
	for _, p := range products {
		if _, exists := c.products[p.ID]; !exists {
			c.ids = append(c.ids, p.ID)
		}
		c.products[p.ID] = p
	}
	sort.Slice(c.ids, func(i, j int) bool { return c.ids[i] < c.ids[j] })
	return c
}

// Get returns the product with the given ID or ErrProductNotFound.
func (c *Catalog) Get(id int64) (domain.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return p, nil
}

// List returns all products in ascending ID order.
func (c *Catalog) List() []domain.Product {
	out := make([]domain.Product, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.products[id])
	}
	return out
}
