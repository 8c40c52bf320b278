package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ravi2k3/E-commerce-assessment/internal/domain"
)

func TestCatalog_Get(t *testing.T) {
	cat := New(Seed())

	p, err := cat.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Wireless Noise-Canceling Headphones", p.Name)
	assert.Equal(t, 299.99, p.Price)
}

func TestCatalog_Get_NotFound(t *testing.T) {
	cat := New(Seed())

	_, err := cat.Get(999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalog_List_OrderedByID(t *testing.T) {
	cat := New([]domain.Product{
		{ID: 3, Name: "c", Price: 3},
		{ID: 1, Name: "a", Price: 1},
		{ID: 2, Name: "b", Price: 2},
	})

	list := cat.List()
	require.Len(t, list, 3)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(2), list[1].ID)
	assert.Equal(t, int64(3), list[2].ID)
}

func TestSeed_HasTenProducts(t *testing.T) {
	products := Seed()
	assert.Len(t, products, 10)
	for _, p := range products {
		assert.GreaterOrEqual(t, p.Price, 0.0)
		assert.NotEmpty(t, p.Name)
	}
}
