package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Get_CreatesEmptyCart(t *testing.T) {
	store := NewMemoryStore()

	c := store.Get("u1")
	require.NotNil(t, c)
	assert.Equal(t, "u1", c.UserID)
	assert.Empty(t, c.Items)
	assert.NotNil(t, c.Items)
}

func TestMemoryStore_Add_Accumulates(t *testing.T) {
	store := NewMemoryStore()

	store.Add("u1", 1, 2)
	store.Add("u1", 1, 3)

	c := store.Get("u1")
	require.Len(t, c.Items, 1)
	assert.Equal(t, int64(1), c.Items[0].ProductID)
	assert.Equal(t, 5, c.Items[0].Quantity)
}

func TestMemoryStore_Add_NegativeDeltaDecrements(t *testing.T) {
	store := NewMemoryStore()

	store.Add("u1", 1, 5)
	store.Add("u1", 1, -2)

	c := store.Get("u1")
	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestMemoryStore_Add_DeltaToZeroRemovesLine(t *testing.T) {
	store := NewMemoryStore()

	store.Add("u1", 1, 2)
	store.Add("u1", 1, -2)

	assert.Empty(t, store.Get("u1").Items)
}

func TestMemoryStore_Add_DeltaBelowZeroRemovesLine(t *testing.T) {
	store := NewMemoryStore()

	store.Add("u1", 1, 2)
	store.Add("u1", 1, -10)

	assert.Empty(t, store.Get("u1").Items)
}

func TestMemoryStore_Add_NonPositiveDeltaOnMissingLineIsNoop(t *testing.T) {
	store := NewMemoryStore()

	store.Add("u1", 1, 0)
	store.Add("u1", 1, -3)

	assert.Empty(t, store.Get("u1").Items)
}

func TestMemoryStore_Remove(t *testing.T) {
	store := NewMemoryStore()
	store.Add("u1", 1, 2)
	store.Add("u1", 2, 1)

	require.NoError(t, store.Remove("u1", 1))

	c := store.Get("u1")
	require.Len(t, c.Items, 1)
	assert.Equal(t, int64(2), c.Items[0].ProductID)
}

func TestMemoryStore_Remove_NotInCart(t *testing.T) {
	store := NewMemoryStore()

	assert.ErrorIs(t, store.Remove("u1", 1), ErrItemNotInCart)
}

func TestMemoryStore_Clear_KeepsEntry(t *testing.T) {
	store := NewMemoryStore()
	store.Add("u1", 1, 2)

	store.Clear("u1")

	c := store.Get("u1")
	assert.Empty(t, c.Items)
	assert.NotNil(t, c.Items)
}

func TestMemoryStore_Get_ReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	store.Add("u1", 1, 2)

	c := store.Get("u1")
	c.Items[0].Quantity = 99

	assert.Equal(t, 2, store.Get("u1").Items[0].Quantity)
}

func TestMemoryStore_CartsAreIndependent(t *testing.T) {
	store := NewMemoryStore()
	store.Add("u1", 1, 2)
	store.Add("u2", 1, 7)

	assert.Equal(t, 2, store.Get("u1").Items[0].Quantity)
	assert.Equal(t, 7, store.Get("u2").Items[0].Quantity)
}
