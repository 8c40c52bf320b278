package cart

import (
	"errors"

	"github.com/Ravi2k3/E-commerce-assessment/internal/domain"
)

var ErrItemNotInCart = errors.New("item not in cart")

// Store is the authoritative cart state. Implementations must keep at
// most one line per product and never hold a line with quantity <= 0.
type Store interface {
	// Get returns a copy of the user's cart, creating an empty one on
	// first reference.
	Get(userID string) *domain.Cart

	// Add applies a quantity delta to the product's line. A negative
	// delta decrements; a line driven to zero or below is removed. A
	// non-positive delta against a missing line is a no-op.
	Add(userID string, productID int64, delta int)

	// Remove deletes the product's line entirely. Returns
	// ErrItemNotInCart if the user has no such line.
	Remove(userID string, productID int64) error

	// Clear empties the cart but keeps the user's entry.
	Clear(userID string)
}
