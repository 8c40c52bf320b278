package cart

import (
	"sync"

	"github.com/Ravi2k3/E-commerce-assessment/internal/domain"
)

// MemoryStore implements Store with in-memory storage. All state is
// volatile for the process lifetime.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]domain.CartItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[string][]domain.CartItem),
	}
}

func (s *MemoryStore) Get(userID string) *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.carts[userID]
	if !ok {
		// Lazy creation: the first read registers the cart.
		s.carts[userID] = []domain.CartItem{}
		items = s.carts[userID]
	}

	snapshot := make([]domain.CartItem, len(items))
	copy(snapshot, items)
	return &domain.Cart{UserID: userID, Items: snapshot}
}

func (s *MemoryStore) Add(userID string, productID int64, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i, line := range items {
		if line.ProductID != productID {
			continue
		}
		q := line.Quantity + delta
		if q <= 0 {
			s.carts[userID] = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = q
		}
		return
	}

	// No existing line: only a positive delta creates one. A cart
	// never holds a zero or negative quantity.
	if delta > 0 {
		s.carts[userID] = append(items, domain.CartItem{ProductID: productID, Quantity: delta})
	}
}

func (s *MemoryStore) Remove(userID string, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	for i, line := range items {
		if line.ProductID == productID {
			s.carts[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotInCart
}

func (s *MemoryStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Emptied, not deleted: the user keeps their cart entry.
	s.carts[userID] = []domain.CartItem{}
}
