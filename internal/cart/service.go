package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/Ravi2k3/E-commerce-assessment/internal/cache"
	"github.com/Ravi2k3/E-commerce-assessment/internal/catalog"
	"github.com/Ravi2k3/E-commerce-assessment/internal/domain"
)

// Service validates cart mutations against the catalog and keeps the
// cache coherent with the store. The store is authoritative; the
// cache is read-through and invalidated on every write.
type Service struct {
	store   Store
	catalog *catalog.Catalog
	cache   cache.CartCache
	log     *zap.Logger
	sfg     singleflight.Group // collapses concurrent cache misses per user
}

func NewService(store Store, cat *catalog.Catalog, cc cache.CartCache, log *zap.Logger) *Service {
	return &Service{
		store:   store,
		catalog: cat,
		cache:   cc,
		log:     log,
	}
}

func (s *Service) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	v, err, _ := s.sfg.Do(userID, func() (interface{}, error) {
		c, err := s.cache.Get(ctx, userID)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.Warn("cart cache get failed", zap.String("user_id", userID), zap.Error(err))
		}

		c = s.store.Get(userID)

		go func() {
			setCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := s.cache.Set(setCtx, userID, c); err != nil {
				s.log.Warn("cart cache set failed", zap.String("user_id", userID), zap.Error(err))
			}
		}()

		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Cart), nil
}

// Snapshot reads the authoritative cart straight from the store,
// bypassing the cache. Checkout must never price a stale cart.
func (s *Service) Snapshot(userID string) *domain.Cart {
	return s.store.Get(userID)
}

// Add applies a quantity delta for the product, creating the line on a
// positive delta and dropping it when the quantity reaches zero.
func (s *Service) Add(ctx context.Context, userID string, productID int64, delta int) error {
	if _, err := s.catalog.Get(productID); err != nil {
		return fmt.Errorf("item %d: %w", productID, err)
	}

	s.store.Add(userID, productID, delta)
	s.invalidate(userID)
	return nil
}

func (s *Service) Remove(ctx context.Context, userID string, productID int64) error {
	if err := s.store.Remove(userID, productID); err != nil {
		return err
	}
	s.invalidate(userID)
	return nil
}

// Clear empties the cart, keeping the user's entry. Called by the
// checkout engine after an order is recorded.
func (s *Service) Clear(ctx context.Context, userID string) {
	s.store.Clear(userID)
	s.invalidate(userID)
}

func (s *Service) invalidate(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, userID); err != nil {
		s.log.Warn("cart cache invalidate failed", zap.String("user_id", userID), zap.Error(err))
	}
}
