package cache

import (
	"context"
	"errors"

	"github.com/Ravi2k3/E-commerce-assessment/internal/domain"
)

var ErrCacheMiss = errors.New("cache miss")

// CartCache is a read-through cache in front of the cart store. The
// store stays authoritative; every cart mutation invalidates the key.
type CartCache interface {
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	Set(ctx context.Context, userID string, cart *domain.Cart) error
	Delete(ctx context.Context, userID string) error
}

// Noop always misses. Used when no Redis address is configured.
type Noop struct{}

func (Noop) Get(context.Context, string) (*domain.Cart, error) { return nil, ErrCacheMiss }
func (Noop) Set(context.Context, string, *domain.Cart) error   { return nil }
func (Noop) Delete(context.Context, string) error              { return nil }
