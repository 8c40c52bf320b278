package checkout

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Ravi2k3/E-commerce-assessment/internal/catalog"
	"github.com/Ravi2k3/E-commerce-assessment/internal/discount"
	"github.com/Ravi2k3/E-commerce-assessment/internal/domain"
	"github.com/Ravi2k3/E-commerce-assessment/internal/orders"
)

var ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

// CartManager is the slice of the cart service checkout needs: an
// authoritative read and the post-order clear.
type CartManager interface {
	Snapshot(userID string) *domain.Cart
	Clear(ctx context.Context, userID string)
}

// Service converts a cart into an immutable order: it prices the cart
// against the catalog, applies an optional single-use discount code,
// appends the order to the ledger and empties the cart.
type Service struct {
	carts    CartManager
	catalog  *catalog.Catalog
	registry *discount.Registry
	ledger   *orders.Ledger
	rate     float64
	log      *zap.Logger
}

func NewService(carts CartManager, cat *catalog.Catalog, registry *discount.Registry, ledger *orders.Ledger, rate float64, log *zap.Logger) *Service {
	return &Service{
		carts:    carts,
		catalog:  cat,
		registry: registry,
		ledger:   ledger,
		rate:     rate,
		log:      log,
	}
}

// Checkout runs the order state machine for one user. All validation
// (non-empty cart, priceable lines, redeemable code) happens before
// any mutation; on failure the ledger, registry and cart are left
// untouched. Code redemption is an atomic check-and-remove, so a code
// raced by two checkouts succeeds exactly once.
func (s *Service) Checkout(ctx context.Context, userID, code string) (domain.Order, error) {
	cart := s.carts.Snapshot(userID)
	if len(cart.Items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	var total float64
	for _, line := range cart.Items {
		p, err := s.catalog.Get(line.ProductID)
		if err != nil {
			// A cart line should never reference a missing product;
			// surface it as a validation failure rather than a fault.
			return domain.Order{}, fmt.Errorf("item %d: %w", line.ProductID, err)
		}
		total += p.Price * float64(line.Quantity)
	}

	var discountAmount float64
	if code != "" {
		// Single use is enforced here: redeeming deletes the code
		// before the order exists, and an invalid code fails the
		// whole checkout instead of being silently ignored.
		if err := s.registry.Redeem(code); err != nil {
			return domain.Order{}, err
		}
		discountAmount = total * s.rate
	}

	items := make([]domain.CartItem, len(cart.Items))
	copy(items, cart.Items)

	order := s.ledger.Append(domain.Order{
		UserID:         userID,
		Items:          items,
		TotalAmount:    total,
		DiscountCode:   code,
		DiscountAmount: discountAmount,
		FinalAmount:    total - discountAmount,
	})

	s.carts.Clear(ctx, userID)

	s.log.Info("checkout completed",
		zap.Int64("order_id", order.ID),
		zap.String("user_id", userID),
		zap.Float64("final_amount", order.FinalAmount),
		zap.Bool("discount_applied", code != ""))
	return order, nil
}

// OrderCount is the global order counter, read from the ledger.
func (s *Service) OrderCount() int {
	return s.ledger.Len()
}

// Stats folds the ledger into the admin summary.
func (s *Service) Stats() domain.Stats {
	return orders.ComputeStats(s.ledger.All())
}
