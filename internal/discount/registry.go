package discount

import (
	"errors"
	"sync"
)

var ErrInvalidDiscountCode = errors.New("invalid discount code")

// Registry holds the currently redeemable codes. Presence means
// redeemable: a redeemed code is deleted, never kept in a used state,
// which is what enforces single use.
type Registry struct {
	mu    sync.Mutex
	codes map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{codes: make(map[string]struct{})}
}

// IsRedeemable reports whether the code can currently be redeemed.
func (r *Registry) IsRedeemable(code string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.codes[code]
	return ok
}

// Issue makes the code redeemable, overwriting any prior entry with
// the same string.
func (r *Registry) Issue(code string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes[code] = struct{}{}
}

// Redeem consumes the code. The check and the removal happen under
// one lock, so two concurrent redemptions of the same code produce
// exactly one success.
func (r *Registry) Redeem(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.codes[code]; !ok {
		return ErrInvalidDiscountCode
	}
	delete(r.codes, code)
	return nil
}
