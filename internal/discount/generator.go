package discount

import (
	"fmt"

	"go.uber.org/zap"
)

// codePrefix is fixed; the suffix is the order count at issue time, so
// codes are deterministic and re-triggering at the same count reissues
// the same code.
const codePrefix = "DISCOUNT10-"

// Generator mints a new code into the registry every time the order
// count lands on a milestone. It is polled on demand (the admin
// endpoint), never invoked automatically by checkout.
type Generator struct {
	registry  *Registry
	milestone int
	log       *zap.Logger
}

func NewGenerator(registry *Registry, milestone int, log *zap.Logger) *Generator {
	return &Generator{
		registry:  registry,
		milestone: milestone,
		log:       log,
	}
}

// Generate fires iff orderCount is a positive multiple of the
// milestone. When it fires it issues the code and returns it; the
// second return reports whether the condition was met.
func (g *Generator) Generate(orderCount int) (string, bool) {
	if orderCount <= 0 || orderCount%g.milestone != 0 {
		return "", false
	}

	code := fmt.Sprintf("%s%d", codePrefix, orderCount)
	g.registry.Issue(code)
	g.log.Info("discount code issued",
		zap.String("code", code),
		zap.Int("order_count", orderCount))
	return code, true
}
