package orders

import "github.com/Ravi2k3/E-commerce-assessment/internal/domain"

// ComputeStats folds the full order history into the admin summary.
// No caching: the history is bounded by process memory, so a linear
// pass per request is fine.
func ComputeStats(history []domain.Order) domain.Stats {
	stats := domain.Stats{
		TotalOrders:   len(history),
		DiscountCodes: []string{},
	}

	for _, order := range history {
		for _, line := range order.Items {
			stats.TotalItemsPurchased += line.Quantity
		}
		stats.TotalPurchaseAmount += order.FinalAmount
		stats.TotalDiscountAmount += order.DiscountAmount
		if order.DiscountCode != "" {
			stats.DiscountCodes = append(stats.DiscountCodes, order.DiscountCode)
		}
	}
	return stats
}
