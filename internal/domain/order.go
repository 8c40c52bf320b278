package domain

// Order is the immutable snapshot of a completed checkout. Items and
// amounts are copied at checkout time so later cart or price changes
// never alter a past order. IDs are dense and strictly increasing
// starting at 1.
type Order struct {
	ID             int64      `json:"id"`
	UserID         string     `json:"user_id"`
	Items          []CartItem `json:"items"`
	TotalAmount    float64    `json:"total_amount"`
	DiscountCode   string     `json:"discount_code,omitempty"`
	DiscountAmount float64    `json:"discount_amount"`
	FinalAmount    float64    `json:"final_amount"`
}

// Stats is the admin dashboard summary, recomputed from the full
// order history on every request.
type Stats struct {
	TotalOrders         int      `json:"total_orders"`
	TotalItemsPurchased int      `json:"total_items_purchased"`
	TotalPurchaseAmount float64  `json:"total_purchase_amount"`
	DiscountCodes       []string `json:"discount_codes"`
	TotalDiscountAmount float64  `json:"total_discount_amount"`
}
