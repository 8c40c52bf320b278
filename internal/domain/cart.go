package domain

// CartItem links a product to how many of it the user wants.
// Quantity is always >= 1; a line that would drop to zero is removed
// from the cart instead.
type CartItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Cart holds one user's pending items. A cart belongs to exactly one
// user and survives checkout empty rather than being deleted.
type Cart struct {
	UserID string     `json:"user_id"`
	Items  []CartItem `json:"items"`
}
