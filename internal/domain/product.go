package domain

// Product is a catalog entry. Created once at seed time and never
// mutated afterwards; orders snapshot prices so later catalog changes
// (there are none today) could not rewrite history anyway.
type Product struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"original_price,omitempty"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	Stock         int      `json:"stock"`
	Sale          bool     `json:"sale,omitempty"`
}
