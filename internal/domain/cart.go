package domain

// CartItem is one line of a cart. Name and unit price are snapshotted when
// the product is first added and are never refreshed on later additions.
type CartItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity"`
}

// CartSummary is a value snapshot of the cart: mutating it never touches
// the live cart. ItemCount is the number of lines, not the summed quantity.
type CartSummary struct {
	Items     []CartItem `json:"items"`
	Total     int64      `json:"total"`
	Currency  string     `json:"currency"`
	ItemCount int        `json:"item_count"`
}
