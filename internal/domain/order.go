package domain

import "time"

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

// String representation (for logging)
func (s OrderStatus) String() string {
	return string(s)
}

// OrderLineItem is an immutable snapshot of one purchased product.
type OrderLineItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	ItemTotal   int64  `json:"item_total"`
}

// Order is immutable once recorded in the ledger.
// IDs follow the ORD-<YYYYMMDD>-<NNNN> format, sequenced per process run.
type Order struct {
	ID        string          `json:"id"`
	Items     []OrderLineItem `json:"items"`
	Total     int64           `json:"total"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"created_at"`
	Status    OrderStatus     `json:"status"`
}
