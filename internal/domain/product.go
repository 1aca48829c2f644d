package domain

// CurrencyINR is the currency code every catalog product is priced in.
const CurrencyINR = "INR"

// Product is a single catalog entry. Prices are integers in minor currency
// units (paise for INR); no floating-point money anywhere.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Currency    string `json:"currency"`
	Category    string `json:"category"`
	Color       string `json:"color"`
	Size        string `json:"size"`
	InStock     bool   `json:"in_stock"`
}
