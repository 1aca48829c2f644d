package catalog

import "github.com/vastra/commerce-core/internal/domain"

// Seed returns the fixed store catalog in its canonical order. The slice is
// freshly allocated on every call so callers can never alias shared state.
func Seed() []domain.Product {
	return []domain.Product{
		// T-Shirts
		{ID: "tshirt-001", Name: "Classic Black T-Shirt", Description: "Premium 100% cotton black t-shirt, perfect for everyday wear", Price: 499, Currency: domain.CurrencyINR, Category: "tshirt", Color: "black", Size: "M", InStock: true},
		{ID: "tshirt-002", Name: "White Cotton T-Shirt", Description: "Comfortable white cotton t-shirt, wardrobe essential", Price: 449, Currency: domain.CurrencyINR, Category: "tshirt", Color: "white", Size: "L", InStock: true},
		{ID: "tshirt-003", Name: "Navy Blue T-Shirt", Description: "Stylish navy blue t-shirt with modern fit", Price: 549, Currency: domain.CurrencyINR, Category: "tshirt", Color: "blue", Size: "M", InStock: true},
		{ID: "tshirt-004", Name: "Olive Green T-Shirt", Description: "Trendy olive green t-shirt, perfect for casual outings", Price: 499, Currency: domain.CurrencyINR, Category: "tshirt", Color: "green", Size: "L", InStock: true},
		{ID: "tshirt-005", Name: "Striped T-Shirt", Description: "Classic navy and white striped t-shirt", Price: 599, Currency: domain.CurrencyINR, Category: "tshirt", Color: "blue", Size: "M", InStock: true},
		{ID: "tshirt-006", Name: "Graphic Print T-Shirt", Description: "Cool graphic print t-shirt with modern design", Price: 649, Currency: domain.CurrencyINR, Category: "tshirt", Color: "black", Size: "L", InStock: true},

		// Hoodies
		{ID: "hoodie-001", Name: "Black Oversized Hoodie", Description: "Trendy oversized black hoodie with front pocket", Price: 1899, Currency: domain.CurrencyINR, Category: "hoodie", Color: "black", Size: "M", InStock: true},
		{ID: "hoodie-002", Name: "Grey Pullover Hoodie", Description: "Comfortable grey hoodie, perfect for winter", Price: 1799, Currency: domain.CurrencyINR, Category: "hoodie", Color: "grey", Size: "L", InStock: true},
		{ID: "hoodie-003", Name: "Maroon Zip Hoodie", Description: "Stylish maroon zip-up hoodie with fleece lining", Price: 2199, Currency: domain.CurrencyINR, Category: "hoodie", Color: "maroon", Size: "M", InStock: true},
		{ID: "hoodie-004", Name: "Navy Blue Hoodie", Description: "Classic navy blue hoodie with kangaroo pocket", Price: 1849, Currency: domain.CurrencyINR, Category: "hoodie", Color: "blue", Size: "L", InStock: true},
		{ID: "hoodie-005", Name: "Beige Hoodie", Description: "Minimalist beige hoodie, perfect for layering", Price: 1899, Currency: domain.CurrencyINR, Category: "hoodie", Color: "beige", Size: "M", InStock: true},

		// Jeans
		{ID: "jeans-001", Name: "Black Slim Fit Jeans", Description: "Classic black slim fit jeans with stretch", Price: 1499, Currency: domain.CurrencyINR, Category: "jeans", Color: "black", Size: "32", InStock: true},
		{ID: "jeans-002", Name: "Blue Denim Jeans", Description: "Traditional blue denim jeans, regular fit", Price: 1299, Currency: domain.CurrencyINR, Category: "jeans", Color: "blue", Size: "34", InStock: true},
		{ID: "jeans-003", Name: "Dark Grey Jeans", Description: "Modern dark grey jeans with tapered fit", Price: 1599, Currency: domain.CurrencyINR, Category: "jeans", Color: "grey", Size: "32", InStock: true},
		{ID: "jeans-004", Name: "Light Blue Jeans", Description: "Casual light blue denim jeans, relaxed fit", Price: 1399, Currency: domain.CurrencyINR, Category: "jeans", Color: "blue", Size: "34", InStock: true},
		{ID: "jeans-005", Name: "Black Ripped Jeans", Description: "Trendy black ripped jeans with distressed look", Price: 1699, Currency: domain.CurrencyINR, Category: "jeans", Color: "black", Size: "32", InStock: true},

		// Shoes
		{ID: "shoes-001", Name: "White Sneakers", Description: "Classic white sneakers, comfortable for all-day wear", Price: 1299, Currency: domain.CurrencyINR, Category: "shoes", Color: "white", Size: "9", InStock: true},
		{ID: "shoes-002", Name: "Black Running Shoes", Description: "Lightweight black running shoes with cushioned sole", Price: 1599, Currency: domain.CurrencyINR, Category: "shoes", Color: "black", Size: "10", InStock: true},
		{ID: "shoes-003", Name: "Brown Casual Shoes", Description: "Stylish brown casual shoes for everyday wear", Price: 1799, Currency: domain.CurrencyINR, Category: "shoes", Color: "brown", Size: "9", InStock: true},
		{ID: "shoes-004", Name: "Navy Blue Canvas Shoes", Description: "Comfortable navy blue canvas shoes", Price: 999, Currency: domain.CurrencyINR, Category: "shoes", Color: "blue", Size: "8", InStock: true},
		{ID: "shoes-005", Name: "Grey Sports Shoes", Description: "Performance grey sports shoes with breathable mesh", Price: 1899, Currency: domain.CurrencyINR, Category: "shoes", Color: "grey", Size: "10", InStock: true},
		{ID: "shoes-006", Name: "Black Formal Shoes", Description: "Elegant black formal shoes for office wear", Price: 2199, Currency: domain.CurrencyINR, Category: "shoes", Color: "black", Size: "9", InStock: true},
		{ID: "shoes-007", Name: "Tan Loafers", Description: "Comfortable tan loafers, perfect for casual occasions", Price: 1699, Currency: domain.CurrencyINR, Category: "shoes", Color: "brown", Size: "9", InStock: true},
		{ID: "shoes-008", Name: "Red Sneakers", Description: "Bold red sneakers for a sporty look", Price: 1499, Currency: domain.CurrencyINR, Category: "shoes", Color: "red", Size: "10", InStock: true},

		// Accessories
		{ID: "acc-001", Name: "Black Leather Belt", Description: "Classic black leather belt with silver buckle", Price: 599, Currency: domain.CurrencyINR, Category: "accessories", Color: "black", Size: "Free", InStock: true},
		{ID: "acc-002", Name: "Brown Leather Wallet", Description: "Premium brown leather wallet with multiple card slots", Price: 799, Currency: domain.CurrencyINR, Category: "accessories", Color: "brown", Size: "Free", InStock: true},
		{ID: "acc-003", Name: "Black Cap", Description: "Stylish black baseball cap with adjustable strap", Price: 399, Currency: domain.CurrencyINR, Category: "accessories", Color: "black", Size: "Free", InStock: true},
		{ID: "acc-004", Name: "Grey Backpack", Description: "Spacious grey backpack with laptop compartment", Price: 1499, Currency: domain.CurrencyINR, Category: "accessories", Color: "grey", Size: "Free", InStock: true},
		{ID: "acc-005", Name: "Aviator Sunglasses", Description: "Classic aviator sunglasses with UV protection", Price: 899, Currency: domain.CurrencyINR, Category: "accessories", Color: "black", Size: "Free", InStock: true},
		{ID: "acc-006", Name: "White Socks Pack", Description: "Pack of 3 comfortable white cotton socks", Price: 299, Currency: domain.CurrencyINR, Category: "accessories", Color: "white", Size: "Free", InStock: true},

		// Winter collection
		{ID: "jacket-001", Name: "Puffer Jacket Black", Description: "Warm puffer jacket for cold weather", Price: 2999, Currency: domain.CurrencyINR, Category: "winter", Color: "black", Size: "L", InStock: true},
		{ID: "jacket-002", Name: "Denim Jacket Blue", Description: "Classic blue denim jacket, winter essential", Price: 2499, Currency: domain.CurrencyINR, Category: "winter", Color: "blue", Size: "M", InStock: true},
		{ID: "sweater-001", Name: "Wool Sweater Grey", Description: "Cozy grey wool sweater for winter", Price: 1899, Currency: domain.CurrencyINR, Category: "winter", Color: "grey", Size: "L", InStock: true},
		{ID: "sweater-002", Name: "Cardigan Beige", Description: "Comfortable beige cardigan, perfect layering piece", Price: 1699, Currency: domain.CurrencyINR, Category: "winter", Color: "beige", Size: "M", InStock: true},
		{ID: "jacket-003", Name: "Bomber Jacket Olive", Description: "Trendy olive green bomber jacket", Price: 2799, Currency: domain.CurrencyINR, Category: "winter", Color: "green", Size: "L", InStock: true},
		{ID: "sweater-003", Name: "Turtleneck Sweater Black", Description: "Stylish black turtleneck sweater", Price: 1999, Currency: domain.CurrencyINR, Category: "winter", Color: "black", Size: "M", InStock: true},
	}
}
