package models

import "github.com/shopspring/decimal"

// CartLine is one product/quantity pair in the cart. Quantity stays
// positive while the line exists; a line that would reach zero is removed.
// The product reference is not enforced against the catalog, so a line can
// outlive its product.
type CartLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartItem is a cart line joined with its live catalog record and priced
// for display.
type CartItem struct {
	Product
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"totalPrice"`
}

// CartView is the materialized cart. CartCount is the number of distinct
// lines, not the summed unit quantity.
type CartView struct {
	Items     []CartItem      `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	CartCount int             `json:"cartCount"`
}
