package models

import "github.com/shopspring/decimal"

// Category groups products for browsing and for catalog id generation.
type Category string

const (
	CategoryBird Category = "Bird"
	CategoryCat  Category = "Cat"
	CategoryDog  Category = "Dog"
	CategoryFood Category = "Food"
)

// IDPrefix returns the catalog id prefix for the category. Categories
// without a dedicated prefix share the generic "P" namespace.
func (c Category) IDPrefix() string {
	switch c {
	case CategoryFood:
		return "F"
	case CategoryCat:
		return "C"
	case CategoryBird:
		return "B"
	default:
		return "P"
	}
}

// Product represents one catalog entry.
type Product struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         Category        `json:"category"`
	Price            decimal.Decimal `json:"price"`
	Stock            int             `json:"stock"`
	ReorderThreshold int             `json:"reorderThreshold"`
	Description      string          `json:"description"`
	ImageURL         string          `json:"imageUrl"`
}
