package store

import (
	"github.com/shopspring/decimal"

	"github.com/petmart/petmart_web/internal/models"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Seed resets the store to the demo data set the shop starts with: five
// catalog products, an empty cart and the default profile.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = []models.Product{
		{
			ID:               "P001",
			Name:             "Bird Cage Large",
			Category:         models.CategoryBird,
			Price:            price("129.99"),
			Stock:            15,
			ReorderThreshold: 10,
			Description:      "Spacious cage for parrots and large birds.",
			ImageURL:         "/images/bird-cage-large.jpg",
		},
		{
			ID:               "F002",
			Name:             "Gourmet Cat Wet Food",
			Category:         models.CategoryFood,
			Price:            price("39.50"),
			Stock:            150,
			ReorderThreshold: 50,
			Description:      "Variety pack with essential nutrients.",
			ImageURL:         "/images/gourmet-cat-wet-food.jpg",
		},
		{
			ID:               "P002",
			Name:             "Cat Scratching Post",
			Category:         models.CategoryCat,
			Price:            price("34.99"),
			Stock:            45,
			ReorderThreshold: 10,
			Description:      "Durable sisal rope scratching post.",
			ImageURL:         "/images/cat-scratching-post.jpg",
		},
		{
			ID:               "F001",
			Name:             "Premium Dog Kibble (10kg)",
			Category:         models.CategoryFood,
			Price:            price("49.99"),
			Stock:            12,
			ReorderThreshold: 20,
			Description:      "High-protein diet for active dogs.",
			ImageURL:         "/images/premium-dog-kibble.jpg",
		},
		{
			ID:               "P003",
			Name:             "Cat Litter Premium",
			Category:         models.CategoryCat,
			Price:            price("19.99"),
			Stock:            300,
			ReorderThreshold: 50,
			Description:      "Odor control clumping litter.",
			ImageURL:         "/images/cat-litter-premium.jpg",
		},
	}

	s.cart = nil

	s.profile = models.UserProfile{
		Name:    "John Doe",
		Phone:   "9876543210",
		Address: "123 Pet Lane, Animal City",
		Email:   "john.doe@example.com",
		Pincode: "110001",
	}
}
