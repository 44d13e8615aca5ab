package service

import (
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/petmart/petmart_web/internal/models"
	"github.com/petmart/petmart_web/internal/store"
)

// CartService implements cart mutations and the cart/catalog join that prices
// the cart for display.
type CartService struct {
	store *store.Store
}

// NewCartService constructs a CartService.
func NewCartService(st *store.Store) *CartService {
	return &CartService{store: st}
}

// Add puts one unit of the product in the cart, incrementing an existing
// line. Unknown product ids are a silent no-op, mirroring the browser flow
// where the id always comes from a rendered catalog page.
func (s *CartService) Add(productID string) {
	if _, ok := s.store.FindProduct(productID); !ok {
		log.Debug().Str("product_id", productID).Msg("add to cart ignored: unknown product")
		return
	}
	s.store.IncrementLine(productID)
}

// ChangeQuantity adds delta to the line's quantity. A result of zero or below
// removes the line; an absent line is a no-op.
func (s *CartService) ChangeQuantity(productID string, delta int) {
	s.store.AdjustLine(productID, delta)
}

// Remove deletes the line unconditionally, regardless of quantity.
func (s *CartService) Remove(productID string) {
	s.store.RemoveLine(productID)
}

// Clear empties the cart.
func (s *CartService) Clear() {
	s.store.ClearCart()
}

// Materialize joins cart lines against the live catalog. Lines whose product
// no longer exists are dropped, not errors. Each line total is quantity times
// price rounded half-up to 2 places; the subtotal sums the rounded line
// totals. CartCount counts distinct lines, not units.
func (s *CartService) Materialize() models.CartView {
	view := models.CartView{Items: []models.CartItem{}}
	subtotal := decimal.Zero

	for _, line := range s.store.CartLines() {
		product, ok := s.store.FindProduct(line.ProductID)
		if !ok {
			continue
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2)
		view.Items = append(view.Items, models.CartItem{
			Product:   product,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	view.Subtotal = subtotal.Round(2)
	view.CartCount = len(view.Items)
	return view
}

// Count returns the number of distinct cart lines that still resolve to a
// catalog product. Pages other than the cart only need this figure.
func (s *CartService) Count() int {
	return s.Materialize().CartCount
}
