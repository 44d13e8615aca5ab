package store

import (
	"sync"

	"github.com/petmart/petmart_web/internal/models"
)

// Store owns all in-process state: the product catalog, the shopping cart and
// the singleton user profile. One coarse lock guards everything because cart
// materialization reads the cart and the catalog together, and concurrent
// increments on the same cart line must not lose updates. State lives only in
// memory; a restart resets it.
type Store struct {
	mu       sync.RWMutex
	products []models.Product
	cart     []models.CartLine
	profile  models.UserProfile
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// Products returns a copy of the catalog in insertion order.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// FindProduct returns the product with the given id, if present.
func (s *Store) FindProduct(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// InsertProduct assigns the next catalog id for the product's category and
// appends the product. Generation and insertion share one critical section so
// concurrent creates cannot mint the same id.
func (s *Store) InsertProduct(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = GenerateProductID(s.products, p.Category)
	s.products = append(s.products, p)
	return p
}

// UpdateProduct applies the given mutation to the product with the given id
// under the write lock. It reports whether the product exists.
func (s *Store) UpdateProduct(id string, apply func(p *models.Product)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			apply(&s.products[i])
			return true
		}
	}
	return false
}

// DeleteProduct removes the product with the given id, reporting whether it
// was present. Cart lines referencing the product are left in place; the
// materialization step drops them.
func (s *Store) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}

// CartLines returns a copy of the cart in insertion order.
func (s *Store) CartLines() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CartLine, len(s.cart))
	copy(out, s.cart)
	return out
}

// IncrementLine adds one unit of the product to the cart, creating the line
// with quantity 1 on first add.
func (s *Store) IncrementLine(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart[i].Quantity++
			return
		}
	}
	s.cart = append(s.cart, models.CartLine{ProductID: productID, Quantity: 1})
}

// AdjustLine adds delta to the line's quantity, removing the line when the
// result drops to zero or below. It reports whether the line existed.
func (s *Store) AdjustLine(productID string, delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart[i].Quantity += delta
			if s.cart[i].Quantity <= 0 {
				s.cart = append(s.cart[:i], s.cart[i+1:]...)
			}
			return true
		}
	}
	return false
}

// RemoveLine deletes the line regardless of its quantity.
func (s *Store) RemoveLine(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

// ClearCart drops every line.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// Profile returns the current user profile.
func (s *Store) Profile() models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SetProfile overwrites the whole profile record.
func (s *Store) SetProfile(p models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
}
