package service

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/petmart/petmart_web/internal/models"
	"github.com/petmart/petmart_web/internal/store"
	"github.com/petmart/petmart_web/internal/utils"
)

// CatalogService implements product lookup, search and the admin mutations.
type CatalogService struct {
	store *store.Store
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(st *store.Store) *CatalogService {
	return &CatalogService{store: st}
}

// CreateProductRequest carries the parsed admin form input for a new product.
type CreateProductRequest struct {
	Name             string
	Category         models.Category
	Price            decimal.Decimal
	Stock            int
	ReorderThreshold int
	Description      string
	ImageURL         string
}

// UpdateProductPatch carries an admin product update. Nil fields were not
// submitted and keep their current value; a non-nil zero (price 0, stock 0)
// is an explicit value and overwrites.
type UpdateProductPatch struct {
	Name             *string
	Category         *models.Category
	Price            *decimal.Decimal
	Stock            *int
	ReorderThreshold *int
	Description      *string
	ImageURL         *string
}

// Find returns the product with the given id.
func (s *CatalogService) Find(id string) (*models.Product, error) {
	p, ok := s.store.FindProduct(id)
	if !ok {
		return nil, utils.ErrProductNotFound
	}
	return &p, nil
}

// All returns the full catalog in insertion order.
func (s *CatalogService) All() []models.Product {
	return s.store.Products()
}

// Search returns products whose name, description or category contains the
// query, case-insensitively. An empty query returns the whole catalog.
// Results keep catalog insertion order; there is no ranking.
func (s *CatalogService) Search(query string) []models.Product {
	products := s.store.Products()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products
	}

	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) ||
			strings.Contains(strings.ToLower(string(p.Category)), query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// ByCategory returns the catalog subset with the given category, in insertion
// order. The admin dashboard uses it for the Food stock section.
func (s *CatalogService) ByCategory(category models.Category) []models.Product {
	products := s.store.Products()
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched
}

// Create validates the request, assigns the next id for the category and
// inserts the product.
func (s *CatalogService) Create(req *CreateProductRequest) (*models.Product, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(string(req.Category)) == "" {
		return nil, utils.ErrMissingField
	}
	if req.Price.IsNegative() {
		return nil, utils.ErrInvalidPrice
	}
	if req.Stock < 0 {
		return nil, utils.ErrInvalidStock
	}
	if req.ReorderThreshold < 0 {
		return nil, utils.ErrInvalidThreshold
	}

	product := s.store.InsertProduct(models.Product{
		Name:             req.Name,
		Category:         req.Category,
		Price:            req.Price,
		Stock:            req.Stock,
		ReorderThreshold: req.ReorderThreshold,
		Description:      req.Description,
		ImageURL:         req.ImageURL,
	})

	log.Info().
		Str("product_id", product.ID).
		Str("category", string(product.Category)).
		Msg("product created")
	return &product, nil
}

// Update overwrites exactly the fields present in the patch. The product id
// is never regenerated, even when the category changes.
func (s *CatalogService) Update(id string, patch *UpdateProductPatch) (*models.Product, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, utils.ErrMissingField
	}
	if patch.Category != nil && strings.TrimSpace(string(*patch.Category)) == "" {
		return nil, utils.ErrMissingField
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return nil, utils.ErrInvalidPrice
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return nil, utils.ErrInvalidStock
	}
	if patch.ReorderThreshold != nil && *patch.ReorderThreshold < 0 {
		return nil, utils.ErrInvalidThreshold
	}

	found := s.store.UpdateProduct(id, func(p *models.Product) {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		if patch.ReorderThreshold != nil {
			p.ReorderThreshold = *patch.ReorderThreshold
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.ImageURL != nil {
			p.ImageURL = *patch.ImageURL
		}
	})
	if !found {
		return nil, utils.ErrProductNotFound
	}

	log.Info().Str("product_id", id).Msg("product updated")
	return s.Find(id)
}

// Delete removes the product. Cart lines that reference it become orphans and
// are dropped at materialization time.
func (s *CatalogService) Delete(id string) error {
	if !s.store.DeleteProduct(id) {
		return utils.ErrProductNotFound
	}
	log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// SetStock overwrites the product's stock level. Negative quantities are
// rejected rather than clamped.
func (s *CatalogService) SetStock(id string, quantity int) error {
	if quantity < 0 {
		return utils.ErrInvalidStock
	}
	found := s.store.UpdateProduct(id, func(p *models.Product) {
		p.Stock = quantity
	})
	if !found {
		return utils.ErrProductNotFound
	}
	log.Info().Str("product_id", id).Int("stock", quantity).Msg("stock updated")
	return nil
}
