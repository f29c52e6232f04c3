package service

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/storelab/catalog-api/models"
)

const maxProductNameLen = 120

// ProductInput is the creation/update payload for a product. Price accepts a
// JSON number or string; in_stock defaults to true on creation but is
// required on update (updates replace every mutable field).
type ProductInput struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	InStock    *bool           `json:"in_stock"`
	CategoryID *uint           `json:"category_id"`
}

// ProductView is the public shape of a product. Price is rendered as a JSON
// number with exactly two fractional digits, no float rounding involved.
type ProductView struct {
	ID         uint        `json:"id"`
	Name       string      `json:"name"`
	Price      json.Number `json:"price"`
	InStock    bool        `json:"in_stock"`
	CategoryID *uint       `json:"category_id"`
}

type Products struct {
	repo       *models.ProductsRepository
	categories *models.CategoriesRepository
}

func NewProducts(repo *models.ProductsRepository, categories *models.CategoriesRepository) *Products {
	return &Products{repo: repo, categories: categories}
}

// Create validates the payload and inserts a new product. A supplied
// category_id must reference an existing category.
func (s *Products) Create(ctx context.Context, in ProductInput) (*ProductView, error) {
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}

	product := &models.Product{
		Name:       in.Name,
		Price:      in.Price,
		InStock:    inStock,
		CategoryID: in.CategoryID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	view := viewProduct(product)
	return &view, nil
}

func (s *Products) Get(ctx context.Context, id uint) (*ProductView, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := viewProduct(product)
	return &view, nil
}

// List returns all products newest-first.
func (s *Products) List(ctx context.Context) ([]ProductView, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return viewProducts(products), nil
}

// ListByCategory returns the category's products newest-first, failing with
// ErrCategoryNotFound when the category itself does not exist.
func (s *Products) ListByCategory(ctx context.Context, categoryID uint) ([]ProductView, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	products, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return viewProducts(products), nil
}

// Update replaces every mutable field of the product. It is a full replace,
// not a patch: name, price, in_stock and category_id all come from the input.
func (s *Products) Update(ctx context.Context, id uint, in ProductInput) (*ProductView, error) {
	if in.InStock == nil {
		return nil, validationf("in_stock is required")
	}
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Price = in.Price
	product.InStock = *in.InStock
	product.CategoryID = in.CategoryID

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	view := viewProduct(product)
	return &view, nil
}

// Delete permanently removes the product.
func (s *Products) Delete(ctx context.Context, id uint) error {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, product)
}

func (s *Products) validate(ctx context.Context, in ProductInput) error {
	if in.Name == "" {
		return validationf("name is required")
	}
	if len(in.Name) > maxProductNameLen {
		return validationf("name must be at most %d characters", maxProductNameLen)
	}
	if in.Price.IsNegative() {
		return validationf("price must not be negative")
	}
	// Reject extra fractional digits instead of rounding; silent precision
	// loss is worse than a 400. Trailing zeros beyond two places still pass.
	if !in.Price.Equal(in.Price.Truncate(2)) {
		return validationf("price must have at most 2 fractional digits")
	}
	if in.CategoryID != nil {
		ok, err := s.categories.Exists(ctx, *in.CategoryID)
		if err != nil {
			return err
		}
		if !ok {
			return models.ErrCategoryNotFound
		}
	}
	return nil
}

func viewProduct(p *models.Product) ProductView {
	return ProductView{
		ID:         p.ID,
		Name:       p.Name,
		Price:      json.Number(p.Price.StringFixed(2)),
		InStock:    p.InStock,
		CategoryID: p.CategoryID,
	}
}

func viewProducts(products []models.Product) []ProductView {
	views := make([]ProductView, len(products))
	for i := range products {
		views[i] = viewProduct(&products[i])
	}
	return views
}
