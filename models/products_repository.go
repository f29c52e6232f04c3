package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{db: db}
}

func (r *ProductsRepository) Create(ctx context.Context, product *Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductsRepository) GetByID(ctx context.Context, id uint) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// ListAll returns every product newest-first, reflecting creation order.
func (r *ProductsRepository) ListAll(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) ListByCategory(ctx context.Context, categoryID uint) ([]Product, error) {
	var products []Product
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Update persists every mutable field of the product (full replace).
func (r *ProductsRepository) Update(ctx context.Context, product *Product) error {
	return r.db.WithContext(ctx).
		Model(product).
		Select("Name", "Price", "InStock", "CategoryID").
		Updates(product).Error
}

func (r *ProductsRepository) Delete(ctx context.Context, product *Product) error {
	res := r.db.WithContext(ctx).Delete(product)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
