// Package service validates untrusted payloads against the entity model and
// shapes entities into output views. Each entity gets its own typed operation
// set; domain errors come from the models package.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/storelab/catalog-api/models"
)

const maxCategoryNameLen = 50

// CategoryInput is the creation payload for a category.
type CategoryInput struct {
	Name string `json:"name"`
}

// CategoryView is the public shape of a category.
type CategoryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Categories struct {
	repo *models.CategoriesRepository
}

func NewCategories(repo *models.CategoriesRepository) *Categories {
	return &Categories{repo: repo}
}

// Create validates the payload and inserts a new category. Names must be
// unique byte-for-byte; the duplicate pre-check is an early exit only, the
// store's constraint decides races.
func (s *Categories) Create(ctx context.Context, in CategoryInput) (*CategoryView, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, validationf("name is required")
	}
	if len(in.Name) > maxCategoryNameLen {
		return nil, validationf("name must be at most %d characters", maxCategoryNameLen)
	}

	if _, err := s.repo.GetByName(ctx, in.Name); err == nil {
		return nil, models.ErrCategoryNameTaken
	} else if !errors.Is(err, models.ErrCategoryNotFound) {
		return nil, err
	}

	category := &models.Category{Name: in.Name}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	view := viewCategory(category)
	return &view, nil
}

// List returns all categories ordered by name ascending.
func (s *Categories) List(ctx context.Context) ([]CategoryView, error) {
	categories, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]CategoryView, len(categories))
	for i := range categories {
		views[i] = viewCategory(&categories[i])
	}
	return views, nil
}

func viewCategory(c *models.Category) CategoryView {
	return CategoryView{ID: c.ID, Name: c.Name}
}
