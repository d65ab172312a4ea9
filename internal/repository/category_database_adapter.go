package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"
)

const (
	listCategoriesQuery     = `SELECT id "id", type "type" FROM categories ORDER BY id ASC`
	getCategoryByIDQuery    = `SELECT id "id", type "type" FROM categories WHERE id = ?`
	findCategoryByTypeQuery = `SELECT id "id", type "type" FROM categories WHERE type = ? ORDER BY id ASC`
	insertCategoryQuery     = `INSERT INTO categories (type) VALUES (?)`
)

// CategoryDatabaseAdapter implements domain.CategoryRepository using sqlx.
// The write methods exist for seeding only; the HTTP API never calls them.
type CategoryDatabaseAdapter struct {
	db DBTX
}

func NewCategoryDatabaseAdapter(db DBTX) *CategoryDatabaseAdapter {
	return &CategoryDatabaseAdapter{db: db}
}

var _ domain.CategoryRepository = (*CategoryDatabaseAdapter)(nil)

// ListCategories implements domain.CategoryRepository
func (a *CategoryDatabaseAdapter) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	db := GetExecutor(ctx, a.db)

	var modelCategories []models.Category
	if err := db.SelectContext(ctx, &modelCategories, db.Rebind(listCategoriesQuery)); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*domain.Category, len(modelCategories))
	for i := range modelCategories {
		categories[i] = toDomainCategory(&modelCategories[i])
	}
	return categories, nil
}

// GetCategoryByID implements domain.CategoryRepository
func (a *CategoryDatabaseAdapter) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	db := GetExecutor(ctx, a.db)

	var modelCategory models.Category
	if err := db.GetContext(ctx, &modelCategory, db.Rebind(getCategoryByIDQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return toDomainCategory(&modelCategory), nil
}

// FindCategoryByType returns the lowest-id category with the given type, or nil.
func (a *CategoryDatabaseAdapter) FindCategoryByType(ctx context.Context, categoryType string) (*domain.Category, error) {
	db := GetExecutor(ctx, a.db)

	var modelCategories []models.Category
	if err := db.SelectContext(ctx, &modelCategories, db.Rebind(findCategoryByTypeQuery), categoryType); err != nil {
		return nil, fmt.Errorf("failed to find category %q: %w", categoryType, err)
	}
	if len(modelCategories) == 0 {
		return nil, nil
	}
	return toDomainCategory(&modelCategories[0]), nil
}

// CreateCategory inserts a category. The generated id is not read back; use
// FindCategoryByType to resolve it.
func (a *CategoryDatabaseAdapter) CreateCategory(ctx context.Context, categoryType string) error {
	db := GetExecutor(ctx, a.db)

	if _, err := db.ExecContext(ctx, db.Rebind(insertCategoryQuery), categoryType); err != nil {
		return fmt.Errorf("failed to save category %q: %w", categoryType, err)
	}
	return nil
}

func toDomainCategory(m *models.Category) *domain.Category {
	return &domain.Category{
		ID:   m.ID,
		Type: m.Type,
	}
}
