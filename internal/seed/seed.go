// Package seed loads categories and questions into an empty store.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"trivia-api/internal/domain"
	"trivia-api/internal/logger"
	"trivia-api/internal/repository"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed trivia.json
var defaultData []byte

type Category struct {
	Type      string     `json:"type"`
	Questions []Question `json:"questions"`
}

type Question struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
}

// Result summarizes one Apply run.
type Result struct {
	Categories int
	Questions  int
	Skipped    bool
}

// Default returns the bundled trivia set.
func Default() ([]Category, error) {
	return Parse(defaultData)
}

func Parse(data []byte) ([]Category, error) {
	var categories []Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed data: %w", err)
	}
	for i, c := range categories {
		if c.Type == "" {
			return nil, fmt.Errorf("seed category #%d has no type", i+1)
		}
	}
	return categories, nil
}

// Apply inserts data in a single transaction. When the store already holds
// categories nothing is written unless force is set; with force, categories
// are matched by type and only missing ones are created.
func Apply(ctx context.Context, db *sqlx.DB, data []Category, force bool) (*Result, error) {
	log := logger.Get()
	result := &Result{}

	txManager := repository.NewTransactionManagerAdapter(db)
	categoryRepo := repository.NewCategoryDatabaseAdapter(db)
	questionRepo := repository.NewQuestionDatabaseAdapter(db)

	err := txManager.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := categoryRepo.ListCategories(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 && !force {
			log.Info("Store already seeded, skipping", zap.Int("categories", len(existing)))
			result.Skipped = true
			return nil
		}

		for _, seedCategory := range data {
			category, err := ensureCategory(ctx, categoryRepo, seedCategory.Type)
			if err != nil {
				return err
			}
			result.Categories++

			for _, q := range seedCategory.Questions {
				question := domain.NewQuestion(q.Question, q.Answer, category.ID, q.Difficulty)
				if err := questionRepo.CreateQuestion(ctx, question); err != nil {
					return fmt.Errorf("category %s: %w", seedCategory.Type, err)
				}
				result.Questions++
			}
			log.Debug("Seeded category",
				zap.String("type", category.Type),
				zap.Int64("id", category.ID),
				zap.Int("questions", len(seedCategory.Questions)),
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func ensureCategory(ctx context.Context, repo *repository.CategoryDatabaseAdapter, categoryType string) (*domain.Category, error) {
	category, err := repo.FindCategoryByType(ctx, categoryType)
	if err != nil {
		return nil, err
	}
	if category != nil {
		return category, nil
	}

	if err := repo.CreateCategory(ctx, categoryType); err != nil {
		return nil, err
	}
	category, err = repo.FindCategoryByType(ctx, categoryType)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category %s not visible after insert", categoryType)
	}
	return category, nil
}
