package domain

import "context"

// QuestionRepository is the store port for questions. Listings are ordered
// by ascending id.
type QuestionRepository interface {
	ListQuestions(ctx context.Context) ([]*Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]*Question, error)
	// SearchQuestions matches term as a case-insensitive substring of the
	// question text only.
	SearchQuestions(ctx context.Context, term string) ([]*Question, error)
	CreateQuestion(ctx context.Context, question *Question) error
	// DeleteQuestion returns a CodeNotFound DomainError when no row matched.
	DeleteQuestion(ctx context.Context, id int64) error
}

// CategoryRepository is read-only from the API's point of view.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	// GetCategoryByID returns (nil, nil) when no category matches.
	GetCategoryByID(ctx context.Context, id int64) (*Category, error)
}

// TransactionManager runs fn inside a single store transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
