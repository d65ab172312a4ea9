package repository

import (
	"context"
	"fmt"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"
	"trivia-api/internal/util"
)

// Column aliases are quoted so drivers that upper-case unquoted names
// (go-ora) still map onto the lower-case db tags.
const questionColumns = `id "id", question "question", answer "answer", category "category", difficulty "difficulty"`

const (
	listQuestionsQuery           = `SELECT ` + questionColumns + ` FROM questions ORDER BY id ASC`
	listQuestionsByCategoryQuery = `SELECT ` + questionColumns + ` FROM questions WHERE category = ? ORDER BY id ASC`
	searchQuestionsQuery         = `SELECT ` + questionColumns + ` FROM questions WHERE LOWER(question) LIKE LOWER(?) ESCAPE '\' ORDER BY id ASC`
	insertQuestionQuery          = `INSERT INTO questions (question, answer, category, difficulty) VALUES (?, ?, ?, ?)`
	deleteQuestionQuery          = `DELETE FROM questions WHERE id = ?`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.
type QuestionDatabaseAdapter struct {
	db DBTX
}

// NewQuestionDatabaseAdapter accepts *sqlx.DB or *sqlx.Tx.
func NewQuestionDatabaseAdapter(db DBTX) *QuestionDatabaseAdapter {
	return &QuestionDatabaseAdapter{db: db}
}

var _ domain.QuestionRepository = (*QuestionDatabaseAdapter)(nil)

// ListQuestions implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ListQuestions(ctx context.Context) ([]*domain.Question, error) {
	return a.selectQuestions(ctx, "list questions", listQuestionsQuery)
}

// ListQuestionsByCategory implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]*domain.Question, error) {
	return a.selectQuestions(ctx, "list questions by category", listQuestionsByCategoryQuery, categoryID)
}

// SearchQuestions implements domain.QuestionRepository. LIKE wildcards in
// term are matched literally.
func (a *QuestionDatabaseAdapter) SearchQuestions(ctx context.Context, term string) ([]*domain.Question, error) {
	pattern := "%" + likeEscaper.Replace(term) + "%"
	return a.selectQuestions(ctx, "search questions", searchQuestionsQuery, pattern)
}

// CreateQuestion implements domain.QuestionRepository. Empty question or
// answer text is sent as NULL and rejected by the store.
func (a *QuestionDatabaseAdapter) CreateQuestion(ctx context.Context, question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}
	db := GetExecutor(ctx, a.db)

	_, err := db.ExecContext(ctx, db.Rebind(insertQuestionQuery),
		util.StringToNullString(question.Question),
		util.StringToNullString(question.Answer),
		util.Int64ToNullInt64(question.Category),
		util.Int64ToNullInt64(int64(question.Difficulty)),
	)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}
	return nil
}

// DeleteQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) DeleteQuestion(ctx context.Context, id int64) error {
	db := GetExecutor(ctx, a.db)

	result, err := db.ExecContext(ctx, db.Rebind(deleteQuestionQuery), id)
	if err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewQuestionNotFoundError(id)
	}
	return nil
}

func (a *QuestionDatabaseAdapter) selectQuestions(ctx context.Context, op, query string, args ...interface{}) ([]*domain.Question, error) {
	db := GetExecutor(ctx, a.db)

	var modelQuestions []models.Question
	if err := db.SelectContext(ctx, &modelQuestions, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	questions := make([]*domain.Question, len(modelQuestions))
	for i := range modelQuestions {
		questions[i] = toDomainQuestion(&modelQuestions[i])
	}
	return questions, nil
}

func toDomainQuestion(m *models.Question) *domain.Question {
	return &domain.Question{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		Category:   m.Category.Int64,
		Difficulty: int(m.Difficulty.Int64),
	}
}
