package validation

import (
	"errors"
	"fmt"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
)

// FieldError describes one invalid request field
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateQuestionRequest checks the create form of POST /questions.
// Category and difficulty are stored as given.
func (v *Validator) ValidateQuestionRequest(req *dto.QuestionRequest) error {
	var errs []error

	if strings.TrimSpace(req.Question) == "" {
		errs = append(errs, &FieldError{Field: "question", Reason: "is required"})
	}
	if strings.TrimSpace(req.Answer) == "" {
		errs = append(errs, &FieldError{Field: "answer", Reason: "is required"})
	}

	return unprocessable(errs)
}

// ValidateQuizRequest checks the body of POST /quizzes
func (v *Validator) ValidateQuizRequest(req *dto.QuizRequest) error {
	var errs []error

	if req.QuizCategory.ID < 0 {
		errs = append(errs, &FieldError{Field: "quizCategory", Reason: "must not be negative"})
	}

	return unprocessable(errs)
}

func unprocessable(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return domain.NewUnprocessableError("request validation failed", errors.Join(errs...))
}
