package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"trivia-api/internal/domain"
)

// CategoryResponse represents a category in the API response
// @Description Category information
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// QuestionResponse represents a question in the API response
// @Description Question information
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

func NewCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Type: c.Type}
}

func NewQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// NewCategoryResponses never returns nil so that empty listings encode as [].
func NewCategoryResponses(categories []*domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = NewCategoryResponse(c)
	}
	return out
}

// NewQuestionResponses never returns nil so that empty listings encode as [].
func NewQuestionResponses(questions []*domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = NewQuestionResponse(q)
	}
	return out
}

// SuccessResponse is the body of a successful mutation with nothing to return
type SuccessResponse struct {
	Success bool `json:"success"`
}

// CategoriesResponse is the body of GET /categories
type CategoriesResponse struct {
	Success    bool               `json:"success"`
	Categories []CategoryResponse `json:"categories"`
}

// QuestionPageResponse is one page of a question listing.
// CurrentCategory is null for the unfiltered listing.
type QuestionPageResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Categories      []CategoryResponse `json:"categories"`
	CurrentCategory *int64             `json:"current_category"`
}

// SearchQuestionsResponse is the body of a search issued through POST /questions
type SearchQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *int64             `json:"current_category"`
}

// DeleteQuestionResponse is the body of DELETE /questions/{id}
type DeleteQuestionResponse struct {
	Success        bool               `json:"success"`
	Deleted        int64              `json:"deleted"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

// QuestionRequest is the body of POST /questions. A present search term
// turns the request into a search; otherwise it describes a new question.
// @Description Create a question, or search when searchTerm is set
type QuestionRequest struct {
	Search     *string     `json:"search,omitempty"`
	SearchTerm *string     `json:"searchTerm,omitempty"`
	Question   string      `json:"question"`
	Answer     string      `json:"answer"`
	Category   FlexibleInt `json:"category" swaggertype:"integer"`
	Difficulty FlexibleInt `json:"difficulty" swaggertype:"integer"`
}

// SearchQuery returns the search term and whether one was sent. searchTerm
// takes precedence over search.
func (r *QuestionRequest) SearchQuery() (string, bool) {
	if r.SearchTerm != nil {
		return *r.SearchTerm, true
	}
	if r.Search != nil {
		return *r.Search, true
	}
	return "", false
}

// ToDomain converts the create form into an unsaved question.
func (r *QuestionRequest) ToDomain() *domain.Question {
	return domain.NewQuestion(r.Question, r.Answer, int64(r.Category), int(r.Difficulty))
}

// QuizRequest is the body of POST /quizzes
// @Description Quiz round request
type QuizRequest struct {
	QuizCategory      QuizCategory `json:"quizCategory" swaggertype:"integer"`
	PreviousQuestions []int64      `json:"previousQuestions"`
}

// QuizResponse carries the next question, or null when the round is over.
type QuizResponse struct {
	Success         bool              `json:"success"`
	CurrentQuestion *QuestionResponse `json:"currentQuestion"`
}

// FlexibleInt decodes a JSON number, a numeric string or null. HTML form
// selects in the frontend post numbers as strings.
type FlexibleInt int64

func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", s, err)
		}
		*f = FlexibleInt(n)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleInt(n)
	return nil
}

// QuizCategory is the quizCategory field of a quiz request. The frontend
// sends either a bare id or the whole category object; 0 means all.
type QuizCategory struct {
	ID int64
}

func (q *QuizCategory) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			ID   FlexibleInt `json:"id"`
			Type string      `json:"type"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		q.ID = int64(obj.ID)
		return nil
	}

	var id FlexibleInt
	if err := id.UnmarshalJSON(data); err != nil {
		return err
	}
	q.ID = int64(id)
	return nil
}

func (q QuizCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.ID)
}
