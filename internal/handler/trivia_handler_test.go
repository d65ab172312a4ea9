package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/handler"
	"trivia-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// MockTriviaService
type MockTriviaService struct {
	GetCategoriesFunc        func(ctx context.Context) (*dto.CategoriesResponse, error)
	GetQuestionsFunc         func(ctx context.Context, page int) (*dto.QuestionPageResponse, error)
	GetCategoryQuestionsFunc func(ctx context.Context, categoryID int64, page int) (*dto.QuestionPageResponse, error)
	SearchQuestionsFunc      func(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error)
	CreateQuestionFunc       func(ctx context.Context, req *dto.QuestionRequest) error
	DeleteQuestionFunc       func(ctx context.Context, id int64, page int) (*dto.DeleteQuestionResponse, error)
	PlayQuizFunc             func(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

func (m *MockTriviaService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	if m.GetCategoriesFunc != nil {
		return m.GetCategoriesFunc(ctx)
	}
	panic("MockTriviaService.GetCategoriesFunc not implemented")
}
func (m *MockTriviaService) GetQuestions(ctx context.Context, page int) (*dto.QuestionPageResponse, error) {
	if m.GetQuestionsFunc != nil {
		return m.GetQuestionsFunc(ctx, page)
	}
	panic("MockTriviaService.GetQuestionsFunc not implemented")
}
func (m *MockTriviaService) GetCategoryQuestions(ctx context.Context, categoryID int64, page int) (*dto.QuestionPageResponse, error) {
	if m.GetCategoryQuestionsFunc != nil {
		return m.GetCategoryQuestionsFunc(ctx, categoryID, page)
	}
	panic("MockTriviaService.GetCategoryQuestionsFunc not implemented")
}
func (m *MockTriviaService) SearchQuestions(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error) {
	if m.SearchQuestionsFunc != nil {
		return m.SearchQuestionsFunc(ctx, term, page)
	}
	panic("MockTriviaService.SearchQuestionsFunc not implemented")
}
func (m *MockTriviaService) CreateQuestion(ctx context.Context, req *dto.QuestionRequest) error {
	if m.CreateQuestionFunc != nil {
		return m.CreateQuestionFunc(ctx, req)
	}
	panic("MockTriviaService.CreateQuestionFunc not implemented")
}
func (m *MockTriviaService) DeleteQuestion(ctx context.Context, id int64, page int) (*dto.DeleteQuestionResponse, error) {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id, page)
	}
	panic("MockTriviaService.DeleteQuestionFunc not implemented")
}
func (m *MockTriviaService) PlayQuiz(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	if m.PlayQuizFunc != nil {
		return m.PlayQuizFunc(ctx, req)
	}
	panic("MockTriviaService.PlayQuizFunc not implemented")
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func newMockApp(svc *MockTriviaService, pinger handler.Pinger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	handlers := handler.Handlers{Trivia: handler.NewTriviaHandler(svc)}
	if pinger != nil {
		handlers.Health = handler.NewHealthHandler(pinger)
	}
	handler.RegisterRoutes(app, handlers)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
	return resp.StatusCode, decoded
}

func TestTriviaHandler_GetQuestions(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantPage int
	}{
		{name: "default page", target: "/questions", wantPage: 1},
		{name: "explicit page", target: "/questions?page=2", wantPage: 2},
		{name: "garbage page", target: "/questions?page=abc", wantPage: 1},
		{name: "zero page", target: "/questions?page=0", wantPage: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPage int
			svc := &MockTriviaService{
				GetQuestionsFunc: func(ctx context.Context, page int) (*dto.QuestionPageResponse, error) {
					gotPage = page
					return &dto.QuestionPageResponse{Success: true, Questions: []dto.QuestionResponse{}, Categories: []dto.CategoryResponse{}}, nil
				},
			}

			status, body := doJSON(t, newMockApp(svc, nil), "GET", tt.target, "")
			assert.Equal(t, fiber.StatusOK, status)
			assert.Equal(t, true, body["success"])
			assert.Nil(t, body["current_category"])
			assert.Equal(t, tt.wantPage, gotPage)
		})
	}
}

func TestTriviaHandler_ServiceErrors(t *testing.T) {
	svc := &MockTriviaService{
		GetCategoriesFunc: func(ctx context.Context) (*dto.CategoriesResponse, error) {
			return nil, domain.NewInternalError("Failed to list categories", errors.New("db down"))
		},
		GetQuestionsFunc: func(ctx context.Context, page int) (*dto.QuestionPageResponse, error) {
			return nil, domain.NewNotFoundError("no questions on requested page")
		},
		DeleteQuestionFunc: func(ctx context.Context, id int64, page int) (*dto.DeleteQuestionResponse, error) {
			return nil, domain.NewUnprocessableError("Failed to delete question", errors.New("locked"))
		},
	}
	app := newMockApp(svc, nil)

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantMsg    string
	}{
		{name: "internal", method: "GET", target: "/categories", wantStatus: 500, wantMsg: "Internal Server Error"},
		{name: "not found", method: "GET", target: "/questions?page=1000", wantStatus: 404, wantMsg: "resource not found"},
		{name: "unprocessable", method: "DELETE", target: "/questions/3", wantStatus: 422, wantMsg: "Unprocessable Entity"},
		{name: "non numeric id", method: "DELETE", target: "/questions/abc", wantStatus: 404, wantMsg: "resource not found"},
		{name: "wrong method", method: "POST", target: "/questions/50", wantStatus: 405, wantMsg: "method not allowed"},
		{name: "unknown route", method: "GET", target: "/answers", wantStatus: 404, wantMsg: "resource not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, app, tt.method, tt.target, "")
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, float64(tt.wantStatus), body["error"])
			assert.Equal(t, tt.wantMsg, body["message"])
		})
	}
}

func TestTriviaHandler_DeleteQuestion(t *testing.T) {
	var gotID int64
	var gotPage int
	svc := &MockTriviaService{
		DeleteQuestionFunc: func(ctx context.Context, id int64, page int) (*dto.DeleteQuestionResponse, error) {
			gotID, gotPage = id, page
			return &dto.DeleteQuestionResponse{Success: true, Deleted: id, Questions: []dto.QuestionResponse{}}, nil
		},
	}

	status, body := doJSON(t, newMockApp(svc, nil), "DELETE", "/questions/12?page=2", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(12), body["deleted"])
	assert.Equal(t, int64(12), gotID)
	assert.Equal(t, 2, gotPage)
}

func TestTriviaHandler_CreateOrSearchQuestions(t *testing.T) {
	t.Run("search term", func(t *testing.T) {
		var gotTerm string
		svc := &MockTriviaService{
			SearchQuestionsFunc: func(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error) {
				gotTerm = term
				return &dto.SearchQuestionsResponse{Success: true, Questions: []dto.QuestionResponse{}}, nil
			},
		}

		status, body := doJSON(t, newMockApp(svc, nil), "POST", "/questions", `{"searchTerm":"title"}`)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, []interface{}{}, body["questions"])
		assert.Equal(t, "title", gotTerm)
	})

	t.Run("legacy search key", func(t *testing.T) {
		var gotTerm string
		svc := &MockTriviaService{
			SearchQuestionsFunc: func(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error) {
				gotTerm = term
				return &dto.SearchQuestionsResponse{Success: true, Questions: []dto.QuestionResponse{}}, nil
			},
		}

		status, _ := doJSON(t, newMockApp(svc, nil), "POST", "/questions", `{"search":"which"}`)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "which", gotTerm)
	})

	t.Run("create", func(t *testing.T) {
		var got *dto.QuestionRequest
		svc := &MockTriviaService{
			CreateQuestionFunc: func(ctx context.Context, req *dto.QuestionRequest) error {
				got = req
				return nil
			},
		}

		status, body := doJSON(t, newMockApp(svc, nil), "POST", "/questions",
			`{"question":"Who?","answer":"Me","category":"3","difficulty":2}`)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, map[string]interface{}{"success": true}, body)
		require.NotNil(t, got)
		assert.Equal(t, "Who?", got.Question)
		assert.Equal(t, dto.FlexibleInt(3), got.Category)
	})

	t.Run("create failure", func(t *testing.T) {
		svc := &MockTriviaService{
			CreateQuestionFunc: func(ctx context.Context, req *dto.QuestionRequest) error {
				return domain.NewUnprocessableError("Failed to create question", errors.New("not null"))
			},
		}

		status, body := doJSON(t, newMockApp(svc, nil), "POST", "/questions", `{"question":"Q?","answer":"A","category":99}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.Equal(t, "Unprocessable Entity", body["message"])
	})

	t.Run("missing fields never reach the service", func(t *testing.T) {
		status, body := doJSON(t, newMockApp(&MockTriviaService{}, nil), "POST", "/questions", `{"answer":"orphan"}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.Equal(t, false, body["success"])
	})

	t.Run("malformed body", func(t *testing.T) {
		status, body := doJSON(t, newMockApp(&MockTriviaService{}, nil), "POST", "/questions", `{"question":`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.Equal(t, false, body["success"])
	})

	t.Run("missing content type", func(t *testing.T) {
		status, _ := doJSON(t, newMockApp(&MockTriviaService{}, nil), "POST", "/questions", "")
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	})
}

func TestTriviaHandler_GetCategoryQuestions(t *testing.T) {
	var gotID int64
	svc := &MockTriviaService{
		GetCategoryQuestionsFunc: func(ctx context.Context, categoryID int64, page int) (*dto.QuestionPageResponse, error) {
			gotID = categoryID
			return &dto.QuestionPageResponse{
				Success:         true,
				Questions:       []dto.QuestionResponse{{ID: 4, Category: categoryID}},
				TotalQuestions:  1,
				Categories:      []dto.CategoryResponse{},
				CurrentCategory: &categoryID,
			}, nil
		},
	}

	status, body := doJSON(t, newMockApp(svc, nil), "GET", "/categories/5/questions", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(5), body["current_category"])
	assert.Equal(t, int64(5), gotID)
}

func TestTriviaHandler_PlayQuiz(t *testing.T) {
	t.Run("next question", func(t *testing.T) {
		var got *dto.QuizRequest
		svc := &MockTriviaService{
			PlayQuizFunc: func(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
				got = req
				return &dto.QuizResponse{Success: true, CurrentQuestion: &dto.QuestionResponse{ID: 9}}, nil
			},
		}

		status, body := doJSON(t, newMockApp(svc, nil), "POST", "/quizzes",
			`{"quizCategory":{"id":"2","type":"Art"},"previousQuestions":[1,4]}`)
		assert.Equal(t, fiber.StatusOK, status)
		require.NotNil(t, got)
		assert.Equal(t, int64(2), got.QuizCategory.ID)
		assert.Equal(t, []int64{1, 4}, got.PreviousQuestions)
		question, ok := body["currentQuestion"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(9), question["id"])
	})

	t.Run("quiz complete", func(t *testing.T) {
		svc := &MockTriviaService{
			PlayQuizFunc: func(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
				return &dto.QuizResponse{Success: true}, nil
			},
		}

		status, body := doJSON(t, newMockApp(svc, nil), "POST", "/quizzes", `{"quizCategory":0,"previousQuestions":[]}`)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, true, body["success"])
		assert.Contains(t, body, "currentQuestion")
		assert.Nil(t, body["currentQuestion"])
	})

	t.Run("malformed body", func(t *testing.T) {
		status, _ := doJSON(t, newMockApp(&MockTriviaService{}, nil), "POST", "/quizzes", `{"previousQuestions":"1,2"}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	})

	t.Run("negative category", func(t *testing.T) {
		status, _ := doJSON(t, newMockApp(&MockTriviaService{}, nil), "POST", "/quizzes", `{"quizCategory":-1}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	})
}

func TestHealthHandler(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		status, body := doJSON(t, newMockApp(&MockTriviaService{}, stubPinger{}), "GET", "/health", "")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "ok", body["status"])
	})

	t.Run("database down", func(t *testing.T) {
		status, body := doJSON(t, newMockApp(&MockTriviaService{}, stubPinger{err: errors.New("refused")}), "GET", "/health", "")
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, false, body["success"])
	})
}
