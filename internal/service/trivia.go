package service

import (
	"context"
	"math/rand"

	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"
	"trivia-api/internal/metrics"
	"trivia-api/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TriviaService defines the question and quiz operations behind the HTTP routes
type TriviaService interface {
	GetCategories(ctx context.Context) (*dto.CategoriesResponse, error)
	GetQuestions(ctx context.Context, page int) (*dto.QuestionPageResponse, error)
	GetCategoryQuestions(ctx context.Context, categoryID int64, page int) (*dto.QuestionPageResponse, error)
	SearchQuestions(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error)
	CreateQuestion(ctx context.Context, req *dto.QuestionRequest) error
	DeleteQuestion(ctx context.Context, id int64, page int) (*dto.DeleteQuestionResponse, error)
	PlayQuiz(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
}

// Option configures a TriviaService.
type Option func(*triviaService)

// WithPicker replaces the uniform random index source used by PlayQuiz.
// pick(n) must return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(s *triviaService) {
		if pick != nil {
			s.pick = pick
		}
	}
}

// WithMetrics records service events on m.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *triviaService) {
		s.metrics = m
	}
}

// triviaService implements TriviaService
type triviaService struct {
	questions  domain.QuestionRepository
	categories domain.CategoryRepository
	metrics    *metrics.Manager
	pick       func(n int) int
}

// NewTriviaService creates a new instance of triviaService
func NewTriviaService(questions domain.QuestionRepository, categories domain.CategoryRepository, opts ...Option) TriviaService {
	s := &triviaService{
		questions:  questions,
		categories: categories,
		pick:       rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetCategories implements TriviaService
func (s *triviaService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		s.metrics.RecordStoreError("list_categories")
		return nil, domain.NewInternalError("Failed to list categories", err)
	}

	return &dto.CategoriesResponse{
		Success:    true,
		Categories: dto.NewCategoryResponses(categories),
	}, nil
}

// GetQuestions implements TriviaService
func (s *triviaService) GetQuestions(ctx context.Context, page int) (*dto.QuestionPageResponse, error) {
	return s.questionPage(ctx, page, nil, s.questions.ListQuestions)
}

// GetCategoryQuestions implements TriviaService. An unknown category is
// NotFound like any other empty page; the category lookup only runs on the
// empty path to tell the two apart in the log.
func (s *triviaService) GetCategoryQuestions(ctx context.Context, categoryID int64, page int) (*dto.QuestionPageResponse, error) {
	list := func(ctx context.Context) ([]*domain.Question, error) {
		return s.questions.ListQuestionsByCategory(ctx, categoryID)
	}
	resp, err := s.questionPage(ctx, page, &categoryID, list)
	if !domain.IsNotFound(err) {
		return resp, err
	}

	category, lookupErr := s.categories.GetCategoryByID(ctx, categoryID)
	switch {
	case lookupErr != nil:
		s.metrics.RecordStoreError("get_category")
		logger.Get().Warn("Failed to look up category", zap.Int64("category_id", categoryID), zap.Error(lookupErr))
	case category == nil:
		logger.Get().Debug("Unknown category requested", zap.Int64("category_id", categoryID))
		return nil, domain.NewCategoryNotFoundError(categoryID)
	}
	return nil, err
}

// questionPage fetches the question listing and the category listing
// concurrently and cuts out one page.
func (s *triviaService) questionPage(
	ctx context.Context,
	page int,
	currentCategory *int64,
	list func(ctx context.Context) ([]*domain.Question, error),
) (*dto.QuestionPageResponse, error) {
	var (
		questions  []*domain.Question
		categories []*domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questions, err = list(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.categories.ListCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.metrics.RecordStoreError("list_questions")
		return nil, domain.NewInternalError("Failed to list questions", err)
	}

	current := util.Paginate(questions, page, util.QuestionsPerPage)
	if len(current) == 0 {
		logger.Get().Debug("Requested page is empty",
			zap.Int("page", page),
			zap.Int("total_questions", len(questions)),
		)
		return nil, domain.NewNotFoundError("no questions on requested page")
	}

	return &dto.QuestionPageResponse{
		Success:         true,
		Questions:       dto.NewQuestionResponses(current),
		TotalQuestions:  len(questions),
		Categories:      dto.NewCategoryResponses(categories),
		CurrentCategory: currentCategory,
	}, nil
}

// SearchQuestions implements TriviaService. No match is a successful empty
// result; a page past the end of a non-empty result is NotFound.
func (s *triviaService) SearchQuestions(ctx context.Context, term string, page int) (*dto.SearchQuestionsResponse, error) {
	s.metrics.RecordQuestionSearch()

	questions, err := s.questions.SearchQuestions(ctx, term)
	if err != nil {
		s.metrics.RecordStoreError("search_questions")
		return nil, domain.NewUnprocessableError("Failed to search questions", err)
	}

	current := util.Paginate(questions, page, util.QuestionsPerPage)
	if len(current) == 0 && len(questions) > 0 {
		return nil, domain.NewNotFoundError("no search results on requested page")
	}

	return &dto.SearchQuestionsResponse{
		Success:        true,
		Questions:      dto.NewQuestionResponses(current),
		TotalQuestions: len(questions),
	}, nil
}

// CreateQuestion implements TriviaService
func (s *triviaService) CreateQuestion(ctx context.Context, req *dto.QuestionRequest) error {
	question := req.ToDomain()
	if err := s.questions.CreateQuestion(ctx, question); err != nil {
		s.metrics.RecordStoreError("create_question")
		return domain.NewUnprocessableError("Failed to create question", err)
	}

	s.metrics.RecordQuestionCreated()
	logger.Get().Info("Question created",
		zap.Int64("category", question.Category),
		zap.Int("difficulty", question.Difficulty),
	)
	return nil
}

// DeleteQuestion implements TriviaService. The response carries the
// requested page of the remaining questions, which may be empty.
func (s *triviaService) DeleteQuestion(ctx context.Context, id int64, page int) (*dto.DeleteQuestionResponse, error) {
	if err := s.questions.DeleteQuestion(ctx, id); err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.metrics.RecordStoreError("delete_question")
		return nil, domain.NewUnprocessableError("Failed to delete question", err)
	}
	s.metrics.RecordQuestionDeleted()
	logger.Get().Info("Question deleted", zap.Int64("id", id))

	remaining, err := s.questions.ListQuestions(ctx)
	if err != nil {
		s.metrics.RecordStoreError("list_questions")
		return nil, domain.NewUnprocessableError("Failed to list remaining questions", err)
	}

	return &dto.DeleteQuestionResponse{
		Success:        true,
		Deleted:        id,
		Questions:      dto.NewQuestionResponses(util.Paginate(remaining, page, util.QuestionsPerPage)),
		TotalQuestions: len(remaining),
	}, nil
}

// PlayQuiz implements TriviaService. It picks uniformly among the questions
// of the requested category, or of all categories when the id is 0, that
// are not listed in previousQuestions.
func (s *triviaService) PlayQuiz(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	categoryID := req.QuizCategory.ID

	var (
		questions []*domain.Question
		err       error
	)
	if categoryID == 0 {
		questions, err = s.questions.ListQuestions(ctx)
	} else {
		questions, err = s.questions.ListQuestionsByCategory(ctx, categoryID)
	}
	if err != nil {
		s.metrics.RecordStoreError("list_quiz_questions")
		return nil, domain.NewUnprocessableError("Failed to load quiz questions", err)
	}

	previous := make(map[int64]struct{}, len(req.PreviousQuestions))
	for _, id := range req.PreviousQuestions {
		previous[id] = struct{}{}
	}

	candidates := make([]*domain.Question, 0, len(questions))
	for _, q := range questions {
		if _, seen := previous[q.ID]; !seen {
			candidates = append(candidates, q)
		}
	}

	if len(candidates) == 0 {
		s.metrics.RecordQuizCompleted()
		logger.Get().Debug("Quiz has no questions left",
			zap.Int64("category", categoryID),
			zap.Int("previous_questions", len(req.PreviousQuestions)),
		)
		return &dto.QuizResponse{Success: true}, nil
	}

	next := dto.NewQuestionResponse(candidates[s.pick(len(candidates))])
	s.metrics.RecordQuizQuestionServed()
	return &dto.QuizResponse{
		Success:         true,
		CurrentQuestion: &next,
	}, nil
}
