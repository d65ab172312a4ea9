package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/service"
	"trivia-api/internal/util"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// TriviaHandler handles category, question and quiz HTTP requests
type TriviaHandler struct {
	service   service.TriviaService
	validator *validation.Validator
}

// NewTriviaHandler creates a new TriviaHandler instance
func NewTriviaHandler(service service.TriviaService) *TriviaHandler {
	return &TriviaHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GetCategories godoc
// @Summary List categories
// @Description Returns every category ordered by id
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /categories [get]
func (h *TriviaHandler) GetCategories(c *fiber.Ctx) error {
	resp, err := h.service.GetCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestions godoc
// @Summary List questions
// @Description Returns one page of ten questions ordered by id, with all categories
// @Tags questions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionPageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /questions [get]
func (h *TriviaHandler) GetQuestions(c *fiber.Ctx) error {
	resp, err := h.service.GetQuestions(c.UserContext(), util.ParsePage(c.Query("page")))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Deletes a question and returns the requested page of the remaining ones
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /questions/{id} [delete]
func (h *TriviaHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.DeleteQuestion(c.UserContext(), id, util.ParsePage(c.Query("page")))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateOrSearchQuestions godoc
// @Summary Create or search questions
// @Description With searchTerm (or search) set, returns a page of questions whose text contains it, ignoring case. Otherwise creates a question.
// @Tags questions
// @Accept json
// @Produce json
// @Param page query int false "Page number for searches" default(1)
// @Param request body dto.QuestionRequest true "Search term or new question"
// @Success 200 {object} dto.SearchQuestionsResponse "Search results. A create returns dto.SuccessResponse, only {\"success\": true}"
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /questions [post]
func (h *TriviaHandler) CreateOrSearchQuestions(c *fiber.Ctx) error {
	var req dto.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewUnprocessableError("invalid question request body", err)
	}

	if term, ok := req.SearchQuery(); ok {
		resp, err := h.service.SearchQuestions(c.UserContext(), term, util.ParsePage(c.Query("page")))
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}

	if err := h.validator.ValidateQuestionRequest(&req); err != nil {
		return err
	}
	if err := h.service.CreateQuestion(c.UserContext(), &req); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// GetCategoryQuestions godoc
// @Summary List questions of a category
// @Description Returns one page of ten questions of the category, with all categories
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionPageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *TriviaHandler) GetCategoryQuestions(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	resp, err := h.service.GetCategoryQuestions(c.UserContext(), id, util.ParsePage(c.Query("page")))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// PlayQuiz godoc
// @Summary Next quiz question
// @Description Returns a random question of quizCategory (0 for all) that is not in previousQuestions. currentQuestion is null when none is left.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Quiz state"
// @Success 200 {object} dto.QuizResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *TriviaHandler) PlayQuiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewUnprocessableError("invalid quiz request body", err)
	}
	if err := h.validator.ValidateQuizRequest(&req); err != nil {
		return err
	}

	resp, err := h.service.PlayQuiz(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// pathID reads the :id route parameter. Routes constrain it to digits, so a
// parse failure only happens on overflow.
func pathID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, domain.NewNotFoundError("invalid id")
	}
	return int64(id), nil
}
