package handler

import (
	"quizdeck/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler serves the public quiz catalog: published quizzes only,
// correct answers redacted.
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// ListPublished godoc
// @Summary List published quizzes
// @Description Returns all published quizzes without correct answers
// @Tags quiz
// @Accept json
// @Produce json
// @Success 200 {object} dto.QuizListResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes [get]
func (h *QuizHandler) ListPublished(c *fiber.Ctx) error {
	list, err := h.service.ListPublishedQuizzes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// GetPublished godoc
// @Summary Get a published quiz
// @Description Returns one published quiz without correct answers
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetPublished(c *fiber.Ctx) error {
	quiz, err := h.service.GetPublishedQuiz(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}
