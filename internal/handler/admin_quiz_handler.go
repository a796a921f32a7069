package handler

import (
	"quizdeck/internal/dto"
	"quizdeck/internal/service"
	"quizdeck/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AdminQuizHandler serves the authenticated quiz-authoring endpoints
type AdminQuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewAdminQuizHandler creates a new AdminQuizHandler instance
func NewAdminQuizHandler(service service.QuizService, validator *validation.Validator) *AdminQuizHandler {
	return &AdminQuizHandler{
		service:   service,
		validator: validator,
	}
}

// Create godoc
// @Summary Create a quiz
// @Description Creates an unpublished quiz with its questions
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CreateQuizRequest true "Quiz content"
// @Success 201 {object} dto.AdminQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes [post]
func (h *AdminQuizHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateCreateQuiz(req.Title, req.Questions); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.CreateQuiz(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update godoc
// @Summary Update a quiz
// @Description Replaces a quiz's title, description and questions
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param request body dto.UpdateQuizRequest true "Quiz content"
// @Success 200 {object} dto.AdminQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{id} [put]
func (h *AdminQuizHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateCreateQuiz(req.Title, req.Questions); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.UpdateQuiz(c.Context(), c.Params("id"), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete a quiz
// @Tags admin
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{id} [delete]
func (h *AdminQuizHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteQuiz(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Quiz deleted successfully"})
}

// Publish godoc
// @Summary Publish a quiz
// @Description Makes the quiz visible in the public catalog
// @Tags admin
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.AdminQuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{id}/publish [patch]
func (h *AdminQuizHandler) Publish(c *fiber.Ctx) error {
	resp, err := h.service.SetPublished(c.Context(), c.Params("id"), true)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Unpublish godoc
// @Summary Unpublish a quiz
// @Description Removes the quiz from the public catalog
// @Tags admin
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.AdminQuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{id}/unpublish [patch]
func (h *AdminQuizHandler) Unpublish(c *fiber.Ctx) error {
	resp, err := h.service.SetPublished(c.Context(), c.Params("id"), false)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Get godoc
// @Summary Get a quiz with answers
// @Description Returns one quiz including correct answers
// @Tags admin
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.AdminQuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/admin/{id} [get]
func (h *AdminQuizHandler) Get(c *fiber.Ctx) error {
	resp, err := h.service.GetQuizForAdmin(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// List godoc
// @Summary List all quizzes with answers
// @Description Returns every quiz, published or not, including correct answers
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AdminQuizListResponse
// @Security BearerAuth
// @Router /quizzes/admin/all [get]
func (h *AdminQuizHandler) List(c *fiber.Ctx) error {
	resp, err := h.service.ListQuizzesForAdmin(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
