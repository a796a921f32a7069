package handler

import (
	"quizdeck/internal/dto"
	"quizdeck/internal/service"
	"quizdeck/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SubmissionHandler serves the anonymous quiz-taking endpoints
type SubmissionHandler struct {
	service   service.SubmissionService
	validator *validation.Validator
}

// NewSubmissionHandler creates a new SubmissionHandler instance
func NewSubmissionHandler(service service.SubmissionService, validator *validation.Validator) *SubmissionHandler {
	return &SubmissionHandler{
		service:   service,
		validator: validator,
	}
}

// Start godoc
// @Summary Start a quiz submission
// @Description Binds a respondent to a quiz and returns the submission id
// @Tags submission
// @Accept json
// @Produce json
// @Param request body dto.StartSubmissionRequest true "Respondent details"
// @Success 201 {object} dto.StartSubmissionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /submissions/start [post]
func (h *SubmissionHandler) Start(c *fiber.Ctx) error {
	var req dto.StartSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateStartSubmission(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.StartSubmission(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Finish godoc
// @Summary Finish a quiz submission
// @Description Grades the submitted answers and returns the score
// @Tags submission
// @Accept json
// @Produce json
// @Param request body dto.FinishSubmissionRequest true "Submitted answers"
// @Success 200 {object} dto.FinishSubmissionResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /submissions/finish [post]
func (h *SubmissionHandler) Finish(c *fiber.Ctx) error {
	var req dto.FinishSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateFinishSubmission(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.FinishSubmission(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
