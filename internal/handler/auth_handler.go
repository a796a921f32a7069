package handler

import (
	"quizdeck/internal/dto"
	"quizdeck/internal/middleware"
	"quizdeck/internal/service"
	"quizdeck/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler serves the admin login and logout endpoints
type AuthHandler struct {
	service   service.AuthService
	validator *validation.Validator
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(service service.AuthService, validator *validation.Validator) *AuthHandler {
	return &AuthHandler{
		service:   service,
		validator: validator,
	}
}

// Login godoc
// @Summary Admin login
// @Description Checks admin credentials and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} dto.AdminLoginResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateAdminLogin(&req); len(errs) > 0 {
		return errs
	}

	token, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.AdminLoginResponse{
		Token:   token,
		Message: "Login successful",
	})
}

// Logout godoc
// @Summary Admin logout
// @Description Revokes the current admin session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sessionID, ok := c.Locals(middleware.SessionIDKey).(string)
	if !ok || sessionID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "No active session")
	}

	if err := h.service.Logout(c.Context(), sessionID); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Logout successful"})
}
