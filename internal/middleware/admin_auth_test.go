package middleware_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"quizdeck/internal/dto"
	"quizdeck/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Manual mock for the service.AuthService interface
type ManualMockAuthService struct {
	ValidateTokenFunc func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

func (m *ManualMockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	panic("not implemented in mock")
}

func (m *ManualMockAuthService) Logout(ctx context.Context, sessionID string) error {
	panic("not implemented in mock")
}

func (m *ManualMockAuthService) ValidateToken(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, tokenString)
	}
	return nil, errors.New("ValidateTokenFunc not set on mock")
}

func TestProtected(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		setupMock      func(mockSvc *ManualMockAuthService)
		expectedStatus int
		expectedEmail  interface{}
	}{
		{
			name:           "No Auth Header",
			authHeader:     "",
			setupMock:      func(mockSvc *ManualMockAuthService) {},
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "Wrong Scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			setupMock:      func(mockSvc *ManualMockAuthService) {},
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "Empty Token",
			authHeader:     "Bearer ",
			setupMock:      func(mockSvc *ManualMockAuthService) {},
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "Valid Token",
			authHeader: "Bearer valid_token",
			setupMock: func(mockSvc *ManualMockAuthService) {
				mockSvc.ValidateTokenFunc = func(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
					assert.Equal(t, "valid_token", tokenString)
					return &dto.AuthClaims{SessionID: "sess-1", Email: "admin@example.com"}, nil
				}
			},
			expectedStatus: fiber.StatusOK,
			expectedEmail:  "admin@example.com",
		},
		{
			name:       "Rejected Token",
			authHeader: "Bearer revoked_token",
			setupMock: func(mockSvc *ManualMockAuthService) {
				mockSvc.ValidateTokenFunc = func(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
					return nil, errors.New("session revoked")
				}
			},
			expectedStatus: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &ManualMockAuthService{}
			tt.setupMock(mockSvc)

			app := fiber.New()
			var gotEmail interface{}
			app.Get("/protected", middleware.Protected(mockSvc), func(c *fiber.Ctx) error {
				gotEmail = c.Locals(middleware.AdminEmailKey)
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set(middleware.AuthorizationHeader, tt.authHeader)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.expectedEmail != nil {
				assert.Equal(t, tt.expectedEmail, gotEmail)
			}
		})
	}
}
