package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"quizdeck/internal/cache"
	"quizdeck/internal/config"
	"quizdeck/internal/domain"
	"quizdeck/internal/dto"
	"quizdeck/internal/logger"
	"quizdeck/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// AuthService issues and validates admin session tokens. A token is only
// accepted while its session id is still live in the session store, so
// logout revokes access before the JWT itself expires.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, sessionID string) error
	ValidateToken(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

type authServiceImpl struct {
	sessions domain.Cache
	cfg      *config.Config
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(sessions domain.Cache, cfg *config.Config) (AuthService, error) {
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("jwt secret for auth service is not configured")
	}
	if cfg.Auth.AdminEmail == "" || cfg.Auth.AdminPassword == "" {
		return nil, errors.New("admin credentials for auth service are not configured")
	}
	return &authServiceImpl{
		sessions: sessions,
		cfg:      cfg,
	}, nil
}

func sessionKey(sessionID string) string {
	return cache.GenerateCacheKey("auth", "session", sessionID)
}

// Login checks the configured admin credentials and, on success, opens a
// session and returns a signed token carrying its id.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.cfg.Auth.AdminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Auth.AdminPassword)) == 1
	if !emailOK || !passwordOK {
		return "", domain.NewUnauthorizedError("Invalid credentials")
	}

	sessionID := util.NewULID()
	if err := s.sessions.Set(ctx, sessionKey(sessionID), email, s.cfg.Auth.SessionTTL); err != nil {
		return "", domain.NewInternalError("Failed to store admin session", err)
	}

	now := time.Now()
	claims := dto.AuthClaims{
		SessionID: sessionID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Auth.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   email,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		return "", domain.NewInternalError("Failed to sign session token", err)
	}

	logger.Get().Info("Admin logged in", zap.String("sessionID", sessionID))
	return signed, nil
}

// Logout revokes the session. The JWT remains well-formed but is rejected
// by ValidateToken once the session id is gone.
func (s *authServiceImpl) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionKey(sessionID)); err != nil {
		return domain.NewInternalError("Failed to revoke admin session", err)
	}
	logger.Get().Info("Admin logged out", zap.String("sessionID", sessionID))
	return nil
}

// ValidateToken parses the JWT and verifies the session is still live.
func (s *authServiceImpl) ValidateToken(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Warn("Admin session token expired", zap.Error(err))
		} else {
			logger.Get().Warn("Admin session token validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidJWTToken
	}

	if _, err := s.sessions.Get(ctx, sessionKey(claims.SessionID)); err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewUnauthorizedError("Session has been revoked or expired")
		}
		return nil, domain.NewInternalError("Failed to look up admin session", err)
	}

	return claims, nil
}
