package dto

import "github.com/golang-jwt/jwt/v5"

// AdminLoginRequest is the admin credential check body
// @Description Request body for admin login
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLoginResponse returns the session token for admin endpoints
type AdminLoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// MessageResponse is a plain acknowledgement body
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthClaims are the JWT claims carried by an admin session token. The
// session id must also be live in the session store for the token to be
// accepted, so logout revokes tokens before they expire.
type AuthClaims struct {
	SessionID string `json:"sid"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}
