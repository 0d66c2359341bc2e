package auth

import "time"

// User represents a registered account. The password hash never leaves the
// auth module.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// SignupRequest is the payload for POST /api/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the payload for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Session is the issued credential returned by signup and login.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}
