package model

import (
	"time"

	"github.com/deppfellow/student-records/internal/validation"
)

// User is an operator account allowed to call the API.
type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	return validation.Struct(r)
}

func (r *LoginRequest) RequiredMessage() string {
	return "Username and password required"
}

type UserResponse struct {
	Username string `json:"username"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}
