package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/deppfellow/student-records/internal/errs"
	"github.com/deppfellow/student-records/internal/lib/token"
	"github.com/deppfellow/student-records/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the username is unknown so both
// failure paths take about as long.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

type AuthService struct {
	users  UserRepository
	tokens *token.Manager
}

func NewAuthService(users UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

func errInvalidCredentials() error {
	return &errs.HTTPError{
		Code:     errs.CodeInvalidCredentials,
		Message:  "Invalid credentials",
		Status:   http.StatusUnauthorized,
		Override: true,
	}
}

// Login checks the credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := zerolog.Ctx(ctx)

	user, err := s.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
		logger.Warn().Str("username", req.Username).Msg("login attempt for unknown user")
		return nil, errInvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn().Str("username", req.Username).Msg("login attempt with wrong password")
		return nil, errInvalidCredentials()
	}

	accessToken, err := s.tokens.Generate(user.Username)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("username", user.Username).Msg("user logged in")

	return &model.LoginResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
		User:        model.UserResponse{Username: user.Username},
	}, nil
}

// Authenticate verifies a bearer token and returns the username it was
// issued to.
func (s *AuthService) Authenticate(raw string) (string, error) {
	claims, err := s.tokens.Parse(raw)
	if err != nil {
		return "", err
	}
	return claims.Username(), nil
}

// SeedAdmin creates the configured operator account unless it already
// exists. An existing account keeps its password.
func (s *AuthService) SeedAdmin(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	created, err := s.users.CreateUserIfNotExists(ctx, username, string(hash))
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if created {
		zerolog.Ctx(ctx).Info().Str("username", username).Msg("admin user created")
	}
	return nil
}
