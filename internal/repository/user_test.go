package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserByUsername(t *testing.T) {
	ctx := context.Background()
	mock := newMock(t)
	repo := NewUserRepository(mock)

	now := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)
	columns := []string{"id", "username", "password_hash", "created_at"}

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs(pgx.NamedArgs{"username": "admin"}).
		WillReturnRows(mock.NewRows(columns).AddRow(int64(1), "admin", "$2a$10$hash", now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs(pgx.NamedArgs{"username": "ghost"}).
		WillReturnRows(mock.NewRows(columns))

	user, err := repo.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	assert.Equal(t, now, user.CreatedAt)

	_, err = repo.GetUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
