package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/student-records/internal/model"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	stmt := `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = @username
	`

	rows, err := r.db.Query(ctx, stmt, pgx.NamedArgs{"username": username})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get user query for username=%s: %w", username, err)
	}

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:users for username=%s: %w", username, err)
	}

	return &user, nil
}

// CreateUserIfNotExists inserts a user unless the username is taken. It
// reports whether a row was created.
func (r *UserRepository) CreateUserIfNotExists(ctx context.Context, username, passwordHash string) (bool, error) {
	stmt := `
		INSERT INTO users (username, password_hash)
		VALUES (@username, @password_hash)
		ON CONFLICT (username) DO NOTHING
	`

	tag, err := r.db.Exec(ctx, stmt, pgx.NamedArgs{
		"username":      username,
		"password_hash": passwordHash,
	})
	if err != nil {
		return false, fmt.Errorf("failed to insert user %s: %w", username, err)
	}

	return tag.RowsAffected() == 1, nil
}
