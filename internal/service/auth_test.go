package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/student-records/internal/errs"
	"github.com/deppfellow/student-records/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.store.AddUser("admin", "admin123")

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := f.services.Auth.Login(ctx, &model.LoginRequest{Username: "admin", Password: "admin123"})
		require.NoError(t, err)
		assert.Equal(t, "admin", resp.User.Username)
		require.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(15*60), resp.ExpiresIn)

		username, err := f.services.Auth.Authenticate(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin", username)
	})

	for name, req := range map[string]*model.LoginRequest{
		"wrong password": {Username: "admin", Password: "nope"},
		"unknown user":   {Username: "ghost", Password: "admin123"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.services.Auth.Login(ctx, req)
			httpErr := requireHTTPError(t, err, http.StatusUnauthorized, "Invalid credentials")
			assert.Equal(t, errs.CodeInvalidCredentials, httpErr.Code)
		})
	}

	t.Run("store failure is not a credentials error", func(t *testing.T) {
		boom := errors.New("db down")
		f.store.Err = boom
		defer func() { f.store.Err = nil }()

		_, err := f.services.Auth.Login(ctx, &model.LoginRequest{Username: "admin", Password: "admin123"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	f := newFixture(t)
	_, err := f.services.Auth.Authenticate("garbage")
	assert.Error(t, err)
}

func TestSeedAdminKeepsExistingPassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.services.Auth.SeedAdmin(ctx, "admin", "first-password"))
	require.NoError(t, f.services.Auth.SeedAdmin(ctx, "admin", "second-password"))

	_, err := f.services.Auth.Login(ctx, &model.LoginRequest{Username: "admin", Password: "first-password"})
	assert.NoError(t, err)

	_, err = f.services.Auth.Login(ctx, &model.LoginRequest{Username: "admin", Password: "second-password"})
	assert.Error(t, err)
}
