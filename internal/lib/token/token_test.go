package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestGenerateAndParse(t *testing.T) {
	m := NewManager(testSecret, "student-records", 15*time.Minute)

	raw, err := m.Generate("admin")
	require.NoError(t, err)

	claims, err := m.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username())
	assert.Equal(t, "student-records", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseExpired(t *testing.T) {
	m := NewManager(testSecret, "student-records", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }

	raw, err := m.Generate("admin")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(raw)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestParseRejects(t *testing.T) {
	m := NewManager(testSecret, "student-records", time.Minute)

	other := NewManager("another-secret-another-secret!!", "student-records", time.Minute)
	foreign, err := other.Generate("admin")
	require.NoError(t, err)

	wrongIssuer, err := NewManager(testSecret, "someone-else", time.Minute).Generate("admin")
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "admin",
		Issuer:    "student-records",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "student-records",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "not-a-token",
		"empty":        "",
		"wrong secret": foreign,
		"wrong issuer": wrongIssuer,
		"alg none":     none,
		"missing sub":  noSubject,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := m.Parse(raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
