package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhalfin/accounts/pkg/auth"
)

func testUser() auth.User {
	return auth.User{
		ID:    uuid.New(),
		Name:  "Ada",
		Email: "ada@x.com",
	}
}

func TestGenerateAndVerify(t *testing.T) {
	t.Parallel()

	svc := NewService("super-secret", "accounts-service", time.Hour)
	user := testUser()

	token, err := svc.Generate(context.Background(), user)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, "ada@x.com", claims.Email)
	assert.Equal(t, "accounts-service", claims.Issuer)
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	svc := NewService("super-secret", "accounts-service", -1*time.Second)

	token, err := svc.Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	right := NewService("right-secret", "accounts-service", time.Hour)
	wrong := NewService("wrong-secret", "accounts-service", time.Hour)

	token, err := right.Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = wrong.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongIssuer(t *testing.T) {
	t.Parallel()

	issued := NewService("super-secret", "someone-else", time.Hour)
	verifier := NewService("super-secret", "accounts-service", time.Hour)

	token, err := issued.Generate(context.Background(), testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	svc := NewService("super-secret", "accounts-service", time.Hour)

	_, err := svc.Verify("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Verify("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
