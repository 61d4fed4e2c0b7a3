package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestor-maestro/gestor/internal/auth"
)

func TestService_IssueAndVerify(t *testing.T) {
	svc := auth.NewService("test-secret", time.Hour)
	accountID := uuid.New()

	token, err := svc.Issue(accountID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}

func TestService_Verify_Expired(t *testing.T) {
	svc := auth.NewService("test-secret", -time.Minute)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestService_Verify_WrongSecret(t *testing.T) {
	issuer := auth.NewService("secret-a", time.Hour)
	verifier := auth.NewService("secret-b", time.Hour)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestService_Verify_Garbage(t *testing.T) {
	svc := auth.NewService("test-secret", time.Hour)

	for _, token := range []string{"", "not.a.token", "a.b"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	}
}
