package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hablalab/academy-service/internal/domain"
)

func testUser() *domain.User {
	email := "maria@example.com"
	return &domain.User{
		ID:      "u-123",
		Nombre:  "María Pérez",
		Celular: "5551234567",
		Email:   &email,
		Rol:     domain.RoleAlumno,
	}
}

func TestSessionRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour, time.Hour)
	user := testUser()

	token, expiresAt, err := tm.IssueSession(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.ParseSession(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, user.Nombre, claims.Nombre)
	assert.Equal(t, user.Celular, claims.Celular)
	require.NotNil(t, claims.Email)
	assert.Equal(t, *user.Email, *claims.Email)
	assert.Equal(t, domain.RoleAlumno, claims.Rol)
}

func TestExpiredSessionRejected(t *testing.T) {
	// NewTokenManager refuses non-positive TTLs, so build one directly to
	// issue an already-expired token.
	tm := &TokenManager{secret: []byte("secret"), sessionTTL: -time.Minute, receiptTTL: time.Hour}

	token, _, err := tm.IssueSession(testUser())
	require.NoError(t, err)

	_, err = tm.ParseSession(token)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour, time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour, time.Hour)

	token, _, err := issuer.IssueSession(testUser())
	require.NoError(t, err)

	_, err = verifier.ParseSession(token)
	assert.Error(t, err)
}

func TestMalformedTokenRejected(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour, time.Hour)

	_, err := tm.ParseSession("not-a-jwt")
	assert.Error(t, err)
}

func TestReceiptTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour, 30*24*time.Hour)

	token, expiresAt, err := tm.IssueReceiptToken("insc-42")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.ParseReceiptToken(token)
	require.NoError(t, err)
	assert.Equal(t, "insc-42", claims.InscripcionID)
	assert.Equal(t, ReceiptTokenKind, claims.Kind)
	assert.NotEmpty(t, claims.ID)
}

func TestSessionTokenIsNotAReceiptToken(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour, time.Hour)

	token, _, err := tm.IssueSession(testUser())
	require.NoError(t, err)

	_, err = tm.ParseReceiptToken(token)
	assert.Error(t, err)
}

func TestReceiptTokenIsNotASession(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour, time.Hour)

	token, _, err := tm.IssueReceiptToken("insc-42")
	require.NoError(t, err)

	// A receipt token is signed with the same secret but carries no
	// identity; it must never verify as a session.
	_, err = tm.ParseSession(token)
	assert.Error(t, err)
}
