package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/hablalab/academy-service/internal/domain"
)

// ReceiptTokenKind discriminates receipt-access tokens from session tokens.
const ReceiptTokenKind = "receipt_access"

var (
	errInvalidClaims = errors.New("invalid token claims")
	errWrongKind     = errors.New("unexpected token kind")
)

// TokenManager issues and verifies the two token shapes the site uses:
// 24-hour session tokens and 30-day receipt-access tokens. Verification is
// pure and never consults the database, so a token stays valid for its full
// window even if the underlying account changes.
type TokenManager struct {
	secret     []byte
	sessionTTL time.Duration
	receiptTTL time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, sessionTTL, receiptTTL time.Duration) *TokenManager {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	if receiptTTL <= 0 {
		receiptTTL = 30 * 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), sessionTTL: sessionTTL, receiptTTL: receiptTTL}
}

// SessionClaims is the identity snapshot embedded in a session token.
// The fields reflect the account as it was at issuance time.
type SessionClaims struct {
	Nombre  string      `json:"nombre"`
	Celular string      `json:"celular"`
	Email   *string     `json:"email,omitempty"`
	Rol     domain.Role `json:"rol"`
	jwt.RegisteredClaims
}

// ReceiptClaims scopes bearer access to exactly one inscription.
type ReceiptClaims struct {
	InscripcionID string `json:"inscripcion_id"`
	Kind          string `json:"kind"`
	jwt.RegisteredClaims
}

// IssueSession builds and signs a session token for the user.
func (tm *TokenManager) IssueSession(user *domain.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.sessionTTL)
	claims := &SessionClaims{
		Nombre:  user.Nombre,
		Celular: user.Celular,
		Email:   user.Email,
		Rol:     user.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// IssueReceiptToken signs a receipt-access token for one inscription.
func (tm *TokenManager) IssueReceiptToken(inscriptionID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.receiptTTL)
	claims := &ReceiptClaims{
		InscripcionID: inscriptionID,
		Kind:          ReceiptTokenKind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseSession validates signature and expiry and returns the identity
// snapshot. Any failure yields an error, never a partial result. Receipt
// tokens share the signing secret but carry no subject; they are rejected
// here so a receipt bearer can never open a session.
func (tm *TokenManager) ParseSession(tokenStr string) (*SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, tm.keyFunc)
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, errInvalidClaims
	}
	if claims.Subject == "" || claims.Celular == "" {
		return nil, errWrongKind
	}
	return claims, nil
}

// ParseReceiptToken validates a receipt-access token. Session tokens are
// rejected here even though they share the signing secret.
func (tm *TokenManager) ParseReceiptToken(tokenStr string) (*ReceiptClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &ReceiptClaims{}, tm.keyFunc)
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*ReceiptClaims)
	if !ok || !parsed.Valid {
		return nil, errInvalidClaims
	}
	if claims.Kind != ReceiptTokenKind || claims.InscripcionID == "" {
		return nil, errWrongKind
	}
	return claims, nil
}

func (tm *TokenManager) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method != jwt.SigningMethodHS256 {
		return nil, errors.New("unexpected signing method")
	}
	return tm.secret, nil
}
