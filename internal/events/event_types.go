package events

import (
	"time"

	"github.com/hablalab/academy-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserLoggedIn       EventType = "user_logged_in"
	EventReceiptTokenIssued EventType = "receipt_token_issued"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserLoggedInPayload payload.
type UserLoggedInPayload struct {
	Celular string      `json:"celular"`
	Rol     domain.Role `json:"rol"`
}

// ReceiptTokenIssuedPayload payload.
type ReceiptTokenIssuedPayload struct {
	InscripcionID string    `json:"inscripcion_id"`
	IssuedByAdmin bool      `json:"issued_by_admin"`
	ExpiresAt     time.Time `json:"expires_at"`
}
