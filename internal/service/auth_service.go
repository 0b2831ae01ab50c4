package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hablalab/academy-service/internal/auth"
	"github.com/hablalab/academy-service/internal/config"
	"github.com/hablalab/academy-service/internal/domain"
	"github.com/hablalab/academy-service/internal/events"
	"github.com/hablalab/academy-service/internal/repository"
	apperrors "github.com/hablalab/academy-service/pkg/util/errorutil"
)

// AuthService coordinates the login flow.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL(), cfg.ReceiptTokenTTL()),
		dispatcher: dispatcher,
	}
}

// TokenManager exposes the shared token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login authenticates an account by phone number and issues a session
// token. Accounts without a stored password hash are legacy records: for
// those any submitted password (including none) succeeds.
func (s *AuthService) Login(ctx context.Context, celular, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByCelular(ctx, celular)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("credenciales inválidas")
		}
		return nil, "", time.Time{}, err
	}

	if user.PasswordHash != nil {
		if err := auth.ComparePassword(*user.PasswordHash, password); err != nil {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("credenciales inválidas")
		}
	}

	token, expiresAt, err := s.tokenMgr.IssueSession(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserLoggedIn,
			UserID:    user.ID,
			Timestamp: time.Now(),
			Payload:   events.UserLoggedInPayload{Celular: user.Celular, Rol: user.Rol},
		})
	}

	return user, token, expiresAt, nil
}
