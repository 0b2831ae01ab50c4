package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hablalab/academy-service/internal/auth"
	"github.com/hablalab/academy-service/internal/domain"
	"github.com/hablalab/academy-service/internal/events"
	"github.com/hablalab/academy-service/internal/repository"
	apperrors "github.com/hablalab/academy-service/pkg/util/errorutil"
)

// ReceiptService issues and redeems receipt-access tokens. A valid token is
// the sole authorization for viewing the inscription it names; ownership is
// only checked at issuance time.
type ReceiptService struct {
	inscriptions repository.InscriptionRepository
	payments     repository.PaymentRepository
	tokenMgr     *auth.TokenManager
	dispatcher   events.Dispatcher
}

// NewReceiptService builds the service.
func NewReceiptService(
	inscriptions repository.InscriptionRepository,
	payments repository.PaymentRepository,
	tokenMgr *auth.TokenManager,
	dispatcher events.Dispatcher,
) *ReceiptService {
	return &ReceiptService{
		inscriptions: inscriptions,
		payments:     payments,
		tokenMgr:     tokenMgr,
		dispatcher:   dispatcher,
	}
}

// ReceiptView is the resolved content behind a receipt-access token.
type ReceiptView struct {
	Inscription *domain.Inscription
	Payments    []domain.Payment
	TotalPagado float64
}

// IssueForStudent issues a receipt token for an inscription the student
// owns. An inscription owned by someone else is indistinguishable from a
// missing one: both come back as not found.
func (s *ReceiptService) IssueForStudent(ctx context.Context, userID, inscriptionID string) (string, time.Time, error) {
	insc, err := s.inscriptions.GetByIDForUser(ctx, inscriptionID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewNotFound("inscripción", nil)
		}
		return "", time.Time{}, err
	}
	return s.issue(ctx, insc, false)
}

// IssueForAdmin issues a receipt token for any inscription, with no owner
// filter. Kept separate from IssueForStudent so the two authorization
// predicates can never be mixed up by a flag.
func (s *ReceiptService) IssueForAdmin(ctx context.Context, inscriptionID string) (string, time.Time, error) {
	insc, err := s.inscriptions.GetByID(ctx, inscriptionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewNotFound("inscripción", nil)
		}
		return "", time.Time{}, err
	}
	return s.issue(ctx, insc, true)
}

// View redeems a receipt token. The token itself is the authorization; no
// session is required.
func (s *ReceiptService) View(ctx context.Context, tokenStr string) (*ReceiptView, error) {
	claims, err := s.tokenMgr.ParseReceiptToken(tokenStr)
	if err != nil {
		return nil, apperrors.NewUnauthorized("token de recibo inválido")
	}

	insc, err := s.inscriptions.GetByID(ctx, claims.InscripcionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("inscripción", nil)
		}
		return nil, err
	}

	payments, err := s.payments.ListByInscription(ctx, insc.ID)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, p := range payments {
		total += p.Monto
	}

	return &ReceiptView{Inscription: insc, Payments: payments, TotalPagado: total}, nil
}

func (s *ReceiptService) issue(ctx context.Context, insc *domain.Inscription, byAdmin bool) (string, time.Time, error) {
	token, expiresAt, err := s.tokenMgr.IssueReceiptToken(insc.ID)
	if err != nil {
		return "", time.Time{}, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventReceiptTokenIssued,
			UserID:    insc.UserID,
			Timestamp: time.Now(),
			Payload: events.ReceiptTokenIssuedPayload{
				InscripcionID: insc.ID,
				IssuedByAdmin: byAdmin,
				ExpiresAt:     expiresAt,
			},
		})
	}

	return token, expiresAt, nil
}
