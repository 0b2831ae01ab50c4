package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hablalab/academy-service/internal/auth"
	"github.com/hablalab/academy-service/internal/domain"
	"github.com/hablalab/academy-service/internal/events"
	apperrors "github.com/hablalab/academy-service/pkg/util/errorutil"
)

type fakeInscriptionRepo struct {
	byID map[string]*domain.Inscription
}

func (f *fakeInscriptionRepo) GetByID(_ context.Context, id string) (*domain.Inscription, error) {
	if insc, ok := f.byID[id]; ok {
		return insc, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeInscriptionRepo) GetByIDForUser(_ context.Context, id, userID string) (*domain.Inscription, error) {
	if insc, ok := f.byID[id]; ok && insc.UserID == userID {
		return insc, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeInscriptionRepo) ListByUser(_ context.Context, userID string) ([]domain.Inscription, error) {
	var out []domain.Inscription
	for _, insc := range f.byID {
		if insc.UserID == userID {
			out = append(out, *insc)
		}
	}
	return out, nil
}

func (f *fakeInscriptionRepo) List(_ context.Context) ([]domain.Inscription, error) {
	var out []domain.Inscription
	for _, insc := range f.byID {
		out = append(out, *insc)
	}
	return out, nil
}

type fakePaymentRepo struct {
	byInscription map[string][]domain.Payment
}

func (f *fakePaymentRepo) ListByInscription(_ context.Context, inscriptionID string) ([]domain.Payment, error) {
	return f.byInscription[inscriptionID], nil
}

func (f *fakePaymentRepo) ListByUser(_ context.Context, _ string) ([]domain.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepo) List(_ context.Context) ([]domain.Payment, error) {
	return nil, nil
}

func newReceiptService(inscriptions ...*domain.Inscription) *ReceiptService {
	inscRepo := &fakeInscriptionRepo{byID: make(map[string]*domain.Inscription)}
	payRepo := &fakePaymentRepo{byInscription: make(map[string][]domain.Payment)}
	for _, insc := range inscriptions {
		inscRepo.byID[insc.ID] = insc
	}
	payRepo.byInscription["insc-1"] = []domain.Payment{
		{ID: "p-1", InscriptionID: "insc-1", Monto: 500, Metodo: "efectivo", PagadoAt: time.Now()},
		{ID: "p-2", InscriptionID: "insc-1", Monto: 250, Metodo: "transferencia", PagadoAt: time.Now()},
	}
	tokenMgr := auth.NewTokenManager("test-secret", time.Hour, 30*24*time.Hour)
	return NewReceiptService(inscRepo, payRepo, tokenMgr, events.NewInMemoryDispatcher())
}

func sampleInscription() *domain.Inscription {
	return &domain.Inscription{
		ID:         "insc-1",
		UserID:     "u-owner",
		CourseID:   "c-1",
		CursoName:  "Inglés B1",
		Status:     domain.InscriptionStatusActive,
		MontoTotal: 750,
	}
}

func TestIssueForStudentOwnInscription(t *testing.T) {
	svc := newReceiptService(sampleInscription())

	token, expiresAt, err := svc.IssueForStudent(context.Background(), "u-owner", "insc-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), expiresAt, 5*time.Second)
}

func TestIssueForStudentForeignInscriptionIsNotFound(t *testing.T) {
	svc := newReceiptService(sampleInscription())

	_, _, err := svc.IssueForStudent(context.Background(), "u-intruder", "insc-1")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 404, domainErr.HTTPStatus)
}

func TestIssueForAdminIgnoresOwnership(t *testing.T) {
	svc := newReceiptService(sampleInscription())

	// The admin path has no owner filter: any existing inscription works.
	token, _, err := svc.IssueForAdmin(context.Background(), "insc-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestIssueForAdminUnknownInscription(t *testing.T) {
	svc := newReceiptService()

	_, _, err := svc.IssueForAdmin(context.Background(), "does-not-exist")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 404, domainErr.HTTPStatus)
}

func TestViewWithIssuedToken(t *testing.T) {
	svc := newReceiptService(sampleInscription())

	token, _, err := svc.IssueForAdmin(context.Background(), "insc-1")
	require.NoError(t, err)

	view, err := svc.View(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "insc-1", view.Inscription.ID)
	assert.Len(t, view.Payments, 2)
	assert.InDelta(t, 750, view.TotalPagado, 0.001)
}

func TestViewRejectsSessionToken(t *testing.T) {
	svc := newReceiptService(sampleInscription())

	sessionToken, _, err := svc.tokenMgr.IssueSession(&domain.User{ID: "u-1", Celular: "555", Rol: domain.RoleAlumno})
	require.NoError(t, err)

	_, err = svc.View(context.Background(), sessionToken)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 401, domainErr.HTTPStatus)
}

func TestViewGarbageToken(t *testing.T) {
	svc := newReceiptService()

	_, err := svc.View(context.Background(), "garbage")
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 401, domainErr.HTTPStatus)
}
