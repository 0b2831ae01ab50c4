package repository

import (
	"context"

	"github.com/hablalab/academy-service/internal/domain"
)

// PaymentRepository defines persistence access for payments.
type PaymentRepository interface {
	ListByInscription(ctx context.Context, inscriptionID string) ([]domain.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
}

type paymentRepository struct {
	db DB
}

// NewPaymentRepository returns a Postgres-backed implementation.
func NewPaymentRepository(db DB) PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `
        p.id, p.inscripcion_id, p.monto, p.metodo, p.concepto, p.pagado_at`

func (r *paymentRepository) ListByInscription(ctx context.Context, inscriptionID string) ([]domain.Payment, error) {
	const query = `
        SELECT` + paymentColumns + `
        FROM pagos p WHERE p.inscripcion_id=$1 ORDER BY p.pagado_at`

	return r.scanMany(ctx, query, inscriptionID)
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	const query = `
        SELECT` + paymentColumns + `
        FROM pagos p JOIN inscripciones i ON i.id = p.inscripcion_id
        WHERE i.usuario_id=$1 ORDER BY p.pagado_at DESC`

	return r.scanMany(ctx, query, userID)
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	const query = `
        SELECT` + paymentColumns + `
        FROM pagos p ORDER BY p.pagado_at DESC`

	return r.scanMany(ctx, query)
}

func (r *paymentRepository) scanMany(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.InscriptionID,
			&payment.Monto,
			&payment.Metodo,
			&payment.Concepto,
			&payment.PagadoAt,
		); err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}
