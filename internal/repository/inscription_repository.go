package repository

import (
	"context"

	"github.com/hablalab/academy-service/internal/domain"
)

// InscriptionRepository defines persistence access for enrollments.
//
// GetByID and GetByIDForUser back two deliberately distinct authorization
// paths: the admin lookup has no owner filter, the self-service lookup
// scopes by owning user and reports a missing row for inscriptions owned by
// someone else.
type InscriptionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Inscription, error)
	GetByIDForUser(ctx context.Context, id, userID string) (*domain.Inscription, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Inscription, error)
	List(ctx context.Context) ([]domain.Inscription, error)
}

type inscriptionRepository struct {
	db DB
}

// NewInscriptionRepository returns a Postgres-backed implementation.
func NewInscriptionRepository(db DB) InscriptionRepository {
	return &inscriptionRepository{db: db}
}

const inscriptionColumns = `
        i.id, i.usuario_id, i.curso_id, c.nombre, i.estado, i.monto_total, i.created_at`

func (r *inscriptionRepository) GetByID(ctx context.Context, id string) (*domain.Inscription, error) {
	const query = `
        SELECT` + inscriptionColumns + `
        FROM inscripciones i JOIN cursos c ON c.id = i.curso_id
        WHERE i.id=$1`

	return r.scanOne(ctx, query, id)
}

func (r *inscriptionRepository) GetByIDForUser(ctx context.Context, id, userID string) (*domain.Inscription, error) {
	const query = `
        SELECT` + inscriptionColumns + `
        FROM inscripciones i JOIN cursos c ON c.id = i.curso_id
        WHERE i.id=$1 AND i.usuario_id=$2`

	return r.scanOne(ctx, query, id, userID)
}

func (r *inscriptionRepository) ListByUser(ctx context.Context, userID string) ([]domain.Inscription, error) {
	const query = `
        SELECT` + inscriptionColumns + `
        FROM inscripciones i JOIN cursos c ON c.id = i.curso_id
        WHERE i.usuario_id=$1 ORDER BY i.created_at DESC`

	return r.scanMany(ctx, query, userID)
}

func (r *inscriptionRepository) List(ctx context.Context) ([]domain.Inscription, error) {
	const query = `
        SELECT` + inscriptionColumns + `
        FROM inscripciones i JOIN cursos c ON c.id = i.curso_id
        ORDER BY i.created_at DESC`

	return r.scanMany(ctx, query)
}

func (r *inscriptionRepository) scanOne(ctx context.Context, query string, args ...any) (*domain.Inscription, error) {
	var insc domain.Inscription
	if err := r.db.QueryRow(ctx, query, args...).Scan(
		&insc.ID,
		&insc.UserID,
		&insc.CourseID,
		&insc.CursoName,
		&insc.Status,
		&insc.MontoTotal,
		&insc.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &insc, nil
}

func (r *inscriptionRepository) scanMany(ctx context.Context, query string, args ...any) ([]domain.Inscription, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inscriptions []domain.Inscription
	for rows.Next() {
		var insc domain.Inscription
		if err := rows.Scan(
			&insc.ID,
			&insc.UserID,
			&insc.CourseID,
			&insc.CursoName,
			&insc.Status,
			&insc.MontoTotal,
			&insc.CreatedAt,
		); err != nil {
			return nil, err
		}
		inscriptions = append(inscriptions, insc)
	}
	return inscriptions, rows.Err()
}
