package repository

import (
	"context"

	"github.com/hablalab/academy-service/internal/domain"
)

// UserRepository defines persistence access for school accounts.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByCelular(ctx context.Context, celular string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
        SELECT id, nombre, celular, email, rol, password_hash, created_at, updated_at
        FROM usuarios WHERE id=$1`

	return r.scanOne(ctx, query, id)
}

func (r *userRepository) GetByCelular(ctx context.Context, celular string) (*domain.User, error) {
	const query = `
        SELECT id, nombre, celular, email, rol, password_hash, created_at, updated_at
        FROM usuarios WHERE celular=$1`

	return r.scanOne(ctx, query, celular)
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT id, nombre, celular, email, rol, password_hash, created_at, updated_at
        FROM usuarios ORDER BY nombre`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Nombre,
			&user.Celular,
			&user.Email,
			&user.Rol,
			&user.PasswordHash,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) scanOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Nombre,
		&user.Celular,
		&user.Email,
		&user.Rol,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
