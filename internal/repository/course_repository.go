package repository

import (
	"context"

	"github.com/hablalab/academy-service/internal/domain"
)

// CourseRepository defines persistence access for the course catalog.
type CourseRepository interface {
	ListActive(ctx context.Context) ([]domain.Course, error)
	GetByID(ctx context.Context, id string) (*domain.Course, error)
}

type courseRepository struct {
	db DB
}

// NewCourseRepository returns a Postgres-backed implementation.
func NewCourseRepository(db DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) ListActive(ctx context.Context) ([]domain.Course, error) {
	const query = `
        SELECT id, nombre, descripcion, nivel, precio, activo, created_at
        FROM cursos WHERE activo = TRUE ORDER BY nombre`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var course domain.Course
		if err := rows.Scan(
			&course.ID,
			&course.Nombre,
			&course.Descripcion,
			&course.Nivel,
			&course.Precio,
			&course.Activo,
			&course.CreatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	const query = `
        SELECT id, nombre, descripcion, nivel, precio, activo, created_at
        FROM cursos WHERE id=$1`

	var course domain.Course
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Nombre,
		&course.Descripcion,
		&course.Nivel,
		&course.Precio,
		&course.Activo,
		&course.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &course, nil
}
