package repository

import (
	"context"

	"github.com/hablalab/academy-service/internal/domain"
)

// LessonRepository defines persistence access for course video lessons.
type LessonRepository interface {
	ListByCourse(ctx context.Context, courseID string) ([]domain.Lesson, error)
}

type lessonRepository struct {
	db DB
}

// NewLessonRepository returns a Postgres-backed implementation.
func NewLessonRepository(db DB) LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) ListByCourse(ctx context.Context, courseID string) ([]domain.Lesson, error) {
	const query = `
        SELECT id, curso_id, titulo, video_url, posicion
        FROM lecciones WHERE curso_id=$1 ORDER BY posicion`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []domain.Lesson
	for rows.Next() {
		var lesson domain.Lesson
		if err := rows.Scan(
			&lesson.ID,
			&lesson.CourseID,
			&lesson.Titulo,
			&lesson.VideoURL,
			&lesson.Posicion,
		); err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}
	return lessons, rows.Err()
}
