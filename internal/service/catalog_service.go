package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/hablalab/academy-service/internal/domain"
	"github.com/hablalab/academy-service/internal/persistence"
	"github.com/hablalab/academy-service/internal/repository"
	apperrors "github.com/hablalab/academy-service/pkg/util/errorutil"
)

const catalogCacheKey = "catalog:cursos"

// CatalogService serves the public course catalog and per-course lessons.
// The course list backs the marketing pages and is cached in Redis; cache
// failures degrade to direct reads.
type CatalogService struct {
	courses  repository.CourseRepository
	lessons  repository.LessonRepository
	cache    *persistence.Redis
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewCatalogService builds the service.
func NewCatalogService(
	courses repository.CourseRepository,
	lessons repository.LessonRepository,
	cache *persistence.Redis,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		courses:  courses,
		lessons:  lessons,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// ListCourses returns active courses, from cache when possible.
func (s *CatalogService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	if cached, err := s.cache.GetString(ctx, catalogCacheKey); err == nil && cached != "" {
		var courses []domain.Course
		if err := json.Unmarshal([]byte(cached), &courses); err == nil {
			return courses, nil
		}
		s.logger.Warn("discarding malformed catalog cache entry")
	}

	courses, err := s.courses.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.cacheTTL > 0 {
		if encoded, err := json.Marshal(courses); err == nil {
			if err := s.cache.SetString(ctx, catalogCacheKey, string(encoded), s.cacheTTL); err != nil {
				s.logger.Warn("failed to cache catalog", zap.Error(err))
			}
		}
	}

	return courses, nil
}

// GetCourse returns a single course by id.
func (s *CatalogService) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("curso", nil)
		}
		return nil, err
	}
	return course, nil
}

// ListLessons returns the ordered video lessons of a course. Unknown
// courses report not found rather than an empty list.
func (s *CatalogService) ListLessons(ctx context.Context, courseID string) ([]domain.Lesson, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("curso", nil)
		}
		return nil, err
	}
	return s.lessons.ListByCourse(ctx, courseID)
}
