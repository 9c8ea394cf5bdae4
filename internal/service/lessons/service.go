package lessons

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	lessonCache "github.com/fillinv/lesson-scheduler/internal/infra/cache/lesson"
	"github.com/fillinv/lesson-scheduler/internal/integrations/lessonservice"
)

// Service источник расписаний уроков: кэш поверх бэкенда уроков
type Service struct {
	client  LessonClient
	cache   LessonCache
	metrics Metrics
	logger  Logger
}

// NewService создает новый экземпляр сервиса. cache может быть nil.
func NewService(client LessonClient, cache LessonCache, metrics Metrics, logger Logger) *Service {
	return &Service{
		client:  client,
		cache:   cache,
		metrics: metrics,
		logger:  logger,
	}
}

// GetLesson возвращает расписание урока.
// Ошибки кэша не критичны: при недоступности Redis расписание берется из бэкенда.
func (s *Service) GetLesson(ctx context.Context, lessonID string) (*domain.Lesson, error) {
	if s.cache != nil {
		lesson, err := s.cache.Get(ctx, lessonID)
		switch {
		case err == nil:
			s.metrics.CacheLookup(true)
			return lesson, nil
		case errors.Is(err, lessonCache.ErrCacheMiss):
			s.metrics.CacheLookup(false)
		default:
			s.metrics.CacheLookup(false)
			s.logger.Warn("GetLesson: cache unavailable for lesson=%s: %v", lessonID, err)
		}
	}

	start := time.Now()
	lesson, err := s.client.GetLesson(ctx, lessonID)
	s.metrics.UpstreamCall("get_lesson", err, time.Since(start))
	if err != nil {
		if errors.Is(err, lessonservice.ErrLessonNotFound) {
			s.logger.Warn("GetLesson: lesson=%s not found", lessonID)
			return nil, ErrLessonNotFound
		}
		s.logger.Error("GetLesson: failed to fetch lesson=%s: %v", lessonID, err)
		return nil, fmt.Errorf("%w: GetLesson: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, lesson); err != nil {
			s.logger.Warn("GetLesson: failed to cache lesson=%s: %v", lessonID, err)
		}
	}

	return lesson, nil
}

// Submit отправляет заявку в бэкенд уроков. Кэш урока сбрасывается после любого
// ответа бэкенда о занятости, чтобы следующее обновление увидело актуальные данные.
func (s *Service) Submit(ctx context.Context, submission *domain.BookingSubmission, authHeader string) (*domain.BookingResult, error) {
	start := time.Now()
	result, err := s.client.CreateSchedule(ctx, submission, authHeader)
	s.metrics.UpstreamCall("create_schedule", err, time.Since(start))

	if err == nil || errors.Is(err, lessonservice.ErrSubmissionRejected) {
		s.invalidate(ctx, submission.LessonID)
	}

	if err != nil {
		switch {
		case errors.Is(err, lessonservice.ErrSubmissionRejected):
			s.logger.Warn("Submit: backend rejected submission for lesson=%s: %v", submission.LessonID, err)
			return nil, fmt.Errorf("%w: %v", ErrSubmissionRejected, err)
		case errors.Is(err, lessonservice.ErrLessonNotFound):
			return nil, ErrLessonNotFound
		case errors.Is(err, lessonservice.ErrUnauthorized):
			return nil, ErrUnauthorized
		default:
			s.logger.Error("Submit: failed to submit for lesson=%s: %v", submission.LessonID, err)
			return nil, fmt.Errorf("%w: Submit: %v", ErrInternal, err)
		}
	}

	return result, nil
}

func (s *Service) invalidate(ctx context.Context, lessonID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, lessonID); err != nil {
		s.logger.Warn("invalidate: failed to drop cached lesson=%s: %v", lessonID, err)
	}
}
