package lessons

import (
	"context"
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
)

// LessonClient интерфейс клиента бэкенда уроков
type LessonClient interface {
	GetLesson(ctx context.Context, lessonID string) (*domain.Lesson, error)
	CreateSchedule(ctx context.Context, submission *domain.BookingSubmission, authHeader string) (*domain.BookingResult, error)
}

// LessonCache интерфейс кэша расписаний
type LessonCache interface {
	Get(ctx context.Context, lessonID string) (*domain.Lesson, error)
	Set(ctx context.Context, lesson *domain.Lesson) error
	Invalidate(ctx context.Context, lessonID string) error
}

// Metrics интерфейс метрик
type Metrics interface {
	UpstreamCall(operation string, err error, elapsed time.Duration)
	CacheLookup(hit bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
