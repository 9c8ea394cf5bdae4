package submit_booking

import (
	"context"
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
)

// LessonService интерфейс источника расписаний и отправки заявок
type LessonService interface {
	GetLesson(ctx context.Context, lessonID string) (*domain.Lesson, error)
	Submit(ctx context.Context, submission *domain.BookingSubmission, authHeader string) (*domain.BookingResult, error)
}

// ConfigProvider интерфейс получения действующей конфигурации урока
type ConfigProvider interface {
	Effective(ctx context.Context, lessonID string) (*domain.SchedulingConfig, error)
}

// Metrics интерфейс метрик
type Metrics interface {
	Submission(lessonType, outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
