package select_session_date

import (
	"context"
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
)

// LessonProvider интерфейс источника расписаний уроков
type LessonProvider interface {
	GetLesson(ctx context.Context, lessonID string) (*domain.Lesson, error)
}

// ConfigProvider интерфейс получения действующей конфигурации урока
type ConfigProvider interface {
	Effective(ctx context.Context, lessonID string) (*domain.SchedulingConfig, error)
}

// Metrics интерфейс метрик
type Metrics interface {
	DateSelection(lessonType string, accepted bool, reason string)
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
