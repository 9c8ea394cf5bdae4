package get_session_calendar

import (
	"context"
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	"github.com/fillinv/lesson-scheduler/internal/refresh"
)

// LessonProvider интерфейс источника расписаний уроков
type LessonProvider interface {
	GetLesson(ctx context.Context, lessonID string) (*domain.Lesson, error)
}

// ConfigProvider интерфейс получения действующей конфигурации урока
type ConfigProvider interface {
	Effective(ctx context.Context, lessonID string) (*domain.SchedulingConfig, error)
}

// RefreshCoordinator интерфейс "последний запрос побеждает"
type RefreshCoordinator interface {
	Begin(ctx context.Context, scope string, key refresh.Key) *refresh.Ticket
	Commit(ticket *refresh.Ticket) error
	Release(ticket *refresh.Ticket)
}

// Metrics интерфейс метрик
type Metrics interface {
	StaleRefresh(view string)
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
