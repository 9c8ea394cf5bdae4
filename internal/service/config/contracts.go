package config

import (
	"context"

	"github.com/fillinv/lesson-scheduler/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации расписания
type ConfigRepository interface {
	GetConfigWithHierarchy(ctx context.Context, lessonID string) (*domain.SchedulingConfig, error)
	Upsert(ctx context.Context, config *domain.SchedulingConfig) (*domain.SchedulingConfig, error)
	DeleteByLesson(ctx context.Context, lessonID string) error
}

// LessonProvider интерфейс источника уроков (для проверки владельца)
type LessonProvider interface {
	GetLesson(ctx context.Context, lessonID string) (*domain.Lesson, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
