package get_scheduling_config

import (
	"context"

	"github.com/fillinv/lesson-scheduler/internal/service/config/models"
)

type ConfigService interface {
	GetEffective(ctx context.Context, lessonID string) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
