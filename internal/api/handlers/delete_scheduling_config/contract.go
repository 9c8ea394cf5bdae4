package delete_scheduling_config

import "context"

type ConfigService interface {
	Delete(ctx context.Context, lessonID, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
