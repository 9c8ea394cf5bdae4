package select_session_date

import (
	"context"

	selectSessionDate "github.com/fillinv/lesson-scheduler/internal/usecase/select_session_date"
)

type SelectSessionDateUseCase interface {
	Execute(ctx context.Context, req *selectSessionDate.Request) (*selectSessionDate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
