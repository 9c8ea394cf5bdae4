package get_mentoring_week

import (
	"context"

	getMentoringWeek "github.com/fillinv/lesson-scheduler/internal/usecase/get_mentoring_week"
)

type GetMentoringWeekUseCase interface {
	Execute(ctx context.Context, req *getMentoringWeek.Request) (*getMentoringWeek.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
