package get_session_calendar

import (
	"context"

	getSessionCalendar "github.com/fillinv/lesson-scheduler/internal/usecase/get_session_calendar"
)

type GetSessionCalendarUseCase interface {
	Execute(ctx context.Context, req *getSessionCalendar.Request) (*getSessionCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
