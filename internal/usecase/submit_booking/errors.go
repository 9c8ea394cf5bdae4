package submit_booking

import (
	"errors"

	"github.com/fillinv/lesson-scheduler/internal/scheduling"
)

var (
	// ErrLessonNotFound возвращается, когда урок не найден
	ErrLessonNotFound = errors.New("lesson not found")

	// ErrOptionNotFound возвращается, когда опция не принадлежит уроку
	ErrOptionNotFound = errors.New("option not found")

	// ErrSessionNotFound возвращается, когда сессия не принадлежит уроку
	ErrSessionNotFound = errors.New("session not found")

	// ErrSelectionRejected возвращается, когда выбор не прошел локальную проверку
	ErrSelectionRejected = errors.New("selection rejected")

	// ErrSubmissionRejected возвращается, когда бэкенд окончательно отклонил заявку
	ErrSubmissionRejected = errors.New("submission rejected by lesson backend")

	// ErrUnauthorized возвращается, когда бэкенд не принял авторизацию
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

// RejectedError локальный отказ с причиной; errors.Is(err, ErrSelectionRejected) == true
type RejectedError struct {
	Reason scheduling.RejectReason
}

func (e *RejectedError) Error() string {
	return ErrSelectionRejected.Error() + ": " + e.Reason.String()
}

func (e *RejectedError) Unwrap() error {
	return ErrSelectionRejected
}

func rejected(reason scheduling.RejectReason) error {
	return &RejectedError{Reason: reason}
}
