package get_session_calendar

import "errors"

var (
	// ErrLessonNotFound возвращается, когда урок не найден
	ErrLessonNotFound = errors.New("lesson not found")

	// ErrNoFixedSessions возвращается для уроков наставничества
	ErrNoFixedSessions = errors.New("lesson has no fixed sessions")

	// ErrStaleRefresh возвращается, когда запрос вытеснен более новым
	ErrStaleRefresh = errors.New("refresh superseded by a newer request")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
