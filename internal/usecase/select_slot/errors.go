package select_slot

import "errors"

var (
	// ErrLessonNotFound возвращается, когда урок не найден
	ErrLessonNotFound = errors.New("lesson not found")

	// ErrNotMentoring возвращается для уроков без открытых окон (oneday, study)
	ErrNotMentoring = errors.New("lesson is not a mentoring lesson")

	// ErrOptionNotFound возвращается, когда выбранная опция не принадлежит уроку
	ErrOptionNotFound = errors.New("option not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
