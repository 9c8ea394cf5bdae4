package lessons

import "errors"

var (
	// ErrLessonNotFound возвращается, когда урок не найден
	ErrLessonNotFound = errors.New("lesson not found")

	// ErrSubmissionRejected возвращается, когда бэкенд окончательно отклонил заявку
	ErrSubmissionRejected = errors.New("submission rejected")

	// ErrUnauthorized возвращается, когда бэкенд не принял авторизацию
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("lessons service: internal error")
)
