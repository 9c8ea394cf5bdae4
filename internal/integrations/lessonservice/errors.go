package lessonservice

import "errors"

var (
	// ErrLessonNotFound возвращается, когда урок не найден
	ErrLessonNotFound = errors.New("lesson not found")

	// ErrSubmissionRejected возвращается, когда бэкенд отклонил заявку (слот занят, мест нет, урок закрыт)
	ErrSubmissionRejected = errors.New("lessonservice: submission rejected")

	// ErrUnauthorized возвращается, когда бэкенд не принял заголовок авторизации
	ErrUnauthorized = errors.New("lessonservice: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("lessonservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("lessonservice client: invalid response")
)
