package lesson

import "errors"

var (
	// ErrCacheMiss возвращается, когда урока нет в кэше
	ErrCacheMiss = errors.New("lesson.cache: miss")

	// ErrCache возвращается при ошибках Redis или сериализации
	ErrCache = errors.New("lesson.cache: error")
)
