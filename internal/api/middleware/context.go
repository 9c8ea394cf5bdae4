package middleware

import "context"

type contextKey int

const (
	userIDKey contextKey = iota
	authHeaderKey
	requestIDKey
	viewerIDKey
)

// Заголовки запроса
const (
	HeaderUserID        = "X-User-ID"
	HeaderRequestID     = "X-Request-ID"
	HeaderViewerID      = "X-Viewer-ID"
	HeaderAuthorization = "Authorization"
)

// GetUserID возвращает ID пользователя, установленный Auth
func GetUserID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userIDKey).(string)
	return v, ok && v != ""
}

// GetAuthHeader возвращает заголовок Authorization для передачи в бэкенд уроков
func GetAuthHeader(ctx context.Context) string {
	v, _ := ctx.Value(authHeaderKey).(string)
	return v
}

// GetRequestID возвращает ID запроса
func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}

// GetViewerID возвращает область "последний запрос побеждает".
// Без X-Viewer-ID каждый запрос образует свою область.
func GetViewerID(ctx context.Context) string {
	v, _ := ctx.Value(viewerIDKey).(string)
	return v
}
