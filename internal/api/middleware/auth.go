package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/fillinv/lesson-scheduler/internal/api/handlers"
)

const msgMissingUserID = "требуется заголовок X-User-ID"

// Auth требует X-User-ID и сохраняет его вместе с заголовком Authorization в контексте.
// Токен не проверяется: это делает бэкенд уроков.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, authHeaderKey, r.Header.Get(HeaderAuthorization))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
