package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// RequestID назначает запросу ID (X-Request-ID) и область зрителя (X-Viewer-ID)
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(HeaderRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		viewerID := strings.TrimSpace(r.Header.Get(HeaderViewerID))
		if viewerID == "" {
			viewerID = requestID
		}

		w.Header().Set(HeaderRequestID, requestID)

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		ctx = context.WithValue(ctx, viewerIDKey, viewerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
