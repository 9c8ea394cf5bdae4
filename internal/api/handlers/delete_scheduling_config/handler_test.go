package delete_scheduling_config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/fillinv/lesson-scheduler/internal/api/middleware"
	"github.com/fillinv/lesson-scheduler/internal/service/config"
	"github.com/fillinv/lesson-scheduler/pkg/logger"
)

type stubService struct {
	err      error
	lessonID string
	userID   string
}

func (s *stubService) Delete(ctx context.Context, lessonID, userID string) error {
	s.lessonID = lessonID
	s.userID = userID
	return s.err
}

func serve(svc *stubService) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/api/v1/lessons/{lessonId}/scheduling-config", NewHandler(svc, logger.NewNop()).Handle)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/lessons/l-1/scheduling-config", nil)
	req.Header.Set(middleware.HeaderUserID, "mentor-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Deleted(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "l-1", svc.lessonID)
	assert.Equal(t, "mentor-1", svc.userID)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"no lesson config", config.ErrConfigNotFound, http.StatusNotFound},
		{"lesson not found", config.ErrLessonNotFound, http.StatusNotFound},
		{"not the mentor", config.ErrAccessDenied, http.StatusForbidden},
		{"internal", config.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubService{err: tt.err})
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
