package update_scheduling_config

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fillinv/lesson-scheduler/internal/api/middleware"
	"github.com/fillinv/lesson-scheduler/internal/service/config"
	"github.com/fillinv/lesson-scheduler/internal/service/config/models"
	"github.com/fillinv/lesson-scheduler/pkg/logger"
)

type stubService struct {
	resp *models.ConfigResponse
	err  error
	got  *models.UpdateConfigRequest
}

func (s *stubService) Update(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.got = req
	return s.resp, s.err
}

func serve(svc *stubService, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/api/v1/lessons/{lessonId}/scheduling-config", NewHandler(svc, logger.NewNop()).Handle)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/lessons/l-1/scheduling-config", strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, "mentor-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Updated(t *testing.T) {
	svc := &stubService{resp: &models.ConfigResponse{LessonID: "l-1", Level: models.LevelLesson, GridMinutes: 15, AdvanceBookingDays: 30}}

	rec := serve(svc, `{"gridMinutes":15}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ConfigResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "lesson", resp.Level)
	assert.Equal(t, 15, resp.GridMinutes)

	require.NotNil(t, svc.got)
	assert.Equal(t, "l-1", svc.got.LessonID)
	assert.Equal(t, "mentor-1", svc.got.UserID)
	require.NotNil(t, svc.got.GridMinutes)
	assert.Equal(t, 15, *svc.got.GridMinutes)
	assert.Nil(t, svc.got.AdvanceBookingDays)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"lesson not found", config.ErrLessonNotFound, http.StatusNotFound},
		{"not the mentor", config.ErrAccessDenied, http.StatusForbidden},
		{"bad grid", config.ErrInvalidInput, http.StatusBadRequest},
		{"internal", config.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubService{err: tt.err}, `{"gridMinutes":7}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_BadBody(t *testing.T) {
	svc := &stubService{}
	rec := serve(svc, `{"gridMinutes":"ten"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.got)
}
