package select_session_date

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fillinv/lesson-scheduler/internal/scheduling"
	selectSessionDate "github.com/fillinv/lesson-scheduler/internal/usecase/select_session_date"
	"github.com/fillinv/lesson-scheduler/pkg/logger"
)

type stubUseCase struct {
	resp *selectSessionDate.Response
	err  error
	got  *selectSessionDate.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *selectSessionDate.Request) (*selectSessionDate.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(uc *stubUseCase, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/lessons/{lessonId}/sessions/select", NewHandler(uc, logger.NewNop()).Handle)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lessons/l-1/sessions/select", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Selected(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)
	uc := &stubUseCase{resp: &selectSessionDate.Response{
		Accepted:     true,
		SelectedDate: "2025-06-10",
		Sessions: []selectSessionDate.Session{{
			ID:             "s-1",
			TimeLabel:      "14:00-16:00",
			StartAt:        time.Date(2025, 6, 10, 14, 0, 0, 0, kst),
			RemainingSeats: 2,
			CapacitySeats:  4,
		}},
	}}

	rec := serve(uc, `{"date":"2025-06-10","current":"2025-06-05"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SelectDateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Accepted)
	assert.Equal(t, "2025-06-10", resp.SelectedDate)
	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, "14:00-16:00", resp.Sessions[0].Time)
	assert.Equal(t, "2025-06-10T14:00:00+09:00", resp.Sessions[0].StartTime)

	require.NotNil(t, uc.got)
	assert.Equal(t, "l-1", uc.got.LessonID)
	assert.Equal(t, "2025-06-05", uc.got.Current)
}

func TestHandler_RejectedKeepsSelection(t *testing.T) {
	uc := &stubUseCase{resp: &selectSessionDate.Response{
		Reason:       scheduling.ReasonPastDate,
		SelectedDate: "2025-06-05",
	}}

	rec := serve(uc, `{"date":"2025-06-01","current":"2025-06-05"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SelectDateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Accepted)
	assert.Equal(t, "past_date", resp.Reason)
	assert.Equal(t, "2025-06-05", resp.SelectedDate)
	assert.NotNil(t, resp.Sessions)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid", selectSessionDate.ErrInvalidInput, http.StatusBadRequest},
		{"lesson not found", selectSessionDate.ErrLessonNotFound, http.StatusNotFound},
		{"mentoring lesson", selectSessionDate.ErrNoFixedSessions, http.StatusBadRequest},
		{"internal", selectSessionDate.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&stubUseCase{err: tt.err}, `{"date":"2025-06-10"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_BadBody(t *testing.T) {
	uc := &stubUseCase{}
	rec := serve(uc, `{"date":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
