package lessonservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	"github.com/fillinv/lesson-scheduler/pkg/logger"
	"github.com/fillinv/lesson-scheduler/pkg/ptr"
)

var seoul = time.FixedZone("KST", 9*60*60)

const mentoringBody = `{
  "status": 200,
  "message": "ok",
  "data": {
    "mentor": {"mentorId": "m-1", "nickname": "kim", "profileImage": "", "introduction": "hi"},
    "lesson": {"lessonId": "l-1", "lessonType": "MENTORING", "title": "Go review", "price": 30000, "seats": null, "remainSeats": null, "categoryId": 3},
    "options": [
      {"optionId": "o-30", "name": "30 min", "minute": 30, "price": 20000},
      {"optionId": "o-bad", "name": "broken", "minute": 0, "price": 10}
    ],
    "availableTimes": [
      {"availableTimeId": "at-1", "startTime": "2025-06-02T09:00:00", "endTime": "2025-06-02T12:00:00", "price": 0},
      {"availableTimeId": "at-2", "startTime": "2025-06-03T05:00:00Z", "endTime": "2025-06-03T07:00:00Z", "price": 0},
      {"availableTimeId": "at-3", "startTime": "not a time", "endTime": "2025-06-03T07:00:00Z", "price": 0}
    ],
    "bookedTimes": [
      {"startTime": "2025-06-02T10:00:00", "endTime": "2025-06-02T11:00:00"}
    ]
  }
}`

const onedayBody = `{
  "status": 200,
  "message": "ok",
  "data": {
    "mentor": {"mentorId": "m-2", "nickname": "lee"},
    "lesson": {"lessonId": "l-2", "lessonType": "ONEDAY", "title": "Pottery", "price": 50000, "seats": 8, "remainSeats": 5, "categoryId": 1},
    "options": [],
    "availableTimes": [
      {"availableTimeId": "s-1", "startTime": "2025-06-01T10:00:00", "endTime": "2025-06-01T12:00:00", "price": 45000, "seats": 6, "remainSeats": 2},
      {"availableTimeId": "s-2", "startTime": "2025-06-01T22:00:00", "endTime": "2025-06-02T00:00:00", "price": 0, "seats": null, "remainSeats": null}
    ],
    "bookedTimes": []
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, seoul, logger.NewNop(), opts...)
}

func TestClient_GetLesson_Mentoring(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/lessons/l-1", r.URL.Path)
		_, _ = w.Write([]byte(mentoringBody))
	}, WithWeeklyFallback(true))

	lesson, err := client.GetLesson(context.Background(), "l-1")
	require.NoError(t, err)

	assert.Equal(t, domain.LessonTypeMentoring, lesson.Type)
	assert.Equal(t, "kim", lesson.Mentor.Nickname)
	require.Len(t, lesson.Options, 1)
	assert.Equal(t, "o-30", lesson.Options[0].ID)

	require.Len(t, lesson.OpenRanges, 2)
	assert.Equal(t, "at-1", lesson.OpenRanges[0].SourceID)
	assert.True(t, lesson.OpenRanges[0].Start.Equal(time.Date(2025, 6, 2, 9, 0, 0, 0, seoul)))
	// 05:00Z is 14:00 in Seoul
	assert.True(t, lesson.OpenRanges[1].Start.Equal(time.Date(2025, 6, 3, 14, 0, 0, 0, seoul)))

	require.Len(t, lesson.Booked, 1)
	assert.True(t, lesson.Booked[0].Start.Equal(time.Date(2025, 6, 2, 10, 0, 0, 0, seoul)))

	assert.Equal(t, []string{"09:00-12:00"}, lesson.Weekly[time.Monday])
	assert.Equal(t, []string{"14:00-16:00"}, lesson.Weekly[time.Tuesday])
	assert.Empty(t, lesson.Sessions)
}

func TestClient_GetLesson_OneDaySessions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(onedayBody))
	})

	lesson, err := client.GetLesson(context.Background(), "l-2")
	require.NoError(t, err)

	require.Len(t, lesson.Sessions, 2)
	first := lesson.Sessions[0]
	assert.Equal(t, "s-1", first.SourceID)
	assert.Equal(t, "2025-06-01", first.Date)
	assert.Equal(t, "10:00-12:00", first.TimeLabel)
	assert.Equal(t, 6, first.CapacitySeats)
	assert.Equal(t, 2, first.RemainingSeats)
	assert.Equal(t, 45000, first.Price)

	// missing seats and price fall back to the lesson values
	second := lesson.Sessions[1]
	assert.Equal(t, "22:00-24:00", second.TimeLabel)
	assert.Equal(t, 8, second.CapacitySeats)
	assert.Equal(t, 5, second.RemainingSeats)
	assert.Equal(t, 50000, second.Price)
	assert.Empty(t, lesson.OpenRanges)
}

func TestClient_GetLesson_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, wantErr: ErrLessonNotFound},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantErr: ErrInvalidResponse},
		{name: "bad json", status: http.StatusOK, body: "{", wantErr: ErrInvalidResponse},
		{name: "unknown type", status: http.StatusOK, body: `{"data":{"lesson":{"lessonType":"WEBINAR"}}}`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetLesson(context.Background(), "l-1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_CreateSchedule(t *testing.T) {
	startAt := time.Date(2025, 6, 2, 9, 0, 0, 0, seoul)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/schedules", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

		var body ScheduleCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "l-1", body.LessonID)
		require.NotNil(t, body.StartTime)
		assert.Equal(t, "2025-06-02T09:00:00+09:00", *body.StartTime)
		assert.Equal(t, "o-30", *body.OptionID)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"status":201,"message":"created","data":{"scheduleId":"sch-9"}}`))
	})

	result, err := client.CreateSchedule(context.Background(), &domain.BookingSubmission{
		LessonID:        "l-1",
		LessonType:      domain.LessonTypeMentoring,
		OptionID:        ptr.Ptr("o-30"),
		AvailableTimeID: ptr.Ptr("at-1"),
		StartAt:         &startAt,
		Message:         "hello",
	}, "Bearer token")

	require.NoError(t, err)
	assert.Equal(t, "sch-9", result.ScheduleID)
}

func TestClient_CreateSchedule_Rejected(t *testing.T) {
	for _, status := range []int{http.StatusConflict, http.StatusGone, http.StatusUnprocessableEntity} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"status":409,"message":"already booked","data":null}`))
		})

		_, err := client.CreateSchedule(context.Background(), &domain.BookingSubmission{LessonID: "l-1"}, "")
		assert.ErrorIs(t, err, ErrSubmissionRejected, "status=%d", status)
		assert.Contains(t, err.Error(), "already booked")
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, err := client.CreateSchedule(context.Background(), &domain.BookingSubmission{LessonID: "l-1"}, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
