package select_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	"github.com/fillinv/lesson-scheduler/internal/scheduling"
	"github.com/fillinv/lesson-scheduler/internal/service/lessons"
	"github.com/fillinv/lesson-scheduler/pkg/logger"
	"github.com/fillinv/lesson-scheduler/pkg/ptr"
)

var kst = time.FixedZone("KST", 9*60*60)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type stubLessons struct {
	lesson *domain.Lesson
	err    error
}

func (s stubLessons) GetLesson(ctx context.Context, lessonID string) (*domain.Lesson, error) {
	return s.lesson, s.err
}

type stubConfigs struct{ config domain.SchedulingConfig }

func (s stubConfigs) Effective(ctx context.Context, lessonID string) (*domain.SchedulingConfig, error) {
	c := s.config
	return &c, nil
}

type selectionRecorder struct {
	accepted int
	rejected []string
}

func (r *selectionRecorder) SlotSelection(accepted bool, reason string) {
	if accepted {
		r.accepted++
		return
	}
	r.rejected = append(r.rejected, reason)
}

// 09:00-12:00 open, 10:00-11:00 booked on 2025-06-04
func mentoringLesson() *domain.Lesson {
	return &domain.Lesson{
		ID:   "l-1",
		Type: domain.LessonTypeMentoring,
		Options: []domain.ServiceOption{
			{ID: "o-30", DurationMinutes: 30},
			{ID: "o-60", DurationMinutes: 60},
		},
		OpenRanges: []domain.TimeRange{
			{SourceID: "at-1", Start: time.Date(2025, 6, 4, 9, 0, 0, 0, kst), End: time.Date(2025, 6, 4, 12, 0, 0, 0, kst)},
		},
		Booked: []domain.TimeRange{
			{Start: time.Date(2025, 6, 4, 10, 0, 0, 0, kst), End: time.Date(2025, 6, 4, 11, 0, 0, 0, kst)},
		},
	}
}

func newUseCase(lesson *domain.Lesson, config domain.SchedulingConfig, m Metrics) *UseCase {
	uc := NewUseCase(stubLessons{lesson: lesson}, stubConfigs{config: config}, m, kst, logger.NewNop())
	uc.timeProvider = fixedTime{now: time.Date(2025, 6, 4, 8, 0, 0, 0, kst)}
	return uc
}

func fractionAt(minute int) *float64 {
	return ptr.Ptr((float64(minute) + 0.5) / domain.MinutesPerDay)
}

func TestUseCase_AcceptsSnappedSlot(t *testing.T) {
	m := &selectionRecorder{}
	uc := newUseCase(mentoringLesson(), *domain.DefaultSchedulingConfig(), m)

	resp, err := uc.Execute(context.Background(), &Request{
		LessonID: "l-1",
		OptionID: "o-30",
		Date:     "2025-06-04",
		Fraction: fractionAt(9*60 + 7),
	})
	require.NoError(t, err)

	require.True(t, resp.Accepted)
	require.NotNil(t, resp.Slot)
	assert.Equal(t, "09:00-09:30", resp.Slot.Label)
	assert.Equal(t, "at-1", resp.Slot.SourceID)
	assert.Equal(t, time.Date(2025, 6, 4, 9, 0, 0, 0, kst), resp.Slot.StartAt)
	assert.Equal(t, "o-30", resp.State.OptionID)
	assert.Equal(t, resp.Slot, resp.State.Slot)
	assert.Equal(t, 1, m.accepted)
}

func TestUseCase_ConflictKeepsCurrentSelection(t *testing.T) {
	m := &selectionRecorder{}
	uc := newUseCase(mentoringLesson(), *domain.DefaultSchedulingConfig(), m)

	resp, err := uc.Execute(context.Background(), &Request{
		LessonID: "l-1",
		OptionID: "o-60",
		Date:     "2025-06-04",
		Fraction: fractionAt(9*60 + 30),
		Current:  &Selection{OptionID: "o-60", Date: "2025-06-04", StartMinute: ptr.Ptr(11 * 60)},
	})
	require.NoError(t, err)

	assert.False(t, resp.Accepted)
	assert.Equal(t, scheduling.ReasonConflict, resp.Reason)
	require.NotNil(t, resp.State.Slot)
	assert.Equal(t, "11:00-12:00", resp.State.Slot.Label)
	assert.Equal(t, "at-1", resp.State.Slot.SourceID)
	assert.Equal(t, time.Date(2025, 6, 4, 11, 0, 0, 0, kst), resp.State.Slot.StartAt)
	assert.Equal(t, []string{"conflict"}, m.rejected)
}

func TestUseCase_StaleCurrentSlotDropped(t *testing.T) {
	tests := []struct {
		name    string
		current Selection
	}{
		// 10:00-11:00 has been booked since the client picked it
		{name: "now booked", current: Selection{OptionID: "o-60", Date: "2025-06-04", StartMinute: ptr.Ptr(10 * 60)}},
		{name: "outside availability", current: Selection{OptionID: "o-60", Date: "2025-06-04", StartMinute: ptr.Ptr(14 * 60)}},
		{name: "past date", current: Selection{OptionID: "o-60", Date: "2025-06-03", StartMinute: ptr.Ptr(9 * 60)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(mentoringLesson(), *domain.DefaultSchedulingConfig(), &selectionRecorder{})
			current := tt.current

			resp, err := uc.Execute(context.Background(), &Request{
				LessonID: "l-1",
				OptionID: "o-60",
				Date:     "2025-06-04",
				Fraction: fractionAt(9*60 + 30),
				Current:  &current,
			})
			require.NoError(t, err)

			assert.False(t, resp.Accepted)
			assert.Equal(t, "o-60", resp.State.OptionID)
			assert.Nil(t, resp.State.Slot)
		})
	}
}

func TestUseCase_OptionChangeClearsSlot(t *testing.T) {
	uc := newUseCase(mentoringLesson(), *domain.DefaultSchedulingConfig(), &selectionRecorder{})

	// 11:30 + 60m does not fit, the previous 30-minute slot must not survive
	resp, err := uc.Execute(context.Background(), &Request{
		LessonID: "l-1",
		OptionID: "o-60",
		Date:     "2025-06-04",
		Fraction: fractionAt(11*60 + 30),
		Current:  &Selection{OptionID: "o-30", Date: "2025-06-04", StartMinute: ptr.Ptr(9 * 60)},
	})
	require.NoError(t, err)

	assert.False(t, resp.Accepted)
	assert.Equal(t, scheduling.ReasonUnavailable, resp.Reason)
	assert.Equal(t, "o-60", resp.State.OptionID)
	assert.Nil(t, resp.State.Slot)
}

func TestUseCase_ClickCoordinates(t *testing.T) {
	uc := newUseCase(mentoringLesson(), *domain.DefaultSchedulingConfig(), &selectionRecorder{})

	// 11:00 on a 1440px bar
	resp, err := uc.Execute(context.Background(), &Request{
		LessonID: "l-1",
		OptionID: "o-60",
		Date:     "2025-06-04",
		ClickX:   ptr.Ptr(661.0),
		BarWidth: ptr.Ptr(1440.0),
	})
	require.NoError(t, err)
	require.True(t, resp.Accepted)
	assert.Equal(t, "11:00-12:00", resp.Slot.Label)
}

func TestUseCase_DatePolicy(t *testing.T) {
	config := domain.SchedulingConfig{GridMinutes: 10, AdvanceBookingDays: 3}

	tests := []struct {
		date   string
		reason scheduling.RejectReason
	}{
		{"2025-06-03", scheduling.ReasonPastDate},
		{"2025-06-08", scheduling.ReasonBeyondHorizon},
		{"2025-06-05", scheduling.ReasonUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			uc := newUseCase(mentoringLesson(), config, &selectionRecorder{})
			resp, err := uc.Execute(context.Background(), &Request{
				LessonID: "l-1",
				OptionID: "o-30",
				Date:     tt.date,
				Fraction: fractionAt(9 * 60),
			})
			require.NoError(t, err)
			assert.False(t, resp.Accepted)
			assert.Equal(t, tt.reason, resp.Reason)
		})
	}
}

func TestUseCase_Errors(t *testing.T) {
	oneday := &domain.Lesson{ID: "l-2", Type: domain.LessonTypeOneDay}

	tests := []struct {
		name    string
		lessons stubLessons
		req     *Request
		wantErr error
	}{
		{
			name:    "missing position",
			lessons: stubLessons{lesson: mentoringLesson()},
			req:     &Request{LessonID: "l-1", OptionID: "o-30", Date: "2025-06-04"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad click",
			lessons: stubLessons{lesson: mentoringLesson()},
			req:     &Request{LessonID: "l-1", OptionID: "o-30", Date: "2025-06-04", ClickX: ptr.Ptr(10.0), BarWidth: ptr.Ptr(0.0)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad date",
			lessons: stubLessons{lesson: mentoringLesson()},
			req:     &Request{LessonID: "l-1", OptionID: "o-30", Date: "04.06.2025", Fraction: fractionAt(0)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "lesson not found",
			lessons: stubLessons{err: lessons.ErrLessonNotFound},
			req:     &Request{LessonID: "l-1", OptionID: "o-30", Date: "2025-06-04", Fraction: fractionAt(0)},
			wantErr: ErrLessonNotFound,
		},
		{
			name:    "not mentoring",
			lessons: stubLessons{lesson: oneday},
			req:     &Request{LessonID: "l-2", OptionID: "o-30", Date: "2025-06-04", Fraction: fractionAt(0)},
			wantErr: ErrNotMentoring,
		},
		{
			name:    "unknown option",
			lessons: stubLessons{lesson: mentoringLesson()},
			req:     &Request{LessonID: "l-1", OptionID: "o-90", Date: "2025-06-04", Fraction: fractionAt(0)},
			wantErr: ErrOptionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.lessons, stubConfigs{config: *domain.DefaultSchedulingConfig()}, &selectionRecorder{}, kst, logger.NewNop())
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
