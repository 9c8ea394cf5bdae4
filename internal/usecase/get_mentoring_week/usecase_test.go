package get_mentoring_week

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	"github.com/fillinv/lesson-scheduler/internal/refresh"
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
	onGet  func(ctx context.Context)
}

func (s *stubLessons) GetLesson(ctx context.Context, lessonID string) (*domain.Lesson, error) {
	if s.onGet != nil {
		s.onGet(ctx)
	}
	return s.lesson, s.err
}

type stubConfigs struct{ config domain.SchedulingConfig }

func (s stubConfigs) Effective(ctx context.Context, lessonID string) (*domain.SchedulingConfig, error) {
	c := s.config
	return &c, nil
}

type staleCounter struct{ n int }

func (s *staleCounter) StaleRefresh(string) { s.n++ }

func mentoringLesson() *domain.Lesson {
	return &domain.Lesson{
		ID:      "l-1",
		Type:    domain.LessonTypeMentoring,
		Options: []domain.ServiceOption{{ID: "o-60", DurationMinutes: 60}},
		OpenRanges: []domain.TimeRange{
			{SourceID: "at-1", Start: time.Date(2025, 6, 4, 9, 0, 0, 0, kst), End: time.Date(2025, 6, 4, 12, 0, 0, 0, kst)},
			{SourceID: "at-2", Start: time.Date(2025, 6, 2, 9, 0, 0, 0, kst), End: time.Date(2025, 6, 2, 12, 0, 0, 0, kst)},
		},
		Booked: []domain.TimeRange{
			{Start: time.Date(2025, 6, 4, 10, 0, 0, 0, kst), End: time.Date(2025, 6, 4, 11, 0, 0, 0, kst)},
		},
	}
}

func newUseCase(provider LessonProvider, config domain.SchedulingConfig, coordinator RefreshCoordinator, m Metrics) *UseCase {
	uc := NewUseCase(provider, stubConfigs{config: config}, coordinator, m, kst, logger.NewNop())
	// Wednesday 2025-06-04 08:00 KST
	uc.timeProvider = fixedTime{now: time.Date(2025, 6, 3, 23, 0, 0, 0, time.UTC)}
	return uc
}

func TestUseCase_CurrentWeek(t *testing.T) {
	uc := newUseCase(&stubLessons{lesson: mentoringLesson()}, *domain.DefaultSchedulingConfig(), refresh.NewCoordinator(), &staleCounter{})

	resp, err := uc.Execute(context.Background(), &Request{ViewerID: "tab", LessonID: "l-1", OptionID: ptr.Ptr("o-60")})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, kst), resp.WeekStart)
	assert.Equal(t, 1200, resp.TimelineWidth)
	assert.Len(t, resp.HourTicks, 25)

	// Monday and Tuesday are in the past
	require.Len(t, resp.Days, 5)
	wednesday := resp.Days[0]
	assert.Equal(t, time.Date(2025, 6, 4, 0, 0, 0, 0, kst), wednesday.Date)
	require.Len(t, wednesday.Available, 1)
	assert.Equal(t, "09:00-12:00", wednesday.Available[0].Label)
	require.Len(t, wednesday.Booked, 1)
	assert.Equal(t, "10:00-11:00", wednesday.Booked[0].Label)
	require.NotNil(t, wednesday.FocusPercent)
	assert.InDelta(t, 37.5, *wednesday.FocusPercent, 1e-9)

	assert.Empty(t, resp.Days[1].Available)
	assert.Nil(t, resp.Days[1].FocusPercent)
}

func TestUseCase_HorizonTrimsDays(t *testing.T) {
	config := domain.SchedulingConfig{GridMinutes: 10, AdvanceBookingDays: 2}
	uc := newUseCase(&stubLessons{lesson: mentoringLesson()}, config, refresh.NewCoordinator(), &staleCounter{})

	resp, err := uc.Execute(context.Background(), &Request{ViewerID: "tab", LessonID: "l-1"})
	require.NoError(t, err)

	// Wednesday through Friday
	assert.Len(t, resp.Days, 3)
	assert.Equal(t, 1600, resp.TimelineWidth)

	resp, err = uc.Execute(context.Background(), &Request{ViewerID: "tab", LessonID: "l-1", Offset: 1})
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
}

func TestUseCase_StaleRefreshDiscarded(t *testing.T) {
	coordinator := refresh.NewCoordinator()
	stale := &staleCounter{}
	provider := &stubLessons{lesson: mentoringLesson()}
	uc := newUseCase(provider, *domain.DefaultSchedulingConfig(), coordinator, stale)

	// a newer refresh for the same viewer starts while the first one is loading
	provider.onGet = func(ctx context.Context) {
		provider.onGet = nil
		_, err := uc.Execute(context.Background(), &Request{ViewerID: "tab", LessonID: "l-1", Offset: 1})
		require.NoError(t, err)
	}

	_, err := uc.Execute(context.Background(), &Request{ViewerID: "tab", LessonID: "l-1"})
	assert.ErrorIs(t, err, ErrStaleRefresh)
	assert.Equal(t, 1, stale.n)
	assert.Zero(t, coordinator.Pending())
}

func TestUseCase_Errors(t *testing.T) {
	tests := []struct {
		name     string
		provider *stubLessons
		req      Request
		wantErr  error
	}{
		{name: "negative offset", provider: &stubLessons{lesson: mentoringLesson()}, req: Request{LessonID: "l-1", Offset: -1}, wantErr: ErrInvalidInput},
		{name: "missing lesson id", provider: &stubLessons{lesson: mentoringLesson()}, req: Request{}, wantErr: ErrInvalidInput},
		{name: "not found", provider: &stubLessons{err: lessons.ErrLessonNotFound}, req: Request{LessonID: "l-1"}, wantErr: ErrLessonNotFound},
		{name: "wrong type", provider: &stubLessons{lesson: &domain.Lesson{ID: "l-1", Type: domain.LessonTypeStudy}}, req: Request{LessonID: "l-1"}, wantErr: ErrNotMentoring},
		{name: "unknown option", provider: &stubLessons{lesson: mentoringLesson()}, req: Request{LessonID: "l-1", OptionID: ptr.Ptr("o-x")}, wantErr: ErrOptionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coordinator := refresh.NewCoordinator()
			stale := &staleCounter{}
			uc := newUseCase(tt.provider, *domain.DefaultSchedulingConfig(), coordinator, stale)
			req := tt.req
			req.ViewerID = "tab"
			_, err := uc.Execute(context.Background(), &req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotErrorIs(t, err, ErrStaleRefresh)
			assert.Zero(t, stale.n)
			assert.Zero(t, coordinator.Pending())
		})
	}
}

func TestUseCase_FailedRefreshSupersededIsStale(t *testing.T) {
	coordinator := refresh.NewCoordinator()
	stale := &staleCounter{}
	provider := &stubLessons{err: lessons.ErrLessonNotFound}
	uc := newUseCase(provider, *domain.DefaultSchedulingConfig(), coordinator, stale)

	// newer refresh of the same viewer lands before the upstream error returns
	provider.onGet = func(ctx context.Context) {
		coordinator.Begin(context.Background(), "tab", refresh.Key{LessonID: "l-1", Period: "week:1"})
	}

	_, err := uc.Execute(context.Background(), &Request{ViewerID: "tab", LessonID: "l-1"})
	assert.ErrorIs(t, err, ErrStaleRefresh)
	assert.Equal(t, 1, stale.n)
}

func TestUseCase_CancelledRequestIsNotStale(t *testing.T) {
	stale := &staleCounter{}
	ctx, cancel := context.WithCancel(context.Background())
	provider := &stubLessons{err: context.Canceled, onGet: func(context.Context) { cancel() }}
	uc := newUseCase(provider, *domain.DefaultSchedulingConfig(), refresh.NewCoordinator(), stale)

	_, err := uc.Execute(ctx, &Request{ViewerID: "tab", LessonID: "l-1"})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, stale.n)
}
