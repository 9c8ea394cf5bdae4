package lessons

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	lessonCache "github.com/fillinv/lesson-scheduler/internal/infra/cache/lesson"
	"github.com/fillinv/lesson-scheduler/internal/integrations/lessonservice"
	"github.com/fillinv/lesson-scheduler/pkg/logger"
)

type stubClient struct {
	lesson    *domain.Lesson
	getErr    error
	submitErr error
	gets      int
}

func (c *stubClient) GetLesson(ctx context.Context, lessonID string) (*domain.Lesson, error) {
	c.gets++
	return c.lesson, c.getErr
}

func (c *stubClient) CreateSchedule(ctx context.Context, s *domain.BookingSubmission, auth string) (*domain.BookingResult, error) {
	if c.submitErr != nil {
		return nil, c.submitErr
	}
	return &domain.BookingResult{ScheduleID: "sch-1"}, nil
}

type stubCache struct {
	stored      map[string]*domain.Lesson
	getErr      error
	invalidated []string
}

func (c *stubCache) Get(ctx context.Context, id string) (*domain.Lesson, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	if l, ok := c.stored[id]; ok {
		return l, nil
	}
	return nil, lessonCache.ErrCacheMiss
}

func (c *stubCache) Set(ctx context.Context, l *domain.Lesson) error {
	c.stored[l.ID] = l
	return nil
}

func (c *stubCache) Invalidate(ctx context.Context, id string) error {
	delete(c.stored, id)
	c.invalidated = append(c.invalidated, id)
	return nil
}

type countingMetrics struct {
	hits, misses, calls int
}

func (m *countingMetrics) UpstreamCall(string, error, time.Duration) { m.calls++ }
func (m *countingMetrics) CacheLookup(hit bool) {
	if hit {
		m.hits++
		return
	}
	m.misses++
}

func TestService_GetLesson_CacheAside(t *testing.T) {
	client := &stubClient{lesson: &domain.Lesson{ID: "l-1"}}
	cache := &stubCache{stored: map[string]*domain.Lesson{}}
	m := &countingMetrics{}
	svc := NewService(client, cache, m, logger.NewNop())

	first, err := svc.GetLesson(context.Background(), "l-1")
	require.NoError(t, err)
	second, err := svc.GetLesson(context.Background(), "l-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.gets)
	assert.Equal(t, 1, m.hits)
	assert.Equal(t, 1, m.misses)
	assert.Equal(t, 1, m.calls)
}

func TestService_GetLesson_CacheDown(t *testing.T) {
	client := &stubClient{lesson: &domain.Lesson{ID: "l-1"}}
	cache := &stubCache{stored: map[string]*domain.Lesson{}, getErr: errors.New("redis down")}
	svc := NewService(client, cache, &countingMetrics{}, logger.NewNop())

	lesson, err := svc.GetLesson(context.Background(), "l-1")
	require.NoError(t, err)
	assert.Equal(t, "l-1", lesson.ID)
}

func TestService_GetLesson_Errors(t *testing.T) {
	svc := NewService(&stubClient{getErr: lessonservice.ErrLessonNotFound}, nil, &countingMetrics{}, logger.NewNop())
	_, err := svc.GetLesson(context.Background(), "l-1")
	assert.ErrorIs(t, err, ErrLessonNotFound)

	svc = NewService(&stubClient{getErr: lessonservice.ErrInvalidResponse}, nil, &countingMetrics{}, logger.NewNop())
	_, err = svc.GetLesson(context.Background(), "l-1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Submit(t *testing.T) {
	cache := &stubCache{stored: map[string]*domain.Lesson{"l-1": {ID: "l-1"}}}
	svc := NewService(&stubClient{}, cache, &countingMetrics{}, logger.NewNop())

	result, err := svc.Submit(context.Background(), &domain.BookingSubmission{LessonID: "l-1"}, "Bearer t")
	require.NoError(t, err)
	assert.Equal(t, "sch-1", result.ScheduleID)
	assert.Equal(t, []string{"l-1"}, cache.invalidated)
}

func TestService_Submit_Rejected(t *testing.T) {
	cache := &stubCache{stored: map[string]*domain.Lesson{}}
	rejected := fmt.Errorf("%w: status 409", lessonservice.ErrSubmissionRejected)
	svc := NewService(&stubClient{submitErr: rejected}, cache, &countingMetrics{}, logger.NewNop())

	_, err := svc.Submit(context.Background(), &domain.BookingSubmission{LessonID: "l-1"}, "")
	assert.ErrorIs(t, err, ErrSubmissionRejected)
	assert.Equal(t, []string{"l-1"}, cache.invalidated)

	svc = NewService(&stubClient{submitErr: lessonservice.ErrUnauthorized}, nil, &countingMetrics{}, logger.NewNop())
	_, err = svc.Submit(context.Background(), &domain.BookingSubmission{LessonID: "l-1"}, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
