package get_session_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	"github.com/fillinv/lesson-scheduler/internal/refresh"
	"github.com/fillinv/lesson-scheduler/internal/scheduling"
	"github.com/fillinv/lesson-scheduler/internal/service/lessons"
	"github.com/fillinv/lesson-scheduler/pkg/ptr"
)

const view = "session_calendar"

// UseCase use case для месячного календаря oneday и study уроков
type UseCase struct {
	lessons      LessonProvider
	configs      ConfigProvider
	refresh      RefreshCoordinator
	metrics      Metrics
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	lessonProvider LessonProvider,
	configs ConfigProvider,
	coordinator RefreshCoordinator,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		lessons:      lessonProvider,
		configs:      configs,
		refresh:      coordinator,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case получения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSessionCalendar: viewer=%s, lesson=%s, month=%s", req.ViewerID, req.LessonID, req.Month)

	// 1. Валидация входных данных
	today := uc.timeProvider.Now().In(uc.location)
	month, err := uc.parseMonth(req, today)
	if err != nil {
		uc.logger.Warn("GetSessionCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Регистрируем обновление
	ticket := uc.refresh.Begin(ctx, req.ViewerID, refresh.Key{
		LessonID: req.LessonID,
		Period:   "month:" + month.Format(domain.MonthFormat),
	})

	resp, err := uc.build(ticket.Ctx, req.LessonID, month, today)
	if err != nil {
		// отмена тикета при живом запросе означает, что нас вытеснил более новый
		superseded := ticket.Ctx.Err() != nil && ctx.Err() == nil
		uc.refresh.Release(ticket)
		if superseded {
			uc.metrics.StaleRefresh(view)
			return nil, ErrStaleRefresh
		}
		return nil, err
	}

	// 3. Отдаём результат, только если он всё ещё последний
	if err := uc.refresh.Commit(ticket); err != nil {
		uc.logger.Info("GetSessionCalendar: discarding stale refresh lesson=%s viewer=%s", req.LessonID, req.ViewerID)
		uc.metrics.StaleRefresh(view)
		return nil, ErrStaleRefresh
	}

	return resp, nil
}

func (uc *UseCase) build(ctx context.Context, lessonID string, month, today time.Time) (*Response, error) {
	// 1. Получаем урок
	lesson, err := uc.lessons.GetLesson(ctx, lessonID)
	if err != nil {
		if errors.Is(err, lessons.ErrLessonNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, fmt.Errorf("%w: failed to get lesson: %v", ErrInternal, err)
	}
	if !lesson.Type.HasFixedSessions() {
		return nil, ErrNoFixedSessions
	}

	config, err := uc.configs.Effective(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}
	policy := scheduling.DatePolicy{Today: today, AdvanceBookingDays: config.AdvanceBookingDays}

	// 2. Study: нумеруем встречи по времени начала
	sessions := lesson.Sessions
	var study *Study
	if lesson.Type == domain.LessonTypeStudy {
		sessions = scheduling.NumberStudySessions(lesson.Sessions)
		summary := scheduling.SummarizeStudy(sessions, ptr.Value(lesson.RemainSeats), ptr.Value(lesson.Seats))
		study = &Study{
			Summary:  summary,
			Sessions: toSessions(sessions),
			Closed:   summary.FirstDate != "" && policy.Check(summary.FirstDate) == scheduling.ReasonPastDate,
		}
	}

	// 3. Сетка месяца
	grouped := scheduling.GroupByDate(sessions)
	grid := scheduling.MonthGrid(month)

	resp := &Response{
		LessonID: lesson.ID,
		Title:    lesson.Title,
		Type:     lesson.Type,
		Mentor:   lesson.Mentor,
		Month:    month,
		Cells:    make([]Cell, 0, len(grid)),
		Study:    study,
	}

	for _, day := range grid {
		date := day.Date.Format(domain.DateFormat)
		cell := Cell{Date: date, InMonth: day.InMonth}

		if day.InMonth {
			cell.Reason = scheduling.DateEligibility(date, grouped, policy)
			cell.Eligible = !cell.Reason.IsRejected()

			preview := scheduling.PreviewCell(grouped.For(date), domain.CellPreviewLimit)
			cell.Sessions = toSessions(preview.Sessions)
			cell.Overflow = preview.Overflow
		}

		resp.Cells = append(resp.Cells, cell)
	}

	uc.logger.Info("GetSessionCalendar: lesson=%s month=%s sessions=%d",
		lesson.ID, month.Format(domain.MonthFormat), grouped.Len())

	return resp, nil
}

func (uc *UseCase) parseMonth(req *Request, today time.Time) (time.Time, error) {
	if req.ViewerID == "" || req.LessonID == "" {
		return time.Time{}, fmt.Errorf("%w: viewerId and lessonId are required", ErrInvalidInput)
	}
	if req.Month == "" {
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, uc.location), nil
	}
	month, err := time.ParseInLocation(domain.MonthFormat, req.Month, uc.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month must be YYYY-MM", ErrInvalidInput)
	}
	return month, nil
}
