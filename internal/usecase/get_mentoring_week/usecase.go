package get_mentoring_week

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	"github.com/fillinv/lesson-scheduler/internal/refresh"
	"github.com/fillinv/lesson-scheduler/internal/scheduling"
	"github.com/fillinv/lesson-scheduler/internal/service/lessons"
	"github.com/fillinv/lesson-scheduler/pkg/ptr"
)

const view = "mentoring_week"

// UseCase use case для получения недельной страницы наставничества
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

// Execute выполняет use case получения недельной страницы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMentoringWeek: viewer=%s, lesson=%s, offset=%d", req.ViewerID, req.LessonID, req.Offset)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMentoringWeek: validation failed: %v", err)
		return nil, err
	}

	// 2. Регистрируем обновление; предыдущее обновление этого зрителя отменяется
	ticket := uc.refresh.Begin(ctx, req.ViewerID, refresh.Key{
		LessonID: req.LessonID,
		Period:   "week:" + strconv.Itoa(req.Offset),
	})

	resp, err := uc.build(ticket.Ctx, req)
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
		uc.logger.Info("GetMentoringWeek: discarding stale refresh lesson=%s viewer=%s", req.LessonID, req.ViewerID)
		uc.metrics.StaleRefresh(view)
		return nil, ErrStaleRefresh
	}

	return resp, nil
}

func (uc *UseCase) build(ctx context.Context, req *Request) (*Response, error) {
	// 1. Получаем урок
	lesson, err := uc.lessons.GetLesson(ctx, req.LessonID)
	if err != nil {
		if errors.Is(err, lessons.ErrLessonNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, fmt.Errorf("%w: failed to get lesson: %v", ErrInternal, err)
	}
	if lesson.Type != domain.LessonTypeMentoring {
		return nil, ErrNotMentoring
	}

	// 2. Выбранная опция
	var selected *domain.ServiceOption
	if req.OptionID != nil {
		option, ok := lesson.FindOption(*req.OptionID)
		if !ok {
			return nil, ErrOptionNotFound
		}
		selected = &option
	}

	// 3. Конфигурация урока
	config, err := uc.configs.Effective(ctx, req.LessonID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// 4. Даты недели: без прошедших и без дат за горизонтом бронирования
	today := uc.timeProvider.Now().In(uc.location)
	policy := scheduling.DatePolicy{Today: today, AdvanceBookingDays: config.AdvanceBookingDays}

	resp := &Response{
		LessonID:       lesson.ID,
		Title:          lesson.Title,
		Mentor:         lesson.Mentor,
		Options:        lesson.Options,
		SelectedOption: selected,
		GridMinutes:    config.GridMinutes,
		TimelineWidth:  scheduling.TimelineWidth(durationOf(selected)),
		WeekStart:      scheduling.WeekStart(today).AddDate(0, 0, 7*req.Offset),
		HourTicks:      scheduling.HourTicks(),
		Days:           make([]Day, 0, 7),
	}

	invalid := 0
	for _, date := range scheduling.BookableWeekDates(today, req.Offset) {
		if policy.Check(date.Format(domain.DateFormat)).IsRejected() {
			continue
		}

		day := scheduling.BuildDay(lesson, date, uc.location)
		invalid += day.Report.InvalidRanges + day.Report.InvalidLabels
		resp.Days = append(resp.Days, toDay(day))
	}

	if invalid > 0 {
		uc.logger.Warn("GetMentoringWeek: lesson=%s has %d malformed availability entries", lesson.ID, invalid)
	}

	return resp, nil
}

func toDay(day scheduling.Day) Day {
	result := Day{
		Date:       day.Date,
		Available:  make([]Bar, 0, len(day.Available)),
		Booked:     make([]Bar, 0, len(day.Booked)),
		UsedWeekly: day.Report.UsedWeekly,
	}
	for _, r := range day.Available {
		result.Available = append(result.Available, toBar(r))
	}
	for _, b := range day.Booked {
		result.Booked = append(result.Booked, toBar(b.Range))
	}
	if focus, ok := scheduling.FocusPercent(day.Available); ok {
		result.FocusPercent = ptr.Ptr(focus)
	}
	return result
}

func toBar(r domain.ClockRange) Bar {
	label, _ := scheduling.FormatClockRange(r)
	return Bar{Range: r, Label: label, Layout: scheduling.Layout(r)}
}

func durationOf(option *domain.ServiceOption) int {
	if option == nil {
		return 0
	}
	return option.DurationMinutes
}

func validateRequest(req *Request) error {
	if req.LessonID == "" {
		return fmt.Errorf("%w: lessonId is required", ErrInvalidInput)
	}
	if req.Offset < 0 || req.Offset > MaxWeekOffset {
		return fmt.Errorf("%w: offset must be between 0 and %d", ErrInvalidInput, MaxWeekOffset)
	}
	return nil
}
