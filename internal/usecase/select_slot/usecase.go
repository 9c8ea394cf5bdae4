package select_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	"github.com/fillinv/lesson-scheduler/internal/scheduling"
	"github.com/fillinv/lesson-scheduler/internal/service/lessons"
)

// UseCase use case для выбора слота наставничества
type UseCase struct {
	lessons      LessonProvider
	configs      ConfigProvider
	metrics      Metrics
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	lessonProvider LessonProvider,
	configs ConfigProvider,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		lessons:      lessonProvider,
		configs:      configs,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case выбора слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	fraction, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("SelectSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем урок и опцию
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
	option, ok := lesson.FindOption(req.OptionID)
	if !ok {
		return nil, ErrOptionNotFound
	}

	config, err := uc.configs.Effective(ctx, req.LessonID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	today := uc.timeProvider.Now().In(uc.location)
	policy := scheduling.DatePolicy{Today: today, AdvanceBookingDays: config.AdvanceBookingDays}

	// 3. Восстанавливаем состояние клиента; смена опции сбрасывает слот
	state, err := uc.restoreState(lesson, req.Current, config, policy)
	if err != nil {
		return nil, err
	}
	state = scheduling.SelectOption(state, option)

	// 4. Дата должна быть доступна для бронирования
	if reason := policy.Check(req.Date); reason.IsRejected() {
		return uc.reject(req, state, reason), nil
	}

	// 5. Квантуем клик и проверяем слот
	date, _ := scheduling.ParseDate(req.Date, uc.location)
	day := scheduling.BuildDay(lesson, date, uc.location)
	result := scheduling.SelectSlot(state, scheduling.SlotRequest{
		Date:        date,
		Fraction:    fraction,
		Available:   day.Available,
		Booked:      day.Booked,
		GridMinutes: config.GridMinutes,
		Location:    uc.location,
	})

	if !result.Accepted {
		return uc.reject(req, result.State, result.Reason), nil
	}

	uc.metrics.SlotSelection(true, "")
	uc.logger.Info("SelectSlot: lesson=%s option=%s date=%s slot=[%d,%d) accepted",
		req.LessonID, option.ID, req.Date, result.Slot.Range.Start, result.Slot.Range.End)

	return &Response{
		Accepted: true,
		Slot:     toSlot(result.Slot),
		State:    toState(result.State),
	}, nil
}

func (uc *UseCase) reject(req *Request, state scheduling.SelectionState, reason scheduling.RejectReason) *Response {
	uc.metrics.SlotSelection(false, reason.String())
	uc.logger.Info("SelectSlot: lesson=%s date=%s rejected: %s", req.LessonID, req.Date, reason)
	return &Response{
		Reason: reason,
		State:  toState(state),
	}
}

// restoreState собирает SelectionState из того, что прислал клиент.
// Слот заново проверяется по текущему расписанию; устаревший слот отбрасывается.
func (uc *UseCase) restoreState(
	lesson *domain.Lesson,
	current *Selection,
	config *domain.SchedulingConfig,
	policy scheduling.DatePolicy,
) (scheduling.SelectionState, error) {
	var state scheduling.SelectionState
	if current == nil || current.OptionID == "" {
		return state, nil
	}

	option, ok := lesson.FindOption(current.OptionID)
	if !ok {
		// опция исчезла из урока: начинаем с чистого состояния
		return state, nil
	}
	state.Option = &option

	if current.StartMinute == nil || current.Date == "" {
		return state, nil
	}
	date, err := scheduling.ParseDate(current.Date, uc.location)
	if err != nil {
		return state, fmt.Errorf("%w: current.date: %v", ErrInvalidInput, err)
	}

	start := *current.StartMinute
	r := domain.ClockRange{Start: start, End: start + option.DurationMinutes}
	if !r.IsValid() {
		return state, fmt.Errorf("%w: current slot out of range", ErrInvalidInput)
	}

	if reason := policy.Check(current.Date); reason.IsRejected() {
		uc.logger.Info("SelectSlot: dropping current slot date=%s: %s", current.Date, reason)
		return state, nil
	}
	day := scheduling.BuildDay(lesson, date, uc.location)
	match, reason := scheduling.CheckSlot(start, option.DurationMinutes, config.GridMinutes, day.Available, day.Booked)
	if reason.IsRejected() {
		uc.logger.Info("SelectSlot: dropping current slot date=%s start=%d: %s", current.Date, start, reason)
		return state, nil
	}

	r.SourceID = match.SourceID
	state.Slot = &domain.CandidateSlot{
		Date:     day.Date,
		Range:    r,
		SourceID: match.SourceID,
		StartAt:  time.Date(date.Year(), date.Month(), date.Day(), start/60, start%60, 0, 0, uc.location),
	}
	return state, nil
}

func validateRequest(req *Request) (float64, error) {
	if req.LessonID == "" || req.OptionID == "" {
		return 0, fmt.Errorf("%w: lessonId and optionId are required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return 0, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	switch {
	case req.Fraction != nil:
		return *req.Fraction, nil
	case req.ClickX != nil && req.BarWidth != nil:
		fraction, err := scheduling.FractionFromClick(*req.ClickX, *req.BarWidth)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return fraction, nil
	default:
		return 0, fmt.Errorf("%w: fraction or clickX/barWidth is required", ErrInvalidInput)
	}
}
