package select_session_date

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	"github.com/fillinv/lesson-scheduler/internal/scheduling"
	"github.com/fillinv/lesson-scheduler/internal/service/lessons"
)

// UseCase use case для выбора даты в календаре сессий
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

// Execute выполняет use case выбора даты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SelectSessionDate: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем урок
	lesson, err := uc.lessons.GetLesson(ctx, req.LessonID)
	if err != nil {
		if errors.Is(err, lessons.ErrLessonNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, fmt.Errorf("%w: failed to get lesson: %v", ErrInternal, err)
	}
	if !lesson.Type.HasFixedSessions() {
		return nil, ErrNoFixedSessions
	}

	config, err := uc.configs.Effective(ctx, req.LessonID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// 3. Группируем заново при каждом запросе
	sessions := lesson.Sessions
	if lesson.Type == domain.LessonTypeStudy {
		sessions = scheduling.NumberStudySessions(sessions)
	}
	grouped := scheduling.GroupByDate(sessions)

	// 4. Переход состояния
	policy := scheduling.DatePolicy{
		Today:              uc.timeProvider.Now().In(uc.location),
		AdvanceBookingDays: config.AdvanceBookingDays,
	}
	state, reason := scheduling.SelectDate(scheduling.CalendarState{Date: req.Current}, req.Date, grouped, policy)

	lessonType := string(lesson.Type)
	if reason.IsRejected() {
		uc.metrics.DateSelection(lessonType, false, reason.String())
		uc.logger.Info("SelectSessionDate: lesson=%s date=%s rejected: %s", lesson.ID, req.Date, reason)
	} else {
		uc.metrics.DateSelection(lessonType, true, "")
	}

	resp := &Response{
		Accepted:     !reason.IsRejected(),
		Reason:       reason,
		SelectedDate: state.Date,
		Sessions:     []Session{},
	}
	if state.HasSelection() {
		resp.Sessions = toSessions(grouped.For(state.Date))
	}
	return resp, nil
}

func validateRequest(req *Request) error {
	if req.LessonID == "" {
		return fmt.Errorf("%w: lessonId is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if req.Current != "" {
		if _, err := time.Parse(domain.DateFormat, req.Current); err != nil {
			return fmt.Errorf("%w: current must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	return nil
}
