package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	"github.com/fillinv/lesson-scheduler/internal/scheduling"
	"github.com/fillinv/lesson-scheduler/internal/service/lessons"
	"github.com/fillinv/lesson-scheduler/pkg/ptr"
)

// Исходы заявки для метрик
const (
	outcomeAccepted    = "accepted"
	outcomePreRejected = "pre_rejected"
	outcomeRejected    = "rejected"
	outcomeError       = "error"
)

// UseCase use case для отправки заявки на бронирование
type UseCase struct {
	lessons      LessonService
	configs      ConfigProvider
	metrics      Metrics
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	lessonService LessonService,
	configs ConfigProvider,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		lessons:      lessonService,
		configs:      configs,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case отправки заявки.
// Выбор повторно проверяется по свежему расписанию; окончательное решение за бэкендом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: user=%s, lesson=%s", req.UserID, req.LessonID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем урок и конфигурацию
	lesson, err := uc.lessons.GetLesson(ctx, req.LessonID)
	if err != nil {
		if errors.Is(err, lessons.ErrLessonNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, fmt.Errorf("%w: failed to get lesson: %v", ErrInternal, err)
	}

	config, err := uc.configs.Effective(ctx, req.LessonID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	policy := scheduling.DatePolicy{
		Today:              uc.timeProvider.Now().In(uc.location),
		AdvanceBookingDays: config.AdvanceBookingDays,
	}

	// 3. Локальная проверка выбора в зависимости от типа урока
	var submission *domain.BookingSubmission
	switch lesson.Type {
	case domain.LessonTypeMentoring:
		submission, err = uc.mentoring(lesson, req, config, policy)
	case domain.LessonTypeOneDay:
		submission, err = uc.oneday(lesson, req, policy)
	case domain.LessonTypeStudy:
		submission, err = uc.study(lesson, policy)
	default:
		err = fmt.Errorf("%w: unsupported lesson type %q", ErrInternal, lesson.Type)
	}
	if err != nil {
		var rejectedErr *RejectedError
		if errors.As(err, &rejectedErr) {
			uc.metrics.Submission(string(lesson.Type), outcomePreRejected)
			uc.logger.Info("SubmitBooking: lesson=%s rejected locally: %s", lesson.ID, rejectedErr.Reason)
		}
		return nil, err
	}
	submission.Message = req.Message

	// 4. Отправляем заявку в бэкенд
	result, err := uc.lessons.Submit(ctx, submission, req.AuthHeader)
	if err != nil {
		switch {
		case errors.Is(err, lessons.ErrSubmissionRejected):
			uc.metrics.Submission(string(lesson.Type), outcomeRejected)
			return nil, fmt.Errorf("%w: %v", ErrSubmissionRejected, err)
		case errors.Is(err, lessons.ErrUnauthorized):
			uc.metrics.Submission(string(lesson.Type), outcomeError)
			return nil, ErrUnauthorized
		case errors.Is(err, lessons.ErrLessonNotFound):
			uc.metrics.Submission(string(lesson.Type), outcomeError)
			return nil, ErrLessonNotFound
		default:
			uc.metrics.Submission(string(lesson.Type), outcomeError)
			uc.logger.Error("SubmitBooking: failed to submit lesson=%s: %v", lesson.ID, err)
			return nil, fmt.Errorf("%w: failed to submit: %v", ErrInternal, err)
		}
	}

	uc.metrics.Submission(string(lesson.Type), outcomeAccepted)
	uc.logger.Info("SubmitBooking: schedule=%s created for lesson=%s user=%s", result.ScheduleID, lesson.ID, req.UserID)

	resp := &Response{
		ScheduleID: result.ScheduleID,
		LessonID:   lesson.ID,
		Type:       lesson.Type,
		StartAt:    submission.StartAt,
	}
	if lesson.Type == domain.LessonTypeOneDay {
		resp.SessionID = submission.AvailableTimeID
	}
	return resp, nil
}

// mentoring повторно проверяет слот по свежим открытым и занятым окнам
func (uc *UseCase) mentoring(
	lesson *domain.Lesson,
	req *Request,
	config *domain.SchedulingConfig,
	policy scheduling.DatePolicy,
) (*domain.BookingSubmission, error) {
	if req.OptionID == nil || req.Date == nil || req.StartMinute == nil {
		return nil, fmt.Errorf("%w: optionId, date and startMinute are required for mentoring", ErrInvalidInput)
	}
	option, ok := lesson.FindOption(*req.OptionID)
	if !ok {
		return nil, ErrOptionNotFound
	}

	date, err := scheduling.ParseDate(*req.Date, uc.location)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if reason := policy.Check(*req.Date); reason.IsRejected() {
		return nil, rejected(reason)
	}

	day := scheduling.BuildDay(lesson, date, uc.location)
	match, reason := scheduling.CheckSlot(*req.StartMinute, option.DurationMinutes, config.GridMinutes, day.Available, day.Booked)
	if reason.IsRejected() {
		return nil, rejected(reason)
	}

	start := *req.StartMinute
	startAt := time.Date(date.Year(), date.Month(), date.Day(), start/60, start%60, 0, 0, uc.location)

	submission := &domain.BookingSubmission{
		LessonID:   lesson.ID,
		LessonType: lesson.Type,
		OptionID:   ptr.Ptr(option.ID),
		StartAt:    &startAt,
		Date:       &day.Date,
	}
	// окна из недельной таблицы не имеют availableTimeId
	if match.SourceID != "" {
		submission.AvailableTimeID = ptr.Ptr(match.SourceID)
	}
	return submission, nil
}

// oneday проверяет дату и места выбранной сессии
func (uc *UseCase) oneday(lesson *domain.Lesson, req *Request, policy scheduling.DatePolicy) (*domain.BookingSubmission, error) {
	if req.SessionID == nil {
		return nil, fmt.Errorf("%w: sessionId is required for oneday", ErrInvalidInput)
	}
	session, ok := lesson.FindSession(*req.SessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if reason := policy.Check(session.Date); reason.IsRejected() {
		return nil, rejected(reason)
	}
	if session.IsFull() {
		return nil, rejected(scheduling.ReasonSessionFull)
	}

	return &domain.BookingSubmission{
		LessonID:        lesson.ID,
		LessonType:      lesson.Type,
		AvailableTimeID: ptr.Ptr(session.SourceID),
		StartAt:         ptr.Ptr(session.StartAt),
	}, nil
}

// study: запись на весь курс, пока есть места и не прошла первая встреча
func (uc *UseCase) study(lesson *domain.Lesson, policy scheduling.DatePolicy) (*domain.BookingSubmission, error) {
	numbered := scheduling.NumberStudySessions(lesson.Sessions)
	if len(numbered) == 0 {
		return nil, rejected(scheduling.ReasonNoSessions)
	}
	if lesson.RemainSeats != nil && *lesson.RemainSeats <= 0 {
		return nil, rejected(scheduling.ReasonSessionFull)
	}
	if policy.Check(numbered[0].Date) == scheduling.ReasonPastDate {
		return nil, rejected(scheduling.ReasonPastDate)
	}

	return &domain.BookingSubmission{
		LessonID:   lesson.ID,
		LessonType: lesson.Type,
	}, nil
}

func validateRequest(req *Request) error {
	if req.LessonID == "" {
		return fmt.Errorf("%w: lessonId is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}
	return nil
}
