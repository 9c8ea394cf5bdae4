package submit_booking

import (
	"errors"
	"net/http"

	"github.com/fillinv/lesson-scheduler/internal/api/handlers"
	"github.com/fillinv/lesson-scheduler/internal/api/middleware"
	submitBooking "github.com/fillinv/lesson-scheduler/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные заявки"
	msgLessonNotFound     = "урок не найден"
	msgOptionNotFound     = "опция не найдена"
	msgSessionNotFound    = "сессия не найдена"
	msgSelectionRejected  = "выбранное время больше недоступно"
	msgSubmissionRejected = "заявка отклонена"
	msgUnauthorized       = "требуется авторизация"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())

	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq := req.ToUseCaseRequest(userID, middleware.GetAuthHeader(r.Context()))
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var rejectedErr *submitBooking.RejectedError
		switch {
		case errors.As(err, &rejectedErr):
			h.logger.Warn("POST /bookings - Selection rejected: user_id=%s, lesson_id=%s, reason=%s",
				userID, req.LessonID, rejectedErr.Reason)
			handlers.RespondRejected(w, msgSelectionRejected, rejectedErr.Reason.String())

		case errors.Is(err, submitBooking.ErrSubmissionRejected):
			h.logger.Warn("POST /bookings - Submission rejected by backend: user_id=%s, lesson_id=%s, error=%v",
				userID, req.LessonID, err)
			handlers.RespondConflict(w, msgSubmissionRejected)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, submitBooking.ErrLessonNotFound):
			handlers.RespondNotFound(w, msgLessonNotFound)

		case errors.Is(err, submitBooking.ErrOptionNotFound):
			handlers.RespondNotFound(w, msgOptionNotFound)

		case errors.Is(err, submitBooking.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, submitBooking.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("POST /bookings - Failed to submit booking: user_id=%s, lesson_id=%s, error=%v",
				userID, req.LessonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking submitted: user_id=%s, lesson_id=%s, schedule_id=%s",
		userID, req.LessonID, result.ScheduleID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
