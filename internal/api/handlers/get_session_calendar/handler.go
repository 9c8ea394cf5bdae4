package get_session_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fillinv/lesson-scheduler/internal/api/handlers"
	"github.com/fillinv/lesson-scheduler/internal/api/middleware"
	getSessionCalendar "github.com/fillinv/lesson-scheduler/internal/usecase/get_session_calendar"
)

const (
	msgInvalidMonth    = "некорректный месяц, ожидается YYYY-MM"
	msgLessonNotFound  = "урок не найден"
	msgNoFixedSessions = "у урока нет фиксированных сессий"
	msgStaleRefresh    = "запрос вытеснен более новым"
)

type Handler struct {
	useCase GetSessionCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetSessionCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/lessons/{lessonId}/sessions/calendar
// Query params: month (optional, YYYY-MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID := mux.Vars(r)["lessonId"]
	month := r.URL.Query().Get("month")

	result, err := h.useCase.Execute(r.Context(), &getSessionCalendar.Request{
		ViewerID: middleware.GetViewerID(r.Context()),
		LessonID: lessonID,
		Month:    month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSessionCalendar.ErrInvalidInput):
			h.logger.Warn("GET /lessons/{id}/sessions/calendar - Invalid month: %q", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, getSessionCalendar.ErrLessonNotFound):
			h.logger.Warn("GET /lessons/{id}/sessions/calendar - Lesson not found: lesson_id=%s", lessonID)
			handlers.RespondNotFound(w, msgLessonNotFound)

		case errors.Is(err, getSessionCalendar.ErrNoFixedSessions):
			handlers.RespondBadRequest(w, msgNoFixedSessions)

		case errors.Is(err, getSessionCalendar.ErrStaleRefresh):
			handlers.RespondStale(w, msgStaleRefresh)

		default:
			h.logger.Error("GET /lessons/{id}/sessions/calendar - Failed to build calendar: lesson_id=%s, error=%v", lessonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
