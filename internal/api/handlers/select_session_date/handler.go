package select_session_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fillinv/lesson-scheduler/internal/api/handlers"
	selectSessionDate "github.com/fillinv/lesson-scheduler/internal/usecase/select_session_date"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgLessonNotFound     = "урок не найден"
	msgNoFixedSessions    = "у урока нет фиксированных сессий"
)

type Handler struct {
	useCase SelectSessionDateUseCase
	logger  Logger
}

func NewHandler(useCase SelectSessionDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/lessons/{lessonId}/sessions/select
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID := mux.Vars(r)["lessonId"]

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /lessons/{id}/sessions/select - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(lessonID))
	if err != nil {
		switch {
		case errors.Is(err, selectSessionDate.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, selectSessionDate.ErrLessonNotFound):
			handlers.RespondNotFound(w, msgLessonNotFound)

		case errors.Is(err, selectSessionDate.ErrNoFixedSessions):
			handlers.RespondBadRequest(w, msgNoFixedSessions)

		default:
			h.logger.Error("POST /lessons/{id}/sessions/select - Failed to select date: lesson_id=%s, error=%v", lessonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
