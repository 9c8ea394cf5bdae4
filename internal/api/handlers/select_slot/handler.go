package select_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fillinv/lesson-scheduler/internal/api/handlers"
	selectSlot "github.com/fillinv/lesson-scheduler/internal/usecase/select_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры выбора слота"
	msgLessonNotFound     = "урок не найден"
	msgOptionNotFound     = "опция не найдена"
	msgNotMentoring       = "урок не является наставничеством"
)

type Handler struct {
	useCase SelectSlotUseCase
	logger  Logger
}

func NewHandler(useCase SelectSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/lessons/{lessonId}/mentoring/slot
// Отказ в выборе слота не является ошибкой: 200 с accepted=false и причиной.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID := mux.Vars(r)["lessonId"]

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /lessons/{id}/mentoring/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(lessonID))
	if err != nil {
		switch {
		case errors.Is(err, selectSlot.ErrInvalidInput):
			h.logger.Warn("POST /lessons/{id}/mentoring/slot - Invalid input: lesson_id=%s, error=%v", lessonID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, selectSlot.ErrLessonNotFound):
			handlers.RespondNotFound(w, msgLessonNotFound)

		case errors.Is(err, selectSlot.ErrOptionNotFound):
			handlers.RespondNotFound(w, msgOptionNotFound)

		case errors.Is(err, selectSlot.ErrNotMentoring):
			handlers.RespondBadRequest(w, msgNotMentoring)

		default:
			h.logger.Error("POST /lessons/{id}/mentoring/slot - Failed to select slot: lesson_id=%s, error=%v", lessonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
