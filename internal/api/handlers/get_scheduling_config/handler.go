package get_scheduling_config

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fillinv/lesson-scheduler/internal/api/handlers"
)

const msgMissingLessonID = "ID урока обязателен"

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/lessons/{lessonId}/scheduling-config
// Публичный endpoint - без авторизации.
// Без сохраненной конфигурации возвращаются значения по умолчанию (level=default).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID := mux.Vars(r)["lessonId"]
	if lessonID == "" {
		handlers.RespondBadRequest(w, msgMissingLessonID)
		return
	}

	result, err := h.service.GetEffective(r.Context(), lessonID)
	if err != nil {
		h.logger.Error("GET /lessons/{id}/scheduling-config - Failed to get config: lesson_id=%s, error=%v",
			lessonID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /lessons/{id}/scheduling-config - Config retrieved: lesson_id=%s, level=%s",
		lessonID, result.Level)
	handlers.RespondJSON(w, http.StatusOK, result)
}
