package delete_scheduling_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fillinv/lesson-scheduler/internal/api/handlers"
	"github.com/fillinv/lesson-scheduler/internal/api/middleware"
	"github.com/fillinv/lesson-scheduler/internal/service/config"
)

const (
	msgNotFound       = "конфигурация урока не найдена"
	msgLessonNotFound = "урок не найден"
	msgForbidden      = "доступ запрещен"
)

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

// Handle DELETE /api/v1/lessons/{lessonId}/scheduling-config
// Урок возвращается к глобальной конфигурации.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID := mux.Vars(r)["lessonId"]
	userID, _ := middleware.GetUserID(r.Context())

	if err := h.service.Delete(r.Context(), lessonID, userID); err != nil {
		switch {
		case errors.Is(err, config.ErrConfigNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, config.ErrLessonNotFound):
			handlers.RespondNotFound(w, msgLessonNotFound)

		case errors.Is(err, config.ErrAccessDenied):
			h.logger.Warn("DELETE /lessons/{id}/scheduling-config - Access denied: lesson_id=%s, user_id=%s",
				lessonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /lessons/{id}/scheduling-config - Failed to delete config: lesson_id=%s, error=%v",
				lessonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /lessons/{id}/scheduling-config - Config deleted: lesson_id=%s", lessonID)
	w.WriteHeader(http.StatusNoContent)
}
