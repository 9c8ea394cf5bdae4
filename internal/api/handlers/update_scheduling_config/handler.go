package update_scheduling_config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fillinv/lesson-scheduler/internal/api/handlers"
	"github.com/fillinv/lesson-scheduler/internal/api/middleware"
	"github.com/fillinv/lesson-scheduler/internal/service/config"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgLessonNotFound     = "урок не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidData        = "некорректные данные конфигурации"
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

// Handle PUT /api/v1/lessons/{lessonId}/scheduling-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID := mux.Vars(r)["lessonId"]
	userID, _ := middleware.GetUserID(r.Context())

	// Декодируем body
	var req UpdateSchedulingConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /lessons/{id}/scheduling-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обновляем конфигурацию (сервис сам проверит, что пользователь - наставник урока)
	result, err := h.service.Update(r.Context(), req.ToServiceRequest(lessonID, userID))
	if err != nil {
		switch {
		case errors.Is(err, config.ErrLessonNotFound):
			handlers.RespondNotFound(w, msgLessonNotFound)

		case errors.Is(err, config.ErrAccessDenied):
			h.logger.Warn("PUT /lessons/{id}/scheduling-config - Access denied: lesson_id=%s, user_id=%s",
				lessonID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, config.ErrInvalidInput):
			h.logger.Warn("PUT /lessons/{id}/scheduling-config - Invalid data: lesson_id=%s, error=%v",
				lessonID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /lessons/{id}/scheduling-config - Failed to update config: lesson_id=%s, error=%v",
				lessonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /lessons/{id}/scheduling-config - Config updated successfully: lesson_id=%s", lessonID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
