package get_mentoring_week

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/fillinv/lesson-scheduler/internal/api/handlers"
	"github.com/fillinv/lesson-scheduler/internal/api/middleware"
	getMentoringWeek "github.com/fillinv/lesson-scheduler/internal/usecase/get_mentoring_week"
)

const (
	msgInvalidOffset  = "некорректное смещение недели"
	msgInvalidInput   = "некорректные параметры запроса"
	msgLessonNotFound = "урок не найден"
	msgOptionNotFound = "опция не найдена"
	msgNotMentoring   = "урок не является наставничеством"
	msgStaleRefresh   = "запрос вытеснен более новым"
)

type Handler struct {
	useCase GetMentoringWeekUseCase
	logger  Logger
}

func NewHandler(useCase GetMentoringWeekUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/lessons/{lessonId}/mentoring/week
// Query params: offset (optional, weeks from current), optionId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	lessonID := mux.Vars(r)["lessonId"]

	offset := 0
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		parsed, err := strconv.Atoi(offsetStr)
		if err != nil {
			h.logger.Warn("GET /lessons/{id}/mentoring/week - Invalid offset: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOffset)
			return
		}
		offset = parsed
	}

	req := &getMentoringWeek.Request{
		ViewerID: middleware.GetViewerID(r.Context()),
		LessonID: lessonID,
		Offset:   offset,
	}
	if optionID := r.URL.Query().Get("optionId"); optionID != "" {
		req.OptionID = &optionID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getMentoringWeek.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getMentoringWeek.ErrLessonNotFound):
			h.logger.Warn("GET /lessons/{id}/mentoring/week - Lesson not found: lesson_id=%s", lessonID)
			handlers.RespondNotFound(w, msgLessonNotFound)

		case errors.Is(err, getMentoringWeek.ErrOptionNotFound):
			handlers.RespondNotFound(w, msgOptionNotFound)

		case errors.Is(err, getMentoringWeek.ErrNotMentoring):
			handlers.RespondBadRequest(w, msgNotMentoring)

		case errors.Is(err, getMentoringWeek.ErrStaleRefresh):
			handlers.RespondStale(w, msgStaleRefresh)

		default:
			h.logger.Error("GET /lessons/{id}/mentoring/week - Failed to build week: lesson_id=%s, error=%v", lessonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /lessons/{id}/mentoring/week - Week built: lesson_id=%s, offset=%d, days=%d",
		lessonID, offset, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
