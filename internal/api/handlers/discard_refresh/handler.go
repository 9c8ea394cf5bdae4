package discard_refresh

import (
	"net/http"

	"github.com/fillinv/lesson-scheduler/internal/api/handlers"
	"github.com/fillinv/lesson-scheduler/internal/api/middleware"
)

const msgViewerRequired = "требуется заголовок X-Viewer-ID"

type Handler struct {
	coordinator RefreshCoordinator
	logger      Logger
}

func NewHandler(coordinator RefreshCoordinator, logger Logger) *Handler {
	return &Handler{
		coordinator: coordinator,
		logger:      logger,
	}
}

// Handle DELETE /api/v1/refresh
// Зритель ушёл со страницы урока: незавершённое обновление его области отбрасывается.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// без заголовка область совпадает с request id и сбрасывать нечего
	if r.Header.Get(middleware.HeaderViewerID) == "" {
		handlers.RespondBadRequest(w, msgViewerRequired)
		return
	}

	viewerID := middleware.GetViewerID(r.Context())
	if h.coordinator.Reset(viewerID) {
		h.logger.Info("DELETE /refresh - In-flight refresh discarded: viewer=%s", viewerID)
	}
	w.WriteHeader(http.StatusNoContent)
}
