package http

import (
	"net/http"

	"github.com/davidbz/purposebot/internal/metrics"
	"github.com/davidbz/purposebot/internal/observability"
)

// Renderer serialises metrics in the text exposition format.
type Renderer interface {
	Render() ([]byte, error)
}

// Handler handles HTTP requests.
type Handler struct {
	renderer Renderer
}

// NewHandler creates a new HTTP handler.
func NewHandler(renderer Renderer) *Handler {
	return &Handler{
		renderer: renderer,
	}
}

// HandleMetrics serves the current metrics snapshot.
func (h *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := h.renderer.Render()
	if err != nil {
		observability.FromContext(r.Context()).Error("failed to render metrics", observability.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", metrics.ContentType)
	w.WriteHeader(http.StatusOK)
	if _, writeErr := w.Write(body); writeErr != nil {
		// Already written status, can't change it, just log.
		observability.FromContext(r.Context()).Warn("failed to write metrics", observability.Error(writeErr))
	}
}
