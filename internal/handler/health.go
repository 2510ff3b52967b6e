package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/alanjohnck/porter-proxy/internal/model"
	"github.com/alanjohnck/porter-proxy/pkg/logger"
)

// HealthHandler handles liveness requests
type HealthHandler struct {
	porter    Forwarder
	logger    *logger.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(porter Forwarder, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		porter:    porter,
		logger:    log,
		startTime: time.Now(),
	}
}

// Root handles GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "Hello World!")
}

// CheckHealth handles GET /health
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{
		Status: "healthy",
		Porter: model.PorterStatus{
			Configured: h.porter.BaseURL() != "",
			BaseURL:    h.porter.BaseURL(),
		},
		Uptime:    time.Since(h.startTime).String(),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
