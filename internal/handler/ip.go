package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/alanjohnck/porter-proxy/internal/model"
	"github.com/alanjohnck/porter-proxy/pkg/logger"
)

// IPResolver reports the gateway's public IP
type IPResolver interface {
	PublicIP(ctx context.Context) (string, error)
}

// IPHandler serves the egress IP lookup
type IPHandler struct {
	resolver IPResolver
	logger   *logger.Logger
}

// NewIPHandler creates a new IP handler
func NewIPHandler(resolver IPResolver, log *logger.Logger) *IPHandler {
	return &IPHandler{
		resolver: resolver,
		logger:   log,
	}
}

// MyIP handles GET /my-ip
func (h *IPHandler) MyIP(w http.ResponseWriter, r *http.Request) {
	ip, err := h.resolver.PublicIP(r.Context())
	if err != nil {
		h.logger.FromContext(r.Context()).Error("Failed to fetch public IP", "error", err)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "Error fetching IP")
		return
	}

	writeJSON(w, http.StatusOK, model.IPResponse{IP: ip})
}
