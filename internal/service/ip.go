package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/alanjohnck/porter-proxy/internal/config"
	"github.com/alanjohnck/porter-proxy/pkg/logger"
)

// IPService looks up the gateway's public egress IP
type IPService struct {
	httpClient *http.Client
	config     *config.IPLookupConfig
	logger     *logger.Logger
}

// NewIPService creates a new IP lookup service
func NewIPService(cfg *config.IPLookupConfig, log *logger.Logger) *IPService {
	return &IPService{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
		logger: log,
	}
}

// PublicIP queries the lookup service and returns the reported address
func (s *IPService) PublicIP(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Op: "GET ip lookup", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: body, ContentType: resp.Header.Get("Content-Type")}
	}

	var payload struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode ip lookup response: %w", err)
	}
	if payload.IP == "" {
		return "", fmt.Errorf("ip lookup response has no ip")
	}

	s.logger.FromContext(ctx).Debug("Public IP resolved", "ip", payload.IP)
	return payload.IP, nil
}
