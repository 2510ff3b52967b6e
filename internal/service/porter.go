package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alanjohnck/porter-proxy/internal/config"
	"github.com/alanjohnck/porter-proxy/pkg/logger"
)

const (
	apiKeyHeader = "X-API-KEY"
	userAgent    = "porter-proxy/1.0"

	// maxResponseBytes bounds how much of an upstream body is relayed
	maxResponseBytes = 10 << 20
)

// Response is a relayed upstream response
type Response struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

// PorterService forwards requests to the Porter API with the configured credential
type PorterService struct {
	httpClient *http.Client
	config     *config.PorterConfig
	logger     *logger.Logger
}

// NewPorterService creates a new Porter service
func NewPorterService(cfg *config.PorterConfig, log *logger.Logger) *PorterService {
	return &PorterService{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		config: cfg,
		logger: log,
	}
}

// BaseURL returns the configured upstream base URL
func (s *PorterService) BaseURL() string {
	return s.config.BaseURL
}

// Do performs exactly one request against the upstream. A non-2xx answer
// yields *UpstreamError, no answer at all yields *TransportError.
func (s *PorterService) Do(ctx context.Context, method, path, rawQuery string, body []byte) (*Response, error) {
	target := s.config.BaseURL + path
	if rawQuery != "" {
		target += "?" + rawQuery
	}

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(apiKeyHeader, s.config.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := s.logger.FromContext(ctx).With("method", method, "upstream_path", path)
	log.Debug("Calling Porter API")

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Error("Porter API unreachable", "error", err, "duration_ms", time.Since(start).Milliseconds())
		return nil, &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		log.Error("Failed to read Porter API response", "error", err, "status", resp.StatusCode)
		return nil, &TransportError{Op: method + " " + path, Err: fmt.Errorf("failed to read response: %w", err)}
	}
	if len(data) > maxResponseBytes {
		log.Error("Porter API response too large", "status", resp.StatusCode, "limit_bytes", maxResponseBytes)
		return nil, &TransportError{Op: method + " " + path, Err: ErrResponseTooLarge}
	}

	result := &Response{
		StatusCode:  resp.StatusCode,
		Body:        data,
		ContentType: resp.Header.Get("Content-Type"),
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn("Porter API error",
			"status", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, &UpstreamError{StatusCode: result.StatusCode, Body: result.Body, ContentType: result.ContentType}
	}

	log.Info("Porter API call succeeded",
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}
