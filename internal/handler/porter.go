package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/alanjohnck/porter-proxy/internal/model"
	"github.com/alanjohnck/porter-proxy/internal/service"
	"github.com/alanjohnck/porter-proxy/internal/validation"
	"github.com/alanjohnck/porter-proxy/pkg/logger"
)

const (
	msgPorterError   = "Porter API error"
	msgCommFailure   = "Failed to communicate with Porter API"
	msgServerError   = "Server Error"
	msgInvalidBody   = "Invalid JSON body"

	maxRequestBytes = 1 << 20
)

// Forwarder issues one call against the upstream API
type Forwarder interface {
	Do(ctx context.Context, method, path, rawQuery string, body []byte) (*service.Response, error)
	BaseURL() string
}

// outbound is a validated request ready to be sent upstream
type outbound struct {
	rawQuery string
	body     []byte
}

// decodeFunc extracts and validates the inbound request
type decodeFunc func(w http.ResponseWriter, r *http.Request) (*outbound, *validation.Error)

// translateFunc writes the response for a failed upstream call
type translateFunc func(w http.ResponseWriter, err error)

// PorterHandler serves the routes forwarded to the Porter API
type PorterHandler struct {
	porter Forwarder
	logger *logger.Logger
}

// NewPorterHandler creates a new Porter handler
func NewPorterHandler(porter Forwarder, log *logger.Logger) *PorterHandler {
	return &PorterHandler{
		porter: porter,
		logger: log,
	}
}

// forward builds the handler shared by every forwarding route:
// decode, validate, call upstream once, then relay or translate.
func (h *PorterHandler) forward(route Route, decode decodeFunc, translate translateFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := h.logger.FromContext(r.Context()).WithRoute(route.Name)

		out, verr := decode(w, r)
		if verr != nil {
			log.Warn("Rejected request", "reason", verr.Error())
			writeValidationError(w, verr)
			return
		}

		resp, err := h.porter.Do(r.Context(), route.UpstreamMethod, route.UpstreamPath, out.rawQuery, out.body)
		if err != nil {
			log.WithError(err).Warn("Forwarding failed")
			translate(w, err)
			return
		}

		relay(w, resp)
	}
}

// wrapUpstreamError answers upstream errors with their own status and a
// wrapper body; anything else is a communication failure.
func wrapUpstreamError(w http.ResponseWriter, err error) {
	var upErr *service.UpstreamError
	if errors.As(err, &upErr) {
		writeJSON(w, upErr.StatusCode, model.ErrorResponse{
			Error:   msgPorterError,
			Details: upstreamDetails(upErr.Body),
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		Error:   msgCommFailure,
		Message: err.Error(),
	})
}

// relayUpstreamError answers upstream errors with the upstream status and
// body untouched; anything else is a generic server error.
func relayUpstreamError(w http.ResponseWriter, err error) {
	var upErr *service.UpstreamError
	if errors.As(err, &upErr) {
		relay(w, &service.Response{
			StatusCode:  upErr.StatusCode,
			Body:        upErr.Body,
			ContentType: upErr.ContentType,
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		Error:   msgCommFailure,
		Message: msgServerError,
	})
}

// readBody reads a bounded request body. Bodies that are empty or not
// sent as application/json read as "{}".
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, *validation.Error) {
	if !isJSONContent(r.Header.Get("Content-Type")) {
		return []byte("{}"), nil
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &validation.Error{Message: "Request body too large"}
		}
		return nil, &validation.Error{Message: msgInvalidBody, Details: err.Error()}
	}
	if len(data) == 0 {
		return []byte("{}"), nil
	}
	return data, nil
}

func isJSONContent(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}

// decodeOrderFlow requires a truthy order_id and a present flow_type
func decodeOrderFlow(w http.ResponseWriter, r *http.Request) (*outbound, *validation.Error) {
	data, verr := readBody(w, r)
	if verr != nil {
		return nil, verr
	}

	var req model.OrderFlowRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, &validation.Error{Message: msgInvalidBody, Details: err.Error()}
	}
	if !validation.TruthyJSON(req.OrderID) {
		return nil, validation.Errorf("order_id is required")
	}
	if !req.HasFlowType() {
		return nil, validation.Errorf("flow_type is required")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, &validation.Error{Message: msgInvalidBody, Details: err.Error()}
	}
	return &outbound{body: body}, nil
}

// decodeCreateOrder passes any well-formed JSON object or array through
// verbatim
func decodeCreateOrder(w http.ResponseWriter, r *http.Request) (*outbound, *validation.Error) {
	data, verr := readBody(w, r)
	if verr != nil {
		return nil, verr
	}
	if !json.Valid(data) {
		return nil, &validation.Error{Message: msgInvalidBody, Details: "request body is not valid JSON"}
	}
	if trimmed := bytes.TrimSpace(data); trimmed[0] != '{' && trimmed[0] != '[' {
		return nil, &validation.Error{Message: msgInvalidBody, Details: "request body must be a JSON object or array"}
	}
	return &outbound{body: data}, nil
}
