package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/alanjohnck/porter-proxy/internal/model"
	"github.com/alanjohnck/porter-proxy/internal/service"
	"github.com/alanjohnck/porter-proxy/internal/validation"
)

// writeJSON sends v as a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// writeValidationError sends a 400 for a rejected inbound request
func writeValidationError(w http.ResponseWriter, err *validation.Error) {
	resp := model.ErrorResponse{Error: err.Message}
	if err.Details != "" {
		resp.Details = err.Details
	}
	writeJSON(w, http.StatusBadRequest, resp)
}

// relay copies an upstream response to the caller unchanged
func relay(w http.ResponseWriter, resp *service.Response) {
	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode)
	w.Write(resp.Body)
}

// upstreamDetails returns the upstream body as embedded JSON, or as text
// when it is not JSON. A literal null stays null.
func upstreamDetails(body []byte) any {
	if len(bytes.TrimSpace(body)) > 0 && json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
