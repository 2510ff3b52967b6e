package model

import "encoding/json"

// OrderFlowRequest is the body accepted by the order flow simulation route.
// Fields are kept raw so their JSON type is forwarded untouched.
type OrderFlowRequest struct {
	OrderID  json.RawMessage `json:"order_id"`
	FlowType json.RawMessage `json:"flow_type"`
}

// HasFlowType reports whether flow_type was present in the body at all.
// An explicit null counts as present.
func (r *OrderFlowRequest) HasFlowType() bool {
	return r.FlowType != nil
}

// QuoteRequest holds the parsed get_quote query parameters
type QuoteRequest struct {
	PickupDetails map[string]any `json:"pickup_details"`
	DropDetails   map[string]any `json:"drop_details"`
	Customer      map[string]any `json:"customer"`
}

// Params returns the request as object-valued query parameters
func (r *QuoteRequest) Params() map[string]any {
	return map[string]any{
		"pickup_details": r.PickupDetails,
		"drop_details":   r.DropDetails,
		"customer":       r.Customer,
	}
}

// ErrorResponse is the wrapper returned for validation and upstream failures
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
	Message string `json:"message,omitempty"`
}

// IPResponse is returned by the outbound IP lookup route
type IPResponse struct {
	IP string `json:"ip"`
}

// HealthResponse is returned by the health route
type HealthResponse struct {
	Status    string       `json:"status"`
	Porter    PorterStatus `json:"porter"`
	Uptime    string       `json:"uptime"`
	Timestamp string       `json:"timestamp"`
}

// PorterStatus describes the configured upstream
type PorterStatus struct {
	Configured bool   `json:"configured"`
	BaseURL    string `json:"base_url"`
}
