package service

import (
	"errors"
	"fmt"
	"net"
)

// ErrResponseTooLarge is reported when an upstream body exceeds the relay limit
var ErrResponseTooLarge = errors.New("upstream response exceeds size limit")

// UpstreamError is returned when the upstream answered with a non-2xx status
type UpstreamError struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// TransportError is returned when no response was obtained at all
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a deadline expiry
func (e *TransportError) Timeout() bool {
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}
