package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRequestFailed is matched by every error returned from [AnalyzerAdapter]
// methods.
var ErrRequestFailed = errors.New("backend request failed")

// Status sentinels for the codes the backend is known to return.
var (
	ErrBadRequest         = errors.New("bad request")
	ErrUnprocessable      = errors.New("unprocessable request")
	ErrInternalServer     = errors.New("internal server error")
	ErrBadGateway         = errors.New("bad gateway")
	ErrServiceUnavailable = errors.New("service unavailable")
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusInternalServerError: ErrInternalServer,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Detail is the "detail" message of the backend's error body, or the
	// trimmed body when it has no such field.
	Detail string
	// Body is the raw response body.
	Body []byte
}

func (e *StatusError) Error() string {
	detail := e.Detail
	if detail == "" {
		detail = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, detail)
}

// Unwrap makes every StatusError match [ErrRequestFailed].
func (e *StatusError) Unwrap() error {
	return ErrRequestFailed
}

// Is matches the status sentinel for e.StatusCode, e.g. [ErrBadRequest] for 400.
func (e *StatusError) Is(target error) bool {
	sentinel, ok := statusSentinels[e.StatusCode]
	return ok && target == sentinel
}
