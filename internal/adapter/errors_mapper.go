package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := resp.Body()
	return &StatusError{
		StatusCode: resp.StatusCode(),
		Detail:     errorDetail(body),
		Body:       body,
	}
}

func mapTransportError(op string, err error) error {
	return fmt.Errorf("%w: %s request: %w", ErrRequestFailed, op, err)
}

func mapDecodeError(op string, err error) error {
	return fmt.Errorf("%w: decode %s response: %w", ErrRequestFailed, op, err)
}

// errorDetail extracts FastAPI's {"detail": ...}. String details are returned
// as-is, structured ones (validation errors) as compact JSON.
func errorDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Detail) > 0 {
		var s string
		if err = json.Unmarshal(payload.Detail, &s); err == nil {
			return s
		}
		return string(payload.Detail)
	}

	return strings.TrimSpace(string(body))
}
