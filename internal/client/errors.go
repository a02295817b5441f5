package client

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/fintrace-client/internal/adapter"
	"github.com/MKhiriev/fintrace-client/internal/service"
	"github.com/MKhiriev/fintrace-client/internal/store"
)

var (
	ErrUsage          = errors.New("invalid usage")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBatchFailed    = errors.New("some files could not be analyzed")
)

// Messages shown to the user in place of low-level errors.
const (
	MsgBackendUnavailable = "analysis service is unreachable or did not answer in time"
	MsgFileRejected       = "file was rejected by the analysis service"
	MsgBackendFailed      = "analysis service failed to process the request"
	MsgHistoryDisabled    = "history is disabled, set HISTORY_DSN or pass -d"
	MsgRecordNotFound     = "no analysis with this id in history"
)

// HumanizeError turns err into a message fit for the terminal.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	var statusErr *adapter.StatusError
	switch {
	case errors.Is(err, service.ErrHistoryDisabled):
		return MsgHistoryDisabled
	case errors.Is(err, store.ErrRecordNotFound):
		return MsgRecordNotFound
	case errors.As(err, &statusErr) && statusErr.StatusCode < 500:
		if statusErr.Detail != "" {
			return MsgFileRejected + ": " + statusErr.Detail
		}
		return MsgFileRejected
	case errors.As(err, &statusErr):
		return MsgBackendFailed
	case errors.Is(err, context.DeadlineExceeded):
		return MsgBackendUnavailable
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") {
		return MsgBackendUnavailable
	}

	return err.Error()
}
