package service

import "errors"

// ErrHistoryDisabled is returned by history operations when the client runs
// without a history store.
var ErrHistoryDisabled = errors.New("analysis history is disabled")
