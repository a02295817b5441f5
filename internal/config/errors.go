package config

import "errors"

// Validation errors returned by [GetClientConfig] when configuration groups
// are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, an empty base URL or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrUnknownProfile indicates a profile name missing from [Profiles].
	ErrUnknownProfile = errors.New("unknown backend profile")
	// ErrInvalidWorkerConfigs indicates a concurrency below 1.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidOutputConfigs indicates an unsupported output format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
)
