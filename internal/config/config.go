// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Backend profiles. The hosted backend is the one the released frontend
// talks to; local is the development server started with uvicorn.
const (
	ProfileHosted = "hosted"
	ProfileLocal  = "local"
)

// Profiles maps a profile name to the backend base URL it stands for.
var Profiles = map[string]string{
	ProfileHosted: "https://fintrace-ai.onrender.com",
	ProfileLocal:  "http://127.0.0.1:8000",
}

// Output formats understood by the CLI.
const (
	OutputJSON   = "json"
	OutputPretty = "pretty"
)

const (
	defaultProfile     = ProfileHosted
	defaultConcurrency = 4
)

// StructuredConfig is the raw configuration as read from a single source.
// It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the backend address and request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// History holds the local analysis history store settings.
	History History `envPrefix:"HISTORY_"`

	// Workers holds batch upload settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// Output holds CLI rendering settings.
	Output Output `envPrefix:"OUTPUT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds the settings of the HTTP client talking to the backend.
type Adapter struct {
	// BaseURL is the backend address, e.g. "https://fintrace-ai.onrender.com".
	// Takes precedence over Profile.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Profile names one of [Profiles]. Used when BaseURL is empty.
	// Env: ADAPTER_PROFILE
	Profile string `env:"PROFILE"`

	// RequestTimeout bounds a single request. Zero leaves the HTTP client's
	// default in place (no timeout).
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// History holds the local history store settings.
type History struct {
	// DSN selects the store: a postgres:// URL or an SQLite file path.
	// Empty disables history.
	// Env: HISTORY_DSN
	DSN string `env:"DSN"`
}

// Workers holds the batch upload settings.
type Workers struct {
	// Concurrency is the number of files uploaded at the same time.
	// Env: WORKERS_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log file path. Empty writes next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Output holds CLI rendering settings.
type Output struct {
	// Format is "json" or "pretty". Empty lets the command decide.
	// Env: OUTPUT_FORMAT
	Format string `env:"FORMAT"`
}
