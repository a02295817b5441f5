package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the resolved transport settings.
type ClientAdapter struct {
	// BaseURL is the backend address after profile resolution.
	BaseURL string
	// RequestTimeout is the per-request timeout, zero for none.
	RequestTimeout time.Duration
}

// ClientHistory holds the history store settings.
type ClientHistory struct {
	// DSN is the store location; empty disables history.
	DSN string
}

// Enabled reports whether analyses should be recorded.
func (h ClientHistory) Enabled() bool {
	return h.DSN != ""
}

// ClientWorkers holds batch upload settings.
type ClientWorkers struct {
	// Concurrency is the upload fan-out, at least 1.
	Concurrency int
}

// ClientConfig is the validated configuration the client runs with.
type ClientConfig struct {
	Adapter ClientAdapter
	History ClientHistory
	Workers ClientWorkers
	Log     Log
	Output  Output
}

// GetClientConfig loads configuration from the environment, from args
// (normally os.Args[1:]) and from the JSON file they point to, then resolves
// the backend profile and validates the result.
//
// The positional arguments left after flag parsing are returned so the
// caller can dispatch a command.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg, err := newClientConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	return clientCfg, b.rest, nil
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	baseURL, err := resolveBaseURL(cfg.Adapter)
	if err != nil {
		return nil, err
	}

	concurrency := cfg.Workers.Concurrency
	if concurrency == 0 {
		concurrency = defaultConcurrency
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        baseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		History: ClientHistory{DSN: cfg.History.DSN},
		Workers: ClientWorkers{Concurrency: concurrency},
		Log:     cfg.Log,
		Output:  cfg.Output,
	}

	return clientCfg, clientCfg.validate()
}

func resolveBaseURL(cfg Adapter) (string, error) {
	if cfg.BaseURL != "" {
		return cfg.BaseURL, nil
	}

	profile := cfg.Profile
	if profile == "" {
		profile = defaultProfile
	}

	baseURL, ok := Profiles[profile]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownProfile, profile)
	}
	return baseURL, nil
}
