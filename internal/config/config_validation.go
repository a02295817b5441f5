// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.Concurrency < 1 {
		return ErrInvalidWorkerConfigs
	}

	switch cfg.Output.Format {
	case "", OutputJSON, OutputPretty:
	default:
		return ErrInvalidOutputConfigs
	}

	return nil
}
