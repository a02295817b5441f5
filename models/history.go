// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AnalysisRecord is one analysis attempt kept in the local history.
type AnalysisRecord struct {
	// ID is a time-ordered UUID assigned by the client.
	ID string `json:"id"`
	// FileName is the base name of the uploaded file.
	FileName string `json:"file_name"`
	// FileSize is the number of bytes sent.
	FileSize int64 `json:"file_size"`
	// Fingerprint is the hex BLAKE2b-256 digest of the file content.
	Fingerprint string `json:"fingerprint"`
	// BaseURL is the backend the file was sent to.
	BaseURL string `json:"base_url"`
	// Success is true when the backend returned a 2xx response.
	Success bool `json:"success"`
	// StatusCode is the HTTP status of a rejected upload, 0 otherwise.
	StatusCode int `json:"status_code,omitempty"`
	// Error is the failure text, empty on success.
	Error string `json:"error,omitempty"`
	// Response is the raw body on success.
	Response AnalysisResponse `json:"response,omitempty"`
	// Duration is the wall time of the round trip.
	Duration time.Duration `json:"duration"`
	// CreatedAt is when the analysis started.
	CreatedAt time.Time `json:"created_at"`
}

// AnalysisResult pairs a file path with the outcome of analysing it.
type AnalysisResult struct {
	Path     string
	Response AnalysisResponse
	Err      error
}
