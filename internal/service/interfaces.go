// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client use cases built on top of the backend
// adapter and the local history store.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/analysis_service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/fintrace-client/models"
)

// AnalysisService is the client-side contract for sending files to the
// analysis backend and working with the results.
type AnalysisService interface {
	// Analyze uploads file and returns the backend's response unmodified.
	// Adapter errors are returned as-is. When history is enabled the outcome
	// is recorded; recording failures are logged and never returned.
	Analyze(ctx context.Context, file models.AnalysisFile) (models.AnalysisResponse, error)

	// AnalyzeFile opens the file at path and analyses it.
	AnalyzeFile(ctx context.Context, path string) (models.AnalysisResponse, error)

	// AnalyzeFiles analyses every path concurrently, bounded by the worker
	// pool size. Results are in input order, each with its own error; one
	// failure does not stop the others.
	AnalyzeFiles(ctx context.Context, paths []string) []models.AnalysisResult

	// Summarize asks the backend for a written summary of report.
	Summarize(ctx context.Context, report models.AnalysisReport) (models.SummarizeResponse, error)

	// Chat continues a conversation about report. messages is the whole
	// conversation so far, ending with the user's latest question.
	Chat(ctx context.Context, messages []models.ChatMessage, report models.AnalysisReport) (models.ChatResponse, error)

	// History returns up to limit recorded analyses, newest first.
	// Returns [ErrHistoryDisabled] when no history store is configured.
	History(ctx context.Context, limit int) ([]models.AnalysisRecord, error)

	// Record returns one recorded analysis by id.
	Record(ctx context.Context, id string) (models.AnalysisRecord, error)
}
