// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the FinTrace
// analysis backend.
//
// The primary abstraction is [AnalyzerAdapter], which decouples the service
// layer from HTTP. The package ships an HTTP implementation built on resty
// ([NewHTTPAnalyzerAdapter]).
//
// Every failure of a call, whether the transport broke, the server answered
// with a non-2xx status or the body could not be decoded, matches
// [ErrRequestFailed] with [errors.Is]. Status failures additionally carry a
// [*StatusError] for callers that need the code or the server's detail.
package adapter

import (
	"context"

	"github.com/MKhiriev/fintrace-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/analyzer_adapter_mock.go -package=mock

// AnalyzerAdapter defines communication with the analysis backend.
// Implementations must be safe for concurrent use: calls share no mutable
// state.
type AnalyzerAdapter interface {
	// BaseURL returns the normalised backend address requests are sent to.
	BaseURL() string

	// Analyze uploads file as a single-part multipart form (field "file") to
	// POST /analyze and returns the response body unmodified. The file is not
	// validated; rejections come from the server.
	Analyze(ctx context.Context, file models.AnalysisFile) (models.AnalysisResponse, error)

	// Summarize asks the backend for a short written summary of an analysis
	// via POST /summarize.
	Summarize(ctx context.Context, req models.SummarizeRequest) (models.SummarizeResponse, error)

	// Chat sends a conversation about an analysis to POST /chat and returns
	// the assistant's reply.
	Chat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)
}
