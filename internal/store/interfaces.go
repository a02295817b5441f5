// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the local analysis history.
//
// The backing database is chosen from the DSN: a postgres:// URL opens a
// PostgreSQL connection through the pgx stdlib driver, anything else is
// treated as an SQLite file path. The schema is applied with goose on open.
package store

import (
	"context"

	"github.com/MKhiriev/fintrace-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/history_repository_mock.go -package=mock

// HistoryRepository stores [models.AnalysisRecord] values.
type HistoryRepository interface {
	// Save inserts rec. Returns [ErrRecordExists] if rec.ID is taken.
	Save(ctx context.Context, rec models.AnalysisRecord) error

	// List returns up to limit records, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]models.AnalysisRecord, error)

	// Get returns the record with the given id or [ErrRecordNotFound].
	Get(ctx context.Context, id string) (models.AnalysisRecord, error)
}

// ErrorClassificator maps driver errors onto [ErrorClassification] values
// so repositories do not depend on a specific driver's error types.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
