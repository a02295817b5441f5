// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/fintrace-client/models"
	sq "github.com/Masterminds/squirrel"
)

const analysesTable = "analyses"

var analysisColumns = []string{
	"id",
	"file_name",
	"file_size",
	"fingerprint",
	"base_url",
	"success",
	"status_code",
	"error",
	"response",
	"duration_ms",
	"created_at",
}

func buildInsertRecordQuery(b sq.StatementBuilderType, rec models.AnalysisRecord) (string, []any, error) {
	query, args, err := b.
		Insert(analysesTable).
		Columns(analysisColumns...).
		Values(
			rec.ID,
			rec.FileName,
			rec.FileSize,
			rec.Fingerprint,
			rec.BaseURL,
			rec.Success,
			rec.StatusCode,
			rec.Error,
			string(rec.Response),
			rec.Duration.Milliseconds(),
			rec.CreatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListRecordsQuery(b sq.StatementBuilderType, limit int) (string, []any, error) {
	q := b.
		Select(analysisColumns...).
		From(analysesTable).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetRecordQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.
		Select(analysisColumns...).
		From(analysesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
