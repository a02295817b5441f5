package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fintrace-client/internal/logger"
	"github.com/MKhiriev/fintrace-client/models"
)

// historyRepository is the SQL implementation of [HistoryRepository]. It works
// against both SQLite and PostgreSQL; the dialect only changes placeholders.
type historyRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewHistoryRepository constructs a [HistoryRepository] on db.
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating history repository")
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

// Save implements [HistoryRepository].
func (r *historyRepository) Save(ctx context.Context, rec models.AnalysisRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRecordQuery(r.db.builder(), rec)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		class := r.classify(err)
		log.Err(err).
			Str("func", "*historyRepository.Save").
			Str("id", rec.ID).
			Stringer("class", class).
			Msg("failed to insert analysis record")

		if class == Duplicate {
			return ErrRecordExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// List implements [HistoryRepository].
func (r *historyRepository) List(ctx context.Context, limit int) ([]models.AnalysisRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsQuery(r.db.builder(), limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.List").Msg("failed to query analysis records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.AnalysisRecord
	for rows.Next() {
		rec, scanErr := scanRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*historyRepository.List").Msg("failed to scan analysis record")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*historyRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// Get implements [HistoryRepository].
func (r *historyRepository) Get(ctx context.Context, id string) (models.AnalysisRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordQuery(r.db.builder(), id)
	if err != nil {
		return models.AnalysisRecord{}, err
	}

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.AnalysisRecord{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.Get").Str("id", id).Msg("failed to get analysis record")
		return models.AnalysisRecord{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return rec, nil
}

func (r *historyRepository) classify(err error) ErrorClassification {
	if r.db.errorClassificator == nil {
		return Unclassified
	}
	return r.db.errorClassificator.Classify(err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.AnalysisRecord, error) {
	var (
		rec        models.AnalysisRecord
		response   string
		durationMS int64
	)

	err := row.Scan(
		&rec.ID,
		&rec.FileName,
		&rec.FileSize,
		&rec.Fingerprint,
		&rec.BaseURL,
		&rec.Success,
		&rec.StatusCode,
		&rec.Error,
		&response,
		&durationMS,
		&rec.CreatedAt,
	)
	if err != nil {
		return models.AnalysisRecord{}, err
	}

	if response != "" {
		rec.Response = models.AnalysisResponse(response)
	}
	rec.Duration = time.Duration(durationMS) * time.Millisecond

	return rec, nil
}
