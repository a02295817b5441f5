package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/fintrace-client/internal/config"
	"github.com/MKhiriev/fintrace-client/internal/logger"
)

// Storages groups the client repositories and owns the connection behind them.
type Storages struct {
	// HistoryRepository keeps the outcome of every analysis.
	HistoryRepository HistoryRepository

	db *DB
}

// NewStorages opens the database named by cfg.DSN, applies migrations and
// builds the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.ClientHistory, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := connect(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("history database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		HistoryRepository: NewHistoryRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func connect(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	switch dialectForDSN(dsn) {
	case DialectPostgres:
		return NewConnectPostgres(ctx, dsn, log)
	case DialectSQLite:
		return NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}
}

func dialectForDSN(dsn string) Dialect {
	switch {
	case dsn == "":
		return ""
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres
	case strings.Contains(dsn, "://") && !strings.HasPrefix(dsn, "sqlite://"):
		return ""
	default:
		return DialectSQLite
	}
}
