package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-share/internal/logger"
)

type flagRepository struct {
	*DB
	logger *logger.Logger
}

// NewFlagRepository constructs a [FlagRepository] backed by the provided
// database connection and logger.
func NewFlagRepository(db *DB, logger *logger.Logger) FlagRepository {
	return &flagRepository{
		DB:     db,
		logger: logger,
	}
}

// GetFlag returns the persisted value of key. A key that was never written
// reads as false with no error.
func (f *flagRepository) GetFlag(ctx context.Context, key string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFlagQuery(key)
	if err != nil {
		log.Err(err).
			Str("func", "flagRepository.GetFlag").
			Str("flag_key", key).
			Msg("failed to build select flag query")
		return false, err
	}

	var value bool
	row := f.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		log.Err(err).
			Str("func", "flagRepository.GetFlag").
			Str("flag_key", key).
			Msg("failed to scan flag row")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

// SetFlag writes the value of key, inserting or updating as needed.
func (f *flagRepository) SetFlag(ctx context.Context, key string, value bool) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertFlagQuery(key, value)
	if err != nil {
		log.Err(err).
			Str("func", "flagRepository.SetFlag").
			Str("flag_key", key).
			Msg("failed to build upsert flag query")
		return err
	}

	if _, err = f.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "flagRepository.SetFlag").
			Str("flag_key", key).
			Bool("flag_value", value).
			Msg("failed to execute upsert for flag")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
