package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-contact-share/internal/logger"
	"github.com/MKhiriev/go-contact-share/models"
)

// snapshotRepository is the SQLite-backed implementation of
// [SnapshotRepository]. A save replaces the whole scope atomically inside one
// transaction so a reader never observes a half-written list.
type snapshotRepository struct {
	*DB
	logger *logger.Logger
}

// NewSnapshotRepository constructs a [SnapshotRepository] backed by the
// provided database connection and logger.
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveSnapshot replaces the cached contact list of one scope. Passing an
// empty list clears the scope.
func (s *snapshotRepository) SaveSnapshot(ctx context.Context, scope models.Scope, contacts []models.Contact) error {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.SaveSnapshot").
			Str("scope", string(scope)).
			Msg("failed to begin snapshot transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	deleteQuery, deleteArgs, err := buildDeleteSnapshotQuery(scope)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.SaveSnapshot").
			Str("scope", string(scope)).
			Msg("failed to clear previous snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(contacts) > 0 {
		insertQuery, insertArgs, buildErr := buildInsertSnapshotQuery(scope, contacts)
		if buildErr != nil {
			return buildErr
		}
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).
				Str("func", "snapshotRepository.SaveSnapshot").
				Str("scope", string(scope)).
				Int("contacts", len(contacts)).
				Msg("failed to insert snapshot rows")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.SaveSnapshot").
			Str("scope", string(scope)).
			Msg("failed to commit snapshot transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetSnapshot loads the cached contact list of one scope. A scope that was
// never saved yields an empty list.
func (s *snapshotRepository) GetSnapshot(ctx context.Context, scope models.Scope) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSnapshotQuery(scope)
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.GetSnapshot").
			Str("scope", string(scope)).
			Msg("failed to execute snapshot query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0, 16)
	for rows.Next() {
		var (
			rowScope   string
			contact    models.Contact
			recordJSON string
		)
		if err = rows.Scan(&rowScope, &contact.ID, &contact.Name, &contact.PhoneNumber, &recordJSON); err != nil {
			log.Err(err).
				Str("func", "snapshotRepository.GetSnapshot").
				Str("scope", string(scope)).
				Msg("failed to scan snapshot row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if err = json.Unmarshal([]byte(recordJSON), &contact.Record); err != nil {
			// A corrupt cached record is dropped, mirroring the tolerance
			// policy for unmappable remote records.
			log.Warn().
				Str("func", "snapshotRepository.GetSnapshot").
				Str("contact_id", contact.ID).
				Msg("dropping snapshot row with undecodable record")
			continue
		}

		contacts = append(contacts, contact)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}
