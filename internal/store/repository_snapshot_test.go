package store

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-contact-share/internal/logger"
	"github.com/MKhiriev/go-contact-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotContact(id, name, phone string) models.Contact {
	return models.Contact{
		ID:          id,
		Name:        name,
		PhoneNumber: phone,
		Record: models.Record{
			RecordID: id,
			ZoneID:   models.ContactZoneID,
			Type:     models.RecordTypeContact,
			Fields: map[string]any{
				models.FieldName:        name,
				models.FieldPhoneNumber: phone,
			},
		},
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	payload, err := json.Marshal(v)
	require.NoError(t, err)
	return string(payload)
}

const selectSnapshotSQL = `SELECT scope, contact_id, name, phone_number, record FROM contact_snapshot WHERE scope = ?`

// ── SaveSnapshot ────────────────────────────────────────────────────────────

func TestSnapshotRepository_SaveSnapshot(t *testing.T) {
	contacts := []models.Contact{
		snapshotContact("c-1", "Ada", "+1-555-0100"),
		snapshotContact("c-2", "Grace", "+1-555-0101"),
	}

	t.Run("success: delete then insert inside one transaction", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contact_snapshot")).
			WithArgs(string(models.ScopePrivate)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO contact_snapshot")).
			WillReturnResult(sqlmock.NewResult(2, 2))
		mock.ExpectCommit()

		repo := NewSnapshotRepository(newDBFromSQL(db), logger.Nop())
		err := repo.SaveSnapshot(testContext(), models.ScopePrivate, contacts)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: empty list only clears the scope", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contact_snapshot")).
			WithArgs(string(models.ScopeShared)).
			WillReturnResult(sqlmock.NewResult(0, 5))
		mock.ExpectCommit()

		repo := NewSnapshotRepository(newDBFromSQL(db), logger.Nop())
		err := repo.SaveSnapshot(testContext(), models.ScopeShared, nil)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: begin fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin().WillReturnError(errors.New("database is locked"))

		repo := NewSnapshotRepository(newDBFromSQL(db), logger.Nop())
		err := repo.SaveSnapshot(testContext(), models.ScopePrivate, contacts)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBeginningTransaction)
	})

	t.Run("error: insert fails and transaction rolls back", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contact_snapshot")).
			WithArgs(string(models.ScopePrivate)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO contact_snapshot")).
			WillReturnError(errors.New("constraint failed"))
		mock.ExpectRollback()

		repo := NewSnapshotRepository(newDBFromSQL(db), logger.Nop())
		err := repo.SaveSnapshot(testContext(), models.ScopePrivate, contacts)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: commit fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM contact_snapshot")).
			WithArgs(string(models.ScopePrivate)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO contact_snapshot")).
			WillReturnResult(sqlmock.NewResult(2, 2))
		mock.ExpectCommit().WillReturnError(errors.New("disk full"))

		repo := NewSnapshotRepository(newDBFromSQL(db), logger.Nop())
		err := repo.SaveSnapshot(testContext(), models.ScopePrivate, contacts)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCommitingTransaction)
	})
}

// ── GetSnapshot ─────────────────────────────────────────────────────────────

func TestSnapshotRepository_GetSnapshot(t *testing.T) {
	ada := snapshotContact("c-1", "Ada", "+1-555-0100")
	grace := snapshotContact("c-2", "Grace", "+1-555-0101")

	t.Run("success: rows restored with full record", func(t *testing.T) {
		db, mock := newTestDB(t)
		rows := sqlmock.NewRows(snapshotColumns).
			AddRow(string(models.ScopePrivate), ada.ID, ada.Name, ada.PhoneNumber, mustJSON(t, ada.Record)).
			AddRow(string(models.ScopePrivate), grace.ID, grace.Name, grace.PhoneNumber, mustJSON(t, grace.Record))
		mock.ExpectQuery(regexp.QuoteMeta(selectSnapshotSQL)).
			WithArgs(string(models.ScopePrivate)).
			WillReturnRows(rows)

		repo := NewSnapshotRepository(newDBFromSQL(db), logger.Nop())
		got, err := repo.GetSnapshot(testContext(), models.ScopePrivate)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, ada.Name, got[0].Name)
		assert.Equal(t, ada.Record.RecordID, got[0].Record.RecordID)
		assert.Equal(t, grace.PhoneNumber, got[1].PhoneNumber)
	})

	t.Run("success: empty scope yields empty list", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectSnapshotSQL)).
			WithArgs(string(models.ScopeShared)).
			WillReturnRows(sqlmock.NewRows(snapshotColumns))

		repo := NewSnapshotRepository(newDBFromSQL(db), logger.Nop())
		got, err := repo.GetSnapshot(testContext(), models.ScopeShared)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("success: undecodable record dropped, rest kept", func(t *testing.T) {
		db, mock := newTestDB(t)
		rows := sqlmock.NewRows(snapshotColumns).
			AddRow(string(models.ScopePrivate), "c-bad", "Broken", "555", "{not json").
			AddRow(string(models.ScopePrivate), ada.ID, ada.Name, ada.PhoneNumber, mustJSON(t, ada.Record))
		mock.ExpectQuery(regexp.QuoteMeta(selectSnapshotSQL)).
			WithArgs(string(models.ScopePrivate)).
			WillReturnRows(rows)

		repo := NewSnapshotRepository(newDBFromSQL(db), logger.Nop())
		got, err := repo.GetSnapshot(testContext(), models.ScopePrivate)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, ada.ID, got[0].ID)
	})

	t.Run("error: query fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectSnapshotSQL)).
			WithArgs(string(models.ScopePrivate)).
			WillReturnError(errors.New("disk I/O error"))

		repo := NewSnapshotRepository(newDBFromSQL(db), logger.Nop())
		_, err := repo.GetSnapshot(testContext(), models.ScopePrivate)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}
