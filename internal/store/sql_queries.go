// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-contact-share/models"
)

// Table names of the local client database.
const (
	flagsTable    = "app_flags"
	snapshotTable = "contact_snapshot"
)

var snapshotColumns = []string{"scope", "contact_id", "name", "phone_number", "record"}

// buildSelectFlagQuery builds the SELECT for a single flag value.
func buildSelectFlagQuery(key string) (string, []any, error) {
	query, args, err := sq.
		Select("flag_value").
		From(flagsTable).
		Where(sq.Eq{"flag_key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertFlagQuery builds the INSERT-or-UPDATE for a flag. SQLite upsert
// keeps the read-modify-write out of application code.
func buildUpsertFlagQuery(key string, value bool) (string, []any, error) {
	query, args, err := sq.
		Insert(flagsTable).
		Columns("flag_key", "flag_value").
		Values(key, value).
		Suffix("ON CONFLICT(flag_key) DO UPDATE SET flag_value = excluded.flag_value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildDeleteSnapshotQuery builds the DELETE clearing one scope's snapshot.
func buildDeleteSnapshotQuery(scope models.Scope) (string, []any, error) {
	query, args, err := sq.
		Delete(snapshotTable).
		Where(sq.Eq{"scope": string(scope)}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertSnapshotQuery builds a multi-row INSERT for one scope's contact
// list. The backing record is stored as its JSON encoding so a later load can
// restore the full opaque handle.
func buildInsertSnapshotQuery(scope models.Scope, contacts []models.Contact) (string, []any, error) {
	builder := sq.Insert(snapshotTable).Columns(snapshotColumns...)

	for _, contact := range contacts {
		payload, err := json.Marshal(contact.Record)
		if err != nil {
			return "", nil, fmt.Errorf("%w: encode record %s: %w", ErrBuildingSQLQuery, contact.ID, err)
		}
		builder = builder.Values(string(scope), contact.ID, contact.Name, contact.PhoneNumber, string(payload))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectSnapshotQuery builds the SELECT returning one scope's cached
// contact list.
func buildSelectSnapshotQuery(scope models.Scope) (string, []any, error) {
	query, args, err := sq.
		Select(snapshotColumns...).
		From(snapshotTable).
		Where(sq.Eq{"scope": string(scope)}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
