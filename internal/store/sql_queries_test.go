// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-contact-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectFlagQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildSelectFlagQuery("contact_zone_created")
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, "contact_zone_created", args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "flag_value")
	require.Contains(t, q, "from app_flags")
	require.Contains(t, q, "where")
	require.Contains(t, q, "flag_key")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
}

func Test_buildUpsertFlagQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildUpsertFlagQuery("contact_zone_created", true)
	require.NoError(t, err)

	require.Len(t, args, 2)
	assert.Equal(t, "contact_zone_created", args[0])
	assert.Equal(t, true, args[1])

	q := strings.ToLower(query)

	require.Contains(t, q, "insert into app_flags")
	require.Contains(t, q, "flag_key")
	require.Contains(t, q, "flag_value")
	require.Contains(t, q, "on conflict(flag_key)")
	require.Contains(t, q, "do update set")
	require.Contains(t, q, "excluded.flag_value")
}

func Test_buildDeleteSnapshotQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildDeleteSnapshotQuery(models.ScopeShared)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, string(models.ScopeShared), args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "delete from contact_snapshot")
	require.Contains(t, q, "where")
	require.Contains(t, q, "scope")
}

func Test_buildInsertSnapshotQuery(t *testing.T) {
	tests := []struct {
		name       string
		contacts   []models.Contact
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name: "success: single contact",
			contacts: []models.Contact{
				{ID: "c-1", Name: "Ada", PhoneNumber: "+1-555-0100"},
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				assert.Contains(t, q, "insert into contact_snapshot")
				for _, col := range snapshotColumns {
					assert.True(t, strings.Contains(q, col),
						"query should contain column %q", col)
				}

				// scope, contact_id, name, phone_number, record
				require.Len(t, args, 5)
				assert.Equal(t, string(models.ScopePrivate), args[0])
				assert.Equal(t, "c-1", args[1])
				assert.Equal(t, "Ada", args[2])
				assert.Equal(t, "+1-555-0100", args[3])
			},
		},
		{
			name: "success: several contacts produce one multi-row insert",
			contacts: []models.Contact{
				{ID: "c-1", Name: "Ada", PhoneNumber: "+1-555-0100"},
				{ID: "c-2", Name: "Grace", PhoneNumber: "+1-555-0101"},
				{ID: "c-3", Name: "Edsger", PhoneNumber: "+31-555-0102"},
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Len(t, args, 15)
				assert.Equal(t, "c-1", args[1])
				assert.Equal(t, "c-2", args[6])
				assert.Equal(t, "c-3", args[11])

				// one VALUES group per contact
				assert.Equal(t, 3, strings.Count(query, "(?,?,?,?,?)"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildInsertSnapshotQuery(models.ScopePrivate, tt.contacts)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildInsertSnapshotQuery_RecordEncodedAsJSON(t *testing.T) {
	contact := models.Contact{
		ID:          "c-1",
		Name:        "Ada",
		PhoneNumber: "+1-555-0100",
		Record: models.Record{
			RecordID: "c-1",
			ZoneID:   models.ContactZoneID,
			Type:     models.RecordTypeContact,
			Fields: map[string]any{
				models.FieldName:        "Ada",
				models.FieldPhoneNumber: "+1-555-0100",
				"note":                  "opaque",
			},
		},
	}

	_, args, err := buildInsertSnapshotQuery(models.ScopePrivate, []models.Contact{contact})
	require.NoError(t, err)
	require.Len(t, args, 5)

	payload, ok := args[4].(string)
	require.True(t, ok, "record argument should be a JSON string")
	assert.Contains(t, payload, `"record_id":"c-1"`)
	assert.Contains(t, payload, `"note":"opaque"`)
}

func Test_buildSelectSnapshotQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildSelectSnapshotQuery(models.ScopePrivate)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, string(models.ScopePrivate), args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from contact_snapshot")
	require.Contains(t, q, "where")
	require.Contains(t, q, "scope")
	for _, col := range snapshotColumns {
		require.Contains(t, q, col)
	}
}
