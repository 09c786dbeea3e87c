package models

import "time"

// Record type discriminators stored by the backend alongside every record.
const (
	RecordTypeContact = "contact"
	RecordTypeShare   = "share"
)

// Well-known field keys of a contact record.
const (
	FieldName        = "name"
	FieldPhoneNumber = "phone_number"
)

// SavePolicy selects the conflict behaviour the backend applies when a record
// with the same identifier already exists.
type SavePolicy string

const (
	// SavePolicyOverwriteAll replaces every field of the stored record with
	// the incoming values. Last writer wins.
	SavePolicyOverwriteAll SavePolicy = "overwrite_all"

	// SavePolicyIfUnchanged asks the backend to reject the save when the
	// stored record changed since it was fetched.
	SavePolicyIfUnchanged SavePolicy = "if_unchanged"
)

// Record is the opaque wire representation of a single remote record as the
// managed record store returns it. The client never interprets Fields beyond
// the well-known keys; everything else is carried through untouched so a
// re-save does not lose data written by other clients.
type Record struct {
	// RecordID is the backend-assigned (or client-minted) record identifier,
	// unique within its zone.
	RecordID string `json:"record_id"`

	// ZoneID names the logical partition the record lives in.
	ZoneID string `json:"zone_id"`

	// Type is the record type discriminator (e.g. RecordTypeContact).
	Type string `json:"type"`

	// Fields holds the record payload as the backend stores it.
	Fields map[string]any `json:"fields"`

	// ShareID references the share record attached to this record, if any.
	ShareID *string `json:"share_id,omitempty"`

	// CreatedAt is the backend-side creation timestamp.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// UpdatedAt is the backend-side timestamp of the last modification.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// StringField returns the string value stored under key, with ok reporting
// whether the field exists and actually is a string.
func (r Record) StringField(key string) (string, bool) {
	v, exists := r.Fields[key]
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
