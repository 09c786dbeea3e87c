package models

import "errors"

// ErrNotAShareRecord is returned when a record expected to be a share turns
// out to be something else.
var ErrNotAShareRecord = errors.New("record is not a share")

// Well-known field keys of a share record.
const (
	FieldRootRecordID = "root_record_id"
	FieldShareTitle   = "title"
	FieldShareURL     = "url"
)

// Share is the handle associating a root record with the access-control/link
// object the backend minted for it. At most one Share exists per record.
type Share struct {
	// ShareID identifies the share record.
	ShareID string `json:"share_id"`

	// RootRecordID is the identifier of the record the share grants access to.
	RootRecordID string `json:"root_record_id"`

	// Title is the human-readable name participants see on the invite.
	Title string `json:"title"`

	// URL is the sharing link; opening it on another account joins the share.
	URL string `json:"url"`
}

// Container references the managed backend container a share belongs to.
// The OS-level share sheet needs it together with the share itself.
type Container struct {
	// ID is the backend container identifier.
	ID string `json:"id"`
}

// ShareFromRecord converts a fetched record into a Share.
// Returns ErrNotAShareRecord if the record type is wrong or the root record
// reference is missing.
func ShareFromRecord(record Record) (Share, error) {
	if record.Type != RecordTypeShare {
		return Share{}, ErrNotAShareRecord
	}

	rootID, ok := record.StringField(FieldRootRecordID)
	if !ok || rootID == "" {
		return Share{}, ErrNotAShareRecord
	}

	title, _ := record.StringField(FieldShareTitle)
	url, _ := record.StringField(FieldShareURL)

	return Share{
		ShareID:      record.RecordID,
		RootRecordID: rootID,
		Title:        title,
		URL:          url,
	}, nil
}

// ToRecord produces the wire record for this share in the given zone.
func (s Share) ToRecord(zoneID string) Record {
	return Record{
		RecordID: s.ShareID,
		ZoneID:   zoneID,
		Type:     RecordTypeShare,
		Fields: map[string]any{
			FieldRootRecordID: s.RootRecordID,
			FieldShareTitle:   s.Title,
			FieldShareURL:     s.URL,
		},
	}
}
