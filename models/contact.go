package models

import "errors"

// ErrUnmappableRecord is returned by ContactFromRecord when a remote record
// cannot be converted into a Contact (wrong type or missing required fields).
// Change aggregation drops such records instead of failing the fetch.
var ErrUnmappableRecord = errors.New("record is not mappable to a contact")

// Contact is the typed domain entity behind a single contact record.
// A Contact is an immutable value: every refetch produces new instances,
// nothing mutates one in place.
type Contact struct {
	// ID is the contact identifier, equal to the backing record identifier.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// PhoneNumber is the contact phone number.
	PhoneNumber string `json:"phone_number"`

	// Record is the opaque backing remote record. It is kept so the contact
	// can be re-saved or shared without refetching.
	Record Record `json:"record"`
}

// ContactFromRecord maps an opaque remote record into a Contact.
//
// A record maps only when its type is RecordTypeContact and both required
// string fields (name, phone number) are present. Anything else yields
// ErrUnmappableRecord.
func ContactFromRecord(record Record) (Contact, error) {
	if record.Type != RecordTypeContact {
		return Contact{}, ErrUnmappableRecord
	}

	name, ok := record.StringField(FieldName)
	if !ok {
		return Contact{}, ErrUnmappableRecord
	}
	phone, ok := record.StringField(FieldPhoneNumber)
	if !ok {
		return Contact{}, ErrUnmappableRecord
	}

	return Contact{
		ID:          record.RecordID,
		Name:        name,
		PhoneNumber: phone,
		Record:      record,
	}, nil
}

// ToRecord produces the wire record for this contact, preserving every opaque
// field of the backing record and overwriting only the well-known ones.
func (c Contact) ToRecord() Record {
	record := c.Record
	if record.Fields == nil {
		record.Fields = make(map[string]any, 2)
	}
	record.Fields[FieldName] = c.Name
	record.Fields[FieldPhoneNumber] = c.PhoneNumber
	record.Type = RecordTypeContact
	return record
}
