// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-contact-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validContact() models.Contact {
	return models.Contact{
		ID:          "c-1",
		Name:        "Ada Lovelace",
		PhoneNumber: "+1 (555) 010-0100",
	}
}

// ---------------------------------------------------------------------------
// TestNewContactValidator
// ---------------------------------------------------------------------------

func TestNewContactValidator(t *testing.T) {
	v := NewContactValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewContactValidator()
	ctx := context.Background()

	contact := validContact()
	assert.NoError(t, v.Validate(ctx, contact))
	assert.NoError(t, v.Validate(ctx, &contact))

	err := v.Validate(ctx, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// TestValidate_Contact
// ---------------------------------------------------------------------------

func TestValidate_Contact(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *models.Contact)
		fields  []string
		wantErr error
	}{
		{
			name:   "success: valid contact",
			mutate: func(c *models.Contact) {},
		},
		{
			name:    "error: empty name",
			mutate:  func(c *models.Contact) { c.Name = "   " },
			wantErr: ErrEmptyContactName,
		},
		{
			name:    "error: name too long",
			mutate:  func(c *models.Contact) { c.Name = strings.Repeat("x", 121) },
			wantErr: ErrNameTooLong,
		},
		{
			name:    "error: empty phone",
			mutate:  func(c *models.Contact) { c.PhoneNumber = "" },
			wantErr: ErrEmptyPhoneNumber,
		},
		{
			name:    "error: phone with letters",
			mutate:  func(c *models.Contact) { c.PhoneNumber = "call me maybe" },
			wantErr: ErrInvalidPhoneShape,
		},
		{
			name:    "error: plus sign alone",
			mutate:  func(c *models.Contact) { c.PhoneNumber = "+" },
			wantErr: ErrInvalidPhoneShape,
		},
		{
			name:   "success: digits with separators",
			mutate: func(c *models.Contact) { c.PhoneNumber = "8 800 555-35.35" },
		},
		{
			name:   "success: only name field checked",
			mutate: func(c *models.Contact) { c.PhoneNumber = "not a phone" },
			fields: []string{FieldContactName},
		},
		{
			name:    "error: unknown field",
			mutate:  func(c *models.Contact) {},
			fields:  []string{"nickname"},
			wantErr: ErrUnknownField,
		},
	}

	v := NewContactValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contact := validContact()
			tt.mutate(&contact)

			err := v.Validate(context.Background(), contact, tt.fields...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
