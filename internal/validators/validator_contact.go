package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-contact-share/models"
)

const (
	FieldContactName = "name"
	FieldPhoneNumber = "phone_number"
)

const maxContactNameLength = 120

// phonePattern accepts digits with the usual separators and an optional
// leading plus. The backend does not care about phone shapes, so this only
// catches obvious typos in the add form.
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()\-.]*$`)

type ContactValidator struct {
}

func NewContactValidator() Validator {
	return &ContactValidator{}
}

func (v *ContactValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Contact:
		return v.validateContact(ctx, value, fields...)
	case *models.Contact:
		return v.validateContact(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *ContactValidator) validateContact(_ context.Context, contact models.Contact, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContactName, FieldPhoneNumber}
	}

	for _, field := range fields {
		switch field {
		case FieldContactName:
			if err := v.validateName(contact.Name); err != nil {
				return err
			}
		case FieldPhoneNumber:
			if err := v.validatePhone(contact.PhoneNumber); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *ContactValidator) validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyContactName
	}
	if len(name) > maxContactNameLength {
		return ErrNameTooLong
	}
	return nil
}

func (v *ContactValidator) validatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrEmptyPhoneNumber
	}
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhoneShape
	}
	return nil
}
