package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyContactName  = errors.New("contact name is required")
	ErrEmptyPhoneNumber  = errors.New("phone number is required")
	ErrInvalidPhoneShape = errors.New("phone number has an invalid shape")
	ErrNameTooLong       = errors.New("contact name is too long")
)
