package service

import "errors"

var (
	// ErrInvalidRemoteShare marks a contact whose record references a share
	// that cannot be fetched or that does not point back at the contact.
	ErrInvalidRemoteShare = errors.New("remote share is in an invalid state")

	// ErrShareNotAccepted reports a share-join attempt the backend rejected.
	ErrShareNotAccepted = errors.New("share was not accepted")

	// ErrValidationNoShareToken rejects a join attempt with a blank token.
	ErrValidationNoShareToken = errors.New("no share token provided")
)
