package adapter

import "errors"

// Sentinel errors mapped from backend responses. Match with [errors.Is].
var (
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("record not found")
	ErrZoneExists          = errors.New("zone already exists")
	ErrConflict            = errors.New("record conflict")
	ErrInternalServerError = errors.New("backend internal error")
)
