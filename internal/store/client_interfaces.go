package store

import (
	"context"

	"github.com/MKhiriev/go-contact-share/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// FlagRepository is the small persisted key-value flag store consumed for
// one-time installation markers (e.g. "contact zone created"). Callers are
// expected to serialize the read-then-write pair themselves.
type FlagRepository interface {
	GetFlag(ctx context.Context, key string) (bool, error)
	SetFlag(ctx context.Context, key string, value bool) error
}

// SnapshotRepository caches the last successfully loaded contact lists per
// scope so the UI has something to show before the first refresh completes.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, scope models.Scope, contacts []models.Contact) error
	GetSnapshot(ctx context.Context, scope models.Scope) ([]models.Contact, error)
}
