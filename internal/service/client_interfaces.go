package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-contact-share/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientProvisionService defines the contract for one-time preparation of the
// backend record layout.
type ClientProvisionService interface {
	// EnsureContactZone creates the private contact zone exactly once per
	// installation. A locally persisted flag makes repeated calls no-ops; a
	// zone that already exists on the backend is tolerated and still marks
	// the flag. Returns an error only when creation genuinely failed, in
	// which case the flag stays unset and the next call retries.
	EnsureContactZone(ctx context.Context) error
}

// ClientSyncService defines the contract for refreshing the contact lists
// from the backend and for reading the resulting application state.
type ClientSyncService interface {
	// Refresh fetches the private and shared contact lists concurrently and
	// replaces the application state with the joined result: both lists on
	// success, the first failure otherwise. Overlapping calls are not
	// serialized; the refresh that finishes last wins.
	Refresh(ctx context.Context) error

	// State returns a copy of the current application state. Safe to call
	// from any goroutine.
	State() models.SyncState

	// PreloadSnapshot populates the state from the locally cached contact
	// lists so the UI has content before the first refresh completes. It is
	// a no-op once a refresh has finished.
	PreloadSnapshot(ctx context.Context)
}

// ClientShareService defines the contract for resolving and joining shares.
type ClientShareService interface {
	// ResolveShare returns the share associated with the contact, creating
	// one if none exists yet. A newly minted share is persisted together
	// with the updated root record in a single atomic write. The returned
	// contact carries the share reference; callers must keep it so a repeat
	// resolve reuses the same share instead of minting another. The returned
	// container identifies where the share lives; the share URL is what the
	// user hands out. Returns [ErrInvalidRemoteShare] when the contact
	// references a share that cannot be fetched or that does not point back
	// at the contact.
	ResolveShare(ctx context.Context, contact models.Contact) (models.Contact, models.Share, models.Container, error)

	// AcceptShare joins the share carried by token on behalf of the current
	// account. Returns [ErrShareNotAccepted] when the backend reports a
	// non-successful overall result. Joined records appear in the shared
	// scope after the next refresh.
	AcceptShare(ctx context.Context, token string) (models.AcceptShareResponse, error)
}

// ClientContactService defines the contract for creating contacts.
type ClientContactService interface {
	// AddContact saves a new contact with a fresh identifier to the private
	// contact zone, overwriting all fields on identifier collision. The new
	// contact becomes visible in the application state only after a
	// subsequent refresh.
	AddContact(ctx context.Context, name, phoneNumber string) (models.Contact, error)
}

// ClientRefreshJob defines the contract for a background worker that
// periodically refreshes the contact lists.
type ClientRefreshJob interface {
	// Start launches the background refresh goroutine. It refreshes every
	// interval, defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
