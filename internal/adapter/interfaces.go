// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the managed record-store backend.
//
// The primary abstraction is [RecordStore], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRecordStore]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-contact-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_store_mock.go -package=mock

// RecordStore defines transport-agnostic communication with the managed
// record-store backend. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
//
// All durability, conflict resolution and share-token semantics live behind
// this interface; the client only orchestrates calls against it.
type RecordStore interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// CreateZone creates the named logical record partition. Returns
	// [ErrZoneExists] (wrapped) when the zone is already present; the backend
	// treats re-creation as a no-op, so callers may tolerate that error.
	CreateZone(ctx context.Context, zoneID string) error

	// SaveRecord persists a single record under the given save policy.
	SaveRecord(ctx context.Context, record models.Record, policy models.SavePolicy) error

	// SaveRecords persists several records and deletions as one atomic
	// multi-record write: either everything applies or nothing does.
	SaveRecords(ctx context.Context, records []models.Record, deletions []string) error

	// FetchRecord retrieves one record by identifier. Returns [ErrNotFound]
	// (wrapped) when no such record exists.
	FetchRecord(ctx context.Context, recordID string) (models.Record, error)

	// ListZones returns the identifiers of all zones visible in scope,
	// unordered.
	ListZones(ctx context.Context, scope models.Scope) ([]string, error)

	// FetchChangePage requests one page of the zone's change feed starting at
	// cursor (empty cursor means from the beginning). The returned page
	// carries the next cursor and a flag telling whether more pages follow.
	FetchChangePage(ctx context.Context, scope models.Scope, zoneID string, cursor models.Cursor) (models.ChangePage, error)

	// CreateShare mints a share object for the given root record. The
	// association only becomes durable once the root record and the share
	// record are saved together via SaveRecords.
	CreateShare(ctx context.Context, rootRecordID, title string) (models.Share, error)

	// AcceptShare joins the share carried by token on behalf of the current
	// account. Invoked when the user opens a sharing link.
	AcceptShare(ctx context.Context, token string) (models.AcceptShareResponse, error)
}
