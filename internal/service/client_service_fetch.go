// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-contact-share/internal/adapter"
	"github.com/MKhiriev/go-contact-share/internal/logger"
	"github.com/MKhiriev/go-contact-share/models"
)

// changeFetcher walks zone change feeds and turns the records into contacts.
//
// Zones are fetched concurrently; within one zone the feed is paged
// sequentially because each page's cursor comes from the previous response.
// The first zone failure cancels the remaining zones and is reported as the
// result. Records that do not map to a contact are dropped, not reported.
type changeFetcher struct {
	recordStore adapter.RecordStore
}

func newChangeFetcher(recordStore adapter.RecordStore) *changeFetcher {
	return &changeFetcher{recordStore: recordStore}
}

// fetchZones returns the union of the contacts of all given zones in scope.
// Order across zones is not defined. A nil or empty zone list yields an empty
// contact list without any backend call.
func (f *changeFetcher) fetchZones(ctx context.Context, scope models.Scope, zoneIDs []string) ([]models.Contact, error) {
	if len(zoneIDs) == 0 {
		return []models.Contact{}, nil
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		firstErr error
		contacts = make([]models.Contact, 0, 16)
		wg       sync.WaitGroup
	)

	for _, zoneID := range zoneIDs {
		wg.Add(1)
		go func(zoneID string) {
			defer wg.Done()

			zoneContacts, err := f.fetchZone(fetchCtx, scope, zoneID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
					cancel()
				}
				return
			}
			contacts = append(contacts, zoneContacts...)
		}(zoneID)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return contacts, nil
}

// fetchZone drains one zone's change feed from the beginning and maps the
// records into contacts.
func (f *changeFetcher) fetchZone(ctx context.Context, scope models.Scope, zoneID string) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	var (
		contacts []models.Contact
		cursor   models.Cursor
	)

	for {
		page, err := f.recordStore.FetchChangePage(ctx, scope, zoneID, cursor)
		if err != nil {
			return nil, fmt.Errorf("fetch change page for zone %s: %w", zoneID, err)
		}

		for _, record := range page.Records {
			contact, mapErr := models.ContactFromRecord(record)
			if mapErr != nil {
				if errors.Is(mapErr, models.ErrUnmappableRecord) {
					log.Debug().
						Str("func", "changeFetcher.fetchZone").
						Str("zone_id", zoneID).
						Str("record_id", record.RecordID).
						Msg("dropping record that does not map to a contact")
					continue
				}
				return nil, mapErr
			}
			contacts = append(contacts, contact)
		}

		if !page.MoreComing {
			return contacts, nil
		}
		cursor = page.NextCursor
	}
}
