package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contact-share/internal/adapter"
	"github.com/MKhiriev/go-contact-share/internal/logger"
	"github.com/MKhiriev/go-contact-share/internal/store"
	"github.com/MKhiriev/go-contact-share/models"
)

// zoneCreatedFlag is the local flag key marking that the contact zone has
// been provisioned on the backend.
const zoneCreatedFlag = "contact_zone_created"

type provisionService struct {
	flags       store.FlagRepository
	recordStore adapter.RecordStore
	logger      *logger.Logger
}

func NewClientProvisionService(flags store.FlagRepository, recordStore adapter.RecordStore, logger *logger.Logger) ClientProvisionService {
	return &provisionService{flags: flags, recordStore: recordStore, logger: logger}
}

// EnsureContactZone implements ClientProvisionService. The flag is only set
// after the backend confirmed the zone, so a failed attempt is retried on the
// next call.
func (p *provisionService) EnsureContactZone(ctx context.Context) error {
	log := logger.FromContext(ctx)

	created, err := p.flags.GetFlag(ctx, zoneCreatedFlag)
	if err != nil {
		return fmt.Errorf("read zone flag: %w", err)
	}
	if created {
		log.Debug().
			Str("func", "provisionService.EnsureContactZone").
			Msg("contact zone already provisioned, skipping")
		return nil
	}

	if err = p.recordStore.CreateZone(ctx, models.ContactZoneID); err != nil {
		if !errors.Is(err, adapter.ErrZoneExists) {
			return fmt.Errorf("create contact zone: %w", err)
		}
		log.Debug().
			Str("func", "provisionService.EnsureContactZone").
			Msg("contact zone already exists on backend")
	}

	if err = p.flags.SetFlag(ctx, zoneCreatedFlag, true); err != nil {
		return fmt.Errorf("persist zone flag: %w", err)
	}

	log.Info().
		Str("func", "provisionService.EnsureContactZone").
		Str("zone_id", models.ContactZoneID).
		Msg("contact zone provisioned")
	return nil
}
