package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-contact-share/internal/adapter"
	"github.com/MKhiriev/go-contact-share/internal/logger"
	"github.com/MKhiriev/go-contact-share/models"
)

type shareService struct {
	recordStore adapter.RecordStore
	container   models.Container
	logger      *logger.Logger
}

func NewClientShareService(recordStore adapter.RecordStore, container models.Container, logger *logger.Logger) ClientShareService {
	return &shareService{recordStore: recordStore, container: container, logger: logger}
}

// ResolveShare implements ClientShareService.
//
// A contact whose record already references a share resolves to that share:
// the reference is fetched and checked against the contact. Any failure on
// that path means the remote share is unusable and the caller gets
// [ErrInvalidRemoteShare]; a new share is never minted for such a contact.
//
// A contact without a reference gets a fresh share titled after the contact.
// The updated root record and the share record are saved in one atomic
// multi-record write so the association is either fully durable or absent.
// The contact returned to the caller carries the new share reference, so
// resolving it again follows the existing-share path and yields the same
// share id.
func (s *shareService) ResolveShare(ctx context.Context, contact models.Contact) (models.Contact, models.Share, models.Container, error) {
	if contact.Record.ShareID != nil {
		share, err := s.fetchExistingShare(ctx, contact)
		if err != nil {
			return models.Contact{}, models.Share{}, models.Container{}, err
		}
		return contact, share, s.container, nil
	}

	contact, share, err := s.createShare(ctx, contact)
	if err != nil {
		return models.Contact{}, models.Share{}, models.Container{}, err
	}
	return contact, share, s.container, nil
}

func (s *shareService) fetchExistingShare(ctx context.Context, contact models.Contact) (models.Share, error) {
	record, err := s.recordStore.FetchRecord(ctx, *contact.Record.ShareID)
	if err != nil {
		return models.Share{}, fmt.Errorf("%w: fetch share record: %w", ErrInvalidRemoteShare, err)
	}

	share, err := models.ShareFromRecord(record)
	if err != nil {
		return models.Share{}, fmt.Errorf("%w: %w", ErrInvalidRemoteShare, err)
	}
	if share.RootRecordID != contact.Record.RecordID {
		return models.Share{}, fmt.Errorf("%w: share does not reference this contact", ErrInvalidRemoteShare)
	}

	return share, nil
}

func (s *shareService) createShare(ctx context.Context, contact models.Contact) (models.Contact, models.Share, error) {
	log := logger.FromContext(ctx)

	share, err := s.recordStore.CreateShare(ctx, contact.Record.RecordID, shareTitle(contact))
	if err != nil {
		return models.Contact{}, models.Share{}, fmt.Errorf("create share: %w", err)
	}

	contact.Record.ShareID = &share.ShareID

	records := []models.Record{contact.Record, share.ToRecord(contact.Record.ZoneID)}
	if err = s.recordStore.SaveRecords(ctx, records, nil); err != nil {
		return models.Contact{}, models.Share{}, fmt.Errorf("save share association: %w", err)
	}

	log.Info().
		Str("func", "shareService.createShare").
		Str("contact_id", contact.ID).
		Str("share_id", share.ShareID).
		Msg("share created for contact")
	return contact, share, nil
}

// AcceptShare implements ClientShareService.
func (s *shareService) AcceptShare(ctx context.Context, token string) (models.AcceptShareResponse, error) {
	if strings.TrimSpace(token) == "" {
		return models.AcceptShareResponse{}, ErrValidationNoShareToken
	}

	resp, err := s.recordStore.AcceptShare(ctx, token)
	if err != nil {
		return models.AcceptShareResponse{}, fmt.Errorf("accept share: %w", err)
	}
	if resp.Overall != models.AcceptResultOK {
		return resp, fmt.Errorf("%w: backend result %q", ErrShareNotAccepted, resp.Overall)
	}

	logger.FromContext(ctx).Info().
		Str("func", "shareService.AcceptShare").
		Str("share_id", resp.ShareID).
		Str("zone_id", resp.ZoneID).
		Msg("share accepted")
	return resp, nil
}

// shareTitle is the human-readable invite title participants see.
func shareTitle(contact models.Contact) string {
	return fmt.Sprintf("Contact: %s", contact.Name)
}
