package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-share/internal/adapter"
	"github.com/MKhiriev/go-contact-share/internal/logger"
	"github.com/MKhiriev/go-contact-share/internal/utils"
	"github.com/MKhiriev/go-contact-share/models"
)

type contactService struct {
	recordStore adapter.RecordStore
	ids         *utils.UUIDGenerator
	logger      *logger.Logger
}

func NewClientContactService(recordStore adapter.RecordStore, ids *utils.UUIDGenerator, logger *logger.Logger) ClientContactService {
	return &contactService{recordStore: recordStore, ids: ids, logger: logger}
}

// AddContact implements ClientContactService. Input is saved as given:
// trimming and empty-field checks live in the presentation layer. The
// overwrite-all save policy makes a retry with the same identifier harmless.
// The returned contact is the local echo of what was saved; the application
// state does not include it until a refresh runs.
func (c *contactService) AddContact(ctx context.Context, name, phoneNumber string) (models.Contact, error) {
	now := time.Now().UTC()
	contact := models.Contact{
		ID:          c.ids.Generate(),
		Name:        name,
		PhoneNumber: phoneNumber,
	}
	contact.Record = models.Record{
		RecordID: contact.ID,
		ZoneID:   models.ContactZoneID,
		Type:     models.RecordTypeContact,
		Fields: map[string]any{
			models.FieldName:        name,
			models.FieldPhoneNumber: phoneNumber,
		},
		CreatedAt: &now,
		UpdatedAt: &now,
	}

	if err := c.recordStore.SaveRecord(ctx, contact.Record, models.SavePolicyOverwriteAll); err != nil {
		return models.Contact{}, fmt.Errorf("save contact record: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "contactService.AddContact").
		Str("contact_id", contact.ID).
		Msg("contact saved")
	return contact, nil
}
