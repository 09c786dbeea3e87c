package service

import (
	"github.com/MKhiriev/go-contact-share/internal/adapter"
	"github.com/MKhiriev/go-contact-share/internal/config"
	"github.com/MKhiriev/go-contact-share/internal/logger"
	"github.com/MKhiriev/go-contact-share/internal/store"
	"github.com/MKhiriev/go-contact-share/internal/utils"
	"github.com/MKhiriev/go-contact-share/models"
)

type ClientServices struct {
	ProvisionService ClientProvisionService
	SyncService      ClientSyncService
	ShareService     ClientShareService
	ContactService   ClientContactService
	RefreshJob       ClientRefreshJob
}

func NewClientServices(storages *store.ClientStorages, recordStore adapter.RecordStore, appCfg config.ClientApp, log *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(recordStore, storages.Snapshots, log)
	container := models.Container{ID: appCfg.ContainerID}

	return &ClientServices{
		ProvisionService: NewClientProvisionService(storages.Flags, recordStore, log),
		SyncService:      syncSvc,
		ShareService:     NewClientShareService(recordStore, container, log),
		ContactService:   NewClientContactService(recordStore, utils.NewUUIDGenerator(), log),
		RefreshJob:       NewClientRefreshJob(syncSvc),
	}
}
