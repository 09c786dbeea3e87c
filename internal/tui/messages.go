package tui

import (
	"github.com/MKhiriev/go-contact-share/models"
)

type refreshDoneMsg struct {
	err error
}

type contactSavedMsg struct {
	err error
}

type shareResolvedMsg struct {
	contact   models.Contact
	share     models.Share
	container models.Container
	err       error
}

type shareAcceptedMsg struct {
	resp models.AcceptShareResponse
	err  error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
