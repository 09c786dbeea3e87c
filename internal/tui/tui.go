// Package tui implements the terminal user interface of the contact share
// client on bubbletea. The interface is a single program with four screens:
// the combined contact list, the add-contact form, the share view with the
// invite link, and the join form for accepting an invite token.
package tui

import (
	"context"

	"github.com/MKhiriev/go-contact-share/internal/logger"
	"github.com/MKhiriev/go-contact-share/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// MainLoop runs the interface until the user quits or the program fails.
// A user-initiated quit returns [ErrUserQuit].
func (t *TUI) MainLoop(ctx context.Context) error {
	model := newAppModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	return result.err
}
