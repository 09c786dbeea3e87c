package tui

import (
	"github.com/MKhiriev/go-contact-share/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type shareModel struct {
	contactName string
	share       models.Share
	container   models.Container
	resolving   bool
	spinner     spinner.Model
	status      string
}

func newShareModel() shareModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return shareModel{spinner: s}
}

func (m shareModel) View() string {
	if m.resolving {
		return m.spinner.View() + " Готовим приглашение..."
	}

	out := titleStyle.Render("Поделиться: "+m.contactName) + "\n\n"
	out += "Название:  " + m.share.Title + "\n"
	out += "Контейнер: " + m.container.ID + "\n"
	out += "Ссылка:    " + m.share.URL + "\n"

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("c скопировать ссылку  esc назад")
	return out
}
