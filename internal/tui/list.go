package tui

import (
	"fmt"

	"github.com/MKhiriev/go-contact-share/models"
	"github.com/charmbracelet/bubbles/spinner"
)

// contactEntry is one row of the combined list: a contact plus the scope it
// came from.
type contactEntry struct {
	contact models.Contact
	shared  bool
}

type listModel struct {
	entries    []contactEntry
	idx        int
	loading    bool
	refreshing bool
	spinner    spinner.Model
	status     string
	lastErr    string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

// setState rebuilds the rows from the application state: private contacts
// first, then shared ones.
func (m *listModel) setState(state models.SyncState) {
	switch state.Phase {
	case models.PhaseLoading:
		m.loading = true
		return
	case models.PhaseError:
		m.loading = false
		m.lastErr = state.Reason
		return
	}

	m.loading = false
	m.lastErr = ""
	m.entries = m.entries[:0]
	for _, contact := range state.Private {
		m.entries = append(m.entries, contactEntry{contact: contact})
	}
	for _, contact := range state.Shared {
		m.entries = append(m.entries, contactEntry{contact: contact, shared: true})
	}

	if m.idx >= len(m.entries) {
		m.idx = len(m.entries) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// updateContact replaces the stored contact whose record id matches, keeping
// the row's scope. Used when an action returns a newer copy of the record.
func (m *listModel) updateContact(contact models.Contact) {
	for i := range m.entries {
		if m.entries[i].contact.Record.RecordID == contact.Record.RecordID {
			m.entries[i].contact = contact
			return
		}
	}
}

func (m listModel) current() (contactEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return contactEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m listModel) View() string {
	header := titleStyle.Render("Контакты")
	if m.refreshing {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	switch {
	case m.loading:
		out += "Загрузка...\n"
	case len(m.entries) == 0:
		out += "Нет контактов\n"
	default:
		lastShared := false
		for i, entry := range m.entries {
			if i == 0 || entry.shared != lastShared {
				out += sectionStyle.Render(sectionTitle(entry.shared)) + "\n"
				lastShared = entry.shared
			}
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s  %s\n", cursor, entry.contact.Name, entry.contact.PhoneNumber)
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.lastErr != "" {
		out += "\nОшибка: " + m.lastErr + "\n"
	}

	out += "\n" + helpStyle.Render("a новый  r обновить  s поделиться  i принять приглашение  q выход")
	return out
}

func sectionTitle(shared bool) string {
	if shared {
		return "Доступные мне"
	}
	return "Мои контакты"
}
