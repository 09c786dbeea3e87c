package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-share/internal/service"
	"github.com/MKhiriev/go-contact-share/internal/validators"
	"github.com/MKhiriev/go-contact-share/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenList screen = iota
	screenAdd
	screenShare
	screenJoin
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	validator     validators.Validator
	currentScreen screen

	list    listModel
	formAdd formAddModel
	share   shareModel
	join    joinModel

	err          error
	showError    bool
	errorOverlay errorOverlayModel
}

func newAppModel(ctx context.Context, services *service.ClientServices) appModel {
	m := appModel{
		ctx:           ctx,
		services:      services,
		validator:     validators.NewContactValidator(),
		currentScreen: screenList,
		list:          newListModel(),
		formAdd:       newFormAddModel(),
		share:         newShareModel(),
		join:          newJoinModel(),
	}
	m.list.setState(services.SyncService.State())
	m.list.refreshing = true
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdRefresh())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
	case refreshDoneMsg:
		m.list.refreshing = false
		m.list.setState(m.services.SyncService.State())
		if msg.err != nil {
			m.showErrorf("Сервер недоступен, списки могли устареть")
		}
		return m, nil
	case contactSavedMsg:
		m.formAdd.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenList
		m.formAdd = newFormAddModel()
		m.list.refreshing = true
		m.list.status = "Контакт сохранён"
		return m, tea.Batch(m.list.spinner.Tick, m.cmdRefresh(), cmdClearStatus())
	case shareResolvedMsg:
		m.share.resolving = false
		if msg.err != nil {
			m.currentScreen = screenList
			if errors.Is(msg.err, service.ErrInvalidRemoteShare) {
				m.showErrorf("Ссылка этого контакта повреждена на сервере")
			} else {
				m.showErrorf(msg.err.Error())
			}
			return m, nil
		}
		m.share.share = msg.share
		m.share.container = msg.container
		// Запоминаем контакт со ссылкой на share, иначе повторный resolve
		// создаст вторую share для того же контакта.
		m.list.updateContact(msg.contact)
		return m, nil
	case shareAcceptedMsg:
		m.join.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenList
		m.join = newJoinModel()
		m.list.refreshing = true
		m.list.status = "Приглашение принято"
		return m, tea.Batch(m.list.spinner.Tick, m.cmdRefresh(), cmdClearStatus())
	case copiedMsg:
		m.share.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.share.status = ""
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenAdd:
		return m.updateAdd(msg)
	case screenShare:
		return m.updateShare(msg)
	case screenJoin:
		return m.updateJoin(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View()
	case screenAdd:
		body = m.formAdd.View()
	case screenShare:
		body = m.share.View()
	case screenJoin:
		body = m.join.View()
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.list.idx > 0 {
				m.list.idx--
			}
		case key.Matches(msg, keys.down):
			if m.list.idx < len(m.list.entries)-1 {
				m.list.idx++
			}
		case key.Matches(msg, keys.add):
			m.formAdd = newFormAddModel()
			m.currentScreen = screenAdd
		case key.Matches(msg, keys.refresh):
			if m.list.refreshing {
				return m, nil
			}
			m.list.refreshing = true
			return m, tea.Batch(m.list.spinner.Tick, m.cmdRefresh())
		case key.Matches(msg, keys.share):
			entry, ok := m.list.current()
			if !ok {
				return m, nil
			}
			if entry.shared {
				m.showErrorf("Поделиться можно только своим контактом")
				return m, nil
			}
			m.share = newShareModel()
			m.share.contactName = entry.contact.Name
			m.share.resolving = true
			m.currentScreen = screenShare
			return m, tea.Batch(m.share.spinner.Tick, m.cmdResolveShare(entry.contact))
		case key.Matches(msg, keys.join):
			m.join = newJoinModel()
			m.currentScreen = screenJoin
		case key.Matches(msg, keys.quit):
			m.err = ErrUserQuit
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.list.refreshing {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.formAdd = focusNextAdd(m.formAdd)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.formAdd = focusPrevAdd(m.formAdd)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.formAdd.submitting {
				return m, nil
			}
			draft := models.Contact{Name: m.formAdd.name(), PhoneNumber: m.formAdd.phone()}
			if err := m.validator.Validate(m.ctx, draft); err != nil {
				m.showErrorf(validationMessage(err))
				return m, nil
			}
			m.formAdd.submitting = true
			return m, m.cmdAddContact(draft.Name, draft.PhoneNumber)
		}
	}

	var cmd tea.Cmd
	m.formAdd.inputs[m.formAdd.focus], cmd = m.formAdd.inputs[m.formAdd.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateShare(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(msg, keys.copy):
			if m.share.resolving || m.share.share.URL == "" {
				return m, nil
			}
			return m, cmdCopyToClipboard(m.share.share.URL)
		}
	case spinner.TickMsg:
		if m.share.resolving {
			var cmd tea.Cmd
			m.share.spinner, cmd = m.share.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateJoin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.join.submitting {
				return m, nil
			}
			m.join.submitting = true
			return m, m.cmdAcceptShare(m.join.input.Value())
		}
	}

	var cmd tea.Cmd
	m.join.input, cmd = m.join.input.Update(msg)
	return m, cmd
}

func (m appModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	svc := m.services.SyncService
	return func() tea.Msg {
		err := svc.Refresh(ctx)
		return refreshDoneMsg{err: err}
	}
}

func (m appModel) cmdAddContact(name, phone string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ContactService
	return func() tea.Msg {
		_, err := svc.AddContact(ctx, name, phone)
		return contactSavedMsg{err: err}
	}
}

func (m appModel) cmdResolveShare(contact models.Contact) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ShareService
	return func() tea.Msg {
		updated, share, container, err := svc.ResolveShare(ctx, contact)
		return shareResolvedMsg{contact: updated, share: share, container: container, err: err}
	}
}

func (m appModel) cmdAcceptShare(token string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ShareService
	return func() tea.Msg {
		resp, err := svc.AcceptShare(ctx, token)
		return shareAcceptedMsg{resp: resp, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return shareResolvedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, validators.ErrEmptyContactName):
		return "Имя обязательно"
	case errors.Is(err, validators.ErrEmptyPhoneNumber):
		return "Телефон обязателен"
	case errors.Is(err, validators.ErrInvalidPhoneShape):
		return "Телефон выглядит неправильно"
	case errors.Is(err, validators.ErrNameTooLong):
		return "Имя слишком длинное"
	default:
		return err.Error()
	}
}

func focusNextAdd(m formAddModel) formAddModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevAdd(m formAddModel) formAddModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
