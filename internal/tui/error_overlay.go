package tui

// errorOverlayModel is the modal error box drawn over whichever screen is
// active. The app model owns its visibility and dismisses it on enter/esc.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render("Ошибка\n\n" + m.message + "\n\nenter / esc закрыть")
}
