package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type joinModel struct {
	input      textinput.Model
	submitting bool
}

func newJoinModel() joinModel {
	input := textinput.New()
	input.Width = 60
	input.Placeholder = "токен приглашения"
	input.Focus()
	return joinModel{input: input}
}

func (m joinModel) View() string {
	out := titleStyle.Render("Принять приглашение") + "\n\n"
	out += "Вставьте токен из полученной ссылки:\n"
	out += "[" + m.input.View() + "]\n\n"
	out += helpStyle.Render("esc отмена  enter принять")
	return out
}
