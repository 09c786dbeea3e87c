package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type formAddModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormAddModel() formAddModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].Placeholder = "Имя"
	inputs[1].Placeholder = "+7 900 000-00-00"
	inputs[0].Focus()

	return formAddModel{inputs: inputs}
}

func (m formAddModel) name() string  { return strings.TrimSpace(m.inputs[0].Value()) }
func (m formAddModel) phone() string { return strings.TrimSpace(m.inputs[1].Value()) }

func (m formAddModel) View() string {
	out := titleStyle.Render("Новый контакт") + "\n\n"
	out += "Имя:     [" + m.inputs[0].View() + "]\n"
	out += "Телефон: [" + m.inputs[1].View() + "]\n\n"
	out += helpStyle.Render("esc отмена  tab следующее поле  enter сохранить")
	return out
}
