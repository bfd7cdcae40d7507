package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hzafar/tripmark/internal/app"
	"github.com/hzafar/tripmark/internal/travellog"
)

const (
	fieldFrom = iota
	fieldTo
	fieldDistance
	fieldDuration
	fieldMode
	fieldCount
)

// entryForm collects the travel-log fields for a clicked location. The mode
// row cycles through the travel modes instead of accepting free text.
type entryForm struct {
	inputs []textinput.Model
	focus  int
	mode   int
}

func newEntryForm() *entryForm {
	labels := []string{"From", "To", "Distance (km)", "Duration (hr)"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = label
		in.CharLimit = 64
		inputs[i] = in
	}
	inputs[fieldDistance].CharLimit = 12
	inputs[fieldDuration].CharLimit = 12

	f := &entryForm{inputs: inputs}
	f.setFocus(fieldFrom)
	return f
}

func (f *entryForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.mode = 0
	f.setFocus(fieldFrom)
}

func (f *entryForm) setFocus(index int) {
	f.focus = index
	for i := range f.inputs {
		if i == index {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f *entryForm) next() {
	f.setFocusWrapped(f.focus + 1)
}

func (f *entryForm) prev() {
	f.setFocusWrapped(f.focus - 1)
}

func (f *entryForm) setFocusWrapped(index int) {
	index = (index + fieldCount) % fieldCount
	if index == fieldMode {
		f.focus = fieldMode
		for i := range f.inputs {
			f.inputs[i].Blur()
		}
		return
	}
	f.setFocus(index)
}

func (f *entryForm) cycleMode(delta int) {
	modes := travellog.Modes()
	f.mode = (f.mode + delta + len(modes)) % len(modes)
}

// setDestination fills the To field from a resolved pre-fill unless the user
// already typed something.
func (f *entryForm) setDestination(name string) {
	if f.inputs[fieldTo].Value() != "" {
		return
	}
	f.inputs[fieldTo].SetValue(name)
}

// clearNumeric wipes the distance and duration fields after a validation
// failure, keeping the place names for correction.
func (f *entryForm) clearNumeric() {
	f.inputs[fieldDistance].SetValue("")
	f.inputs[fieldDuration].SetValue("")
	f.setFocus(fieldDistance)
}

func (f *entryForm) update(msg tea.Msg) tea.Cmd {
	if f.focus == fieldMode {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *entryForm) values() app.FormInput {
	return app.FormInput{
		From:     f.inputs[fieldFrom].Value(),
		To:       f.inputs[fieldTo].Value(),
		Distance: f.inputs[fieldDistance].Value(),
		Duration: f.inputs[fieldDuration].Value(),
		Mode:     travellog.Modes()[f.mode].String(),
	}
}
