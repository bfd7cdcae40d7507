// Package ui hosts the interactive map session: a Bubble Tea program whose
// map panel doubles as the controller's map surface.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hzafar/tripmark/internal/app"
	"github.com/hzafar/tripmark/internal/geocode"
	"github.com/hzafar/tripmark/internal/locate"
	"github.com/hzafar/tripmark/internal/travellog"
)

// noticeLog buffers controller notices until the next frame.
type noticeLog struct {
	pending []string
}

// Notify implements app.Notifier.
func (n *noticeLog) Notify(message string) {
	n.pending = append(n.pending, message)
}

func (n *noticeLog) drain() []string {
	out := n.pending
	n.pending = nil
	return out
}

// ctrlEvent wraps a controller completion for the Bubble Tea loop.
type ctrlEvent struct {
	ev app.Event
}

// Model owns Bubble Tea state for the map session.
type Model struct {
	ctx   context.Context
	ctrl  *app.Controller
	panel *mapPanel
	notes *noticeLog
	form  *entryForm

	formOpen    bool
	confirmWipe bool
	selected    int

	statusLine string
	errorLine  string
}

// NewModel wires the session: the map panel is both the rendered widget and
// the controller's map surface.
func NewModel(ctx context.Context, st app.Store, resolver geocode.Resolver, locator locate.Locator) Model {
	panel := newMapPanel()
	notes := &noticeLog{}
	ctrl := app.New(ctx, st, panel, resolver, locator, notes)

	return Model{
		ctx:        ctx,
		ctrl:       ctrl,
		panel:      panel,
		notes:      notes,
		form:       newEntryForm(),
		statusLine: "Acquiring your position...",
	}
}

// Init kicks off position acquisition.
func (m Model) Init() tea.Cmd {
	return m.runTask(m.ctrl.Start())
}

func (m Model) runTask(task app.Task) tea.Cmd {
	if task == nil {
		return nil
	}
	return func() tea.Msg {
		return ctrlEvent{ev: task()}
	}
}

func (m Model) runTasks(tasks []app.Task) tea.Cmd {
	var cmds []tea.Cmd
	for _, task := range tasks {
		if cmd := m.runTask(task); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update wires session state transitions from user input and async completions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.panel.resize(msg.Width-46, msg.Height-10)
		return m, nil
	case ctrlEvent:
		return m.handleEvent(msg.ev)
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		if m.formOpen {
			return m, m.form.update(msg)
		}
		return m, nil
	}
}

func (m Model) handleEvent(ev app.Event) (tea.Model, tea.Cmd) {
	tasks := m.ctrl.Apply(ev)

	if m.formOpen {
		if name, ok := m.ctrl.ConsumePrefill(); ok {
			m.form.setDestination(name)
		}
	}
	if notices := m.notes.drain(); len(notices) > 0 {
		m.statusLine = strings.Join(notices, " ")
	}
	return m, m.runTasks(tasks)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmWipe {
		return m.handleWipeKey(msg)
	}
	if m.formOpen {
		return m.handleFormKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up":
		m.panel.moveCursor(-1, 0)
	case "down":
		m.panel.moveCursor(1, 0)
	case "left":
		m.panel.moveCursor(0, -1)
	case "right":
		m.panel.moveCursor(0, 1)
	case "+", "=":
		m.panel.zoom(0.5)
	case "-":
		m.panel.zoom(2)
	case "enter", " ":
		return m.clickCursor()
	case "j":
		m.moveSelection(1)
	case "k":
		m.moveSelection(-1)
	case "l":
		return m.locateSelected()
	case "c":
		if err := m.ctrl.LocateCurrent(); err != nil {
			m.errorLine = err.Error()
		} else {
			m.statusLine = "Back to your current location."
			m.errorLine = ""
		}
	case "d":
		return m.deleteSelected()
	case "D":
		if len(m.ctrl.Logs()) > 0 {
			m.confirmWipe = true
			m.statusLine = ""
			m.errorLine = ""
		}
	}
	return m, nil
}

func (m Model) handleWipeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmWipe = false
		if err := m.ctrl.DeleteAll(); err != nil {
			m.errorLine = err.Error()
		}
		m.selected = 0
		m.syncNotices()
	case "n", "N", "esc":
		m.confirmWipe = false
		m.statusLine = "Delete all cancelled."
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.ctrl.CancelForm()
		m.formOpen = false
		m.statusLine = "Entry cancelled."
		m.errorLine = ""
		return m, nil
	case "enter":
		return m.submitForm()
	case "tab", "down":
		m.form.next()
		return m, nil
	case "shift+tab", "up":
		m.form.prev()
		return m, nil
	case "left":
		if m.form.focus == fieldMode {
			m.form.cycleMode(-1)
			return m, nil
		}
	case "right":
		if m.form.focus == fieldMode {
			m.form.cycleMode(1)
			return m, nil
		}
	}
	return m, m.form.update(msg)
}

func (m Model) clickCursor() (tea.Model, tea.Cmd) {
	if !m.ctrl.MapReady() {
		m.errorLine = "The map is unavailable this session."
		return m, nil
	}
	lat, lng := m.panel.cursorLatLng()
	task := m.ctrl.ClickLocation(lat, lng)
	m.form.reset()
	m.formOpen = true
	m.statusLine = fmt.Sprintf("New travel log at %.4f, %.4f", lat, lng)
	m.errorLine = ""
	return m, tea.Batch(m.runTask(task), textinput.Blink)
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	log, task, err := m.ctrl.Submit(m.form.values())
	if err != nil {
		if travellog.IsValidation(err) {
			m.errorLine = "Please enter positive numbers and fill every field."
			m.form.clearNumeric()
		} else {
			m.errorLine = err.Error()
		}
		return m, nil
	}

	m.formOpen = false
	m.selected = len(m.ctrl.Logs()) - 1
	m.statusLine = fmt.Sprintf("Logged travel to %s.", log.To)
	m.errorLine = ""
	m.syncNotices()
	return m, m.runTask(task)
}

func (m *Model) moveSelection(delta int) {
	logs := m.ctrl.Logs()
	if len(logs) == 0 {
		return
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= len(logs) {
		m.selected = len(logs) - 1
	}
}

func (m Model) locateSelected() (tea.Model, tea.Cmd) {
	logs := m.ctrl.Logs()
	if len(logs) == 0 || m.selected >= len(logs) {
		return m, nil
	}
	log, err := m.ctrl.Locate(logs[m.selected].ID)
	if err != nil {
		m.errorLine = err.Error()
		return m, nil
	}
	m.statusLine = fmt.Sprintf("Centered on %s.", log.To)
	m.errorLine = ""
	return m, nil
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	logs := m.ctrl.Logs()
	if len(logs) == 0 || m.selected >= len(logs) {
		return m, nil
	}
	if _, err := m.ctrl.DeleteOne(logs[m.selected].ID); err != nil {
		m.errorLine = err.Error()
		return m, nil
	}
	if remaining := len(m.ctrl.Logs()); m.selected >= remaining && remaining > 0 {
		m.selected = remaining - 1
	}
	m.errorLine = ""
	m.syncNotices()
	return m, nil
}

// syncNotices pulls buffered controller notices into the status line.
func (m *Model) syncNotices() {
	if notices := m.notes.drain(); len(notices) > 0 {
		m.statusLine = strings.Join(notices, " ")
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the frame.
func (m Model) View() string {
	var sections []string
	sections = append(sections, titleStyle.Render("tripmark · travel journal"))

	if !m.ctrl.MapReady() {
		if m.ctrl.State() == app.StateAwaitingPosition {
			sections = append(sections, "Acquiring your position...")
		} else {
			sections = append(sections, errStyle.Render("No map this session."), m.statusLine)
		}
		return strings.Join(sections, "\n")
	}

	left := boxStyle.Render(m.panel.view(m.selectedID()))
	right := boxStyle.Render(m.logListView())
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))

	if popup, ok := m.panel.markerAtCursor(); ok {
		sections = append(sections, labelStyle.Render("▸ ")+popup)
	}

	if m.errorLine != "" {
		sections = append(sections, errStyle.Render("! "+m.errorLine))
	} else if m.statusLine != "" {
		sections = append(sections, m.statusLine)
	}

	switch {
	case m.confirmWipe:
		sections = append(sections, errStyle.Render("Delete ALL travel logs? (y/n)"))
	case m.formOpen:
		sections = append(sections, boxStyle.Render(m.formView()))
	default:
		sections = append(sections, helpStyle.Render("arrows move · enter drop pin · +/- zoom · j/k select · l locate · c current · d delete · D delete all · q quit"))
	}

	return strings.Join(sections, "\n")
}

func (m Model) selectedID() int64 {
	logs := m.ctrl.Logs()
	if len(logs) == 0 || m.selected >= len(logs) {
		return 0
	}
	return logs[m.selected].ID
}

func (m Model) logListView() string {
	logs := m.ctrl.Logs()
	if len(logs) == 0 {
		return "(no travel logs yet)\n\nDrop a pin on the map\nto record a trip."
	}

	var b strings.Builder
	for i, log := range logs {
		cursor := "  "
		if i == m.selected {
			cursor = selectStyle.Render("> ")
		}
		b.WriteString(cursor)
		b.WriteString(log.Description)
		b.WriteByte('\n')
		detail := fmt.Sprintf("  %s → %s · %s · %g km · %g hr",
			log.From, log.To, log.Mode.Label(), log.Distance, log.Duration)
		b.WriteString(labelStyle.Render(detail))
		if i < len(logs)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) formView() string {
	labels := []string{"From", "To", "Distance (km)", "Duration (hr)"}

	var b strings.Builder
	b.WriteString("New travel log (tab next · enter save · esc cancel)\n")
	for i, label := range labels {
		marker := "  "
		if m.form.focus == i {
			marker = selectStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%-14s %s\n", marker, label+":", m.form.inputs[i].View()))
	}

	marker := "  "
	if m.form.focus == fieldMode {
		marker = selectStyle.Render("> ")
	}
	mode := travellog.Modes()[m.form.mode]
	b.WriteString(fmt.Sprintf("%s%-14s ◂ %s ▸", marker, "Travel by:", mode.Label()))
	return b.String()
}
