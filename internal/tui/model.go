// Package tui is the terminal front end: a searchable list of item cards
// with a modal form for create and edit.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rpggio/itemboard/internal/controller"
	"github.com/rpggio/itemboard/internal/domain/item"
)

type loadedMsg struct{ err error }

type savedMsg struct{ err error }

type deletedMsg struct{ err error }

// Model is the list screen.
type Model struct {
	ctx   context.Context
	ctrl  *controller.Controller
	theme Theme

	search    textinput.Model
	searching bool
	form      *form
	spinner   spinner.Model
	cursor    int

	width  int
	height int
}

// New returns the list screen bound to ctrl. ctx bounds every remote call.
func New(ctx context.Context, ctrl *controller.Controller, theme Theme) Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search items..."
	search.Cursor.SetMode(cursor.CursorStatic)

	return Model{
		ctx:     ctx,
		ctrl:    ctrl,
		theme:   theme,
		search:  search,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:   80,
		height:  24,
	}
}

// Run starts the program in the alternate screen and blocks until it exits.
func Run(ctx context.Context, ctrl *controller.Controller, theme Theme) error {
	p := tea.NewProgram(New(ctx, ctrl, theme), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m Model) load() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{err: m.ctrl.Load(m.ctx)}
	}
}

func (m Model) save(d item.Draft) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{err: m.ctrl.Save(m.ctx, d)}
	}
}

func (m Model) confirmDelete() tea.Cmd {
	return func() tea.Msg {
		return deletedMsg{err: m.ctrl.ConfirmDelete(m.ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loadedMsg, deletedMsg:
		m.clampCursor()
		return m, nil
	case savedMsg:
		if m.form == nil {
			return m, nil
		}
		if msg.err != nil {
			m.form.busy = false
			m.form.err = "Save failed: " + msg.err.Error()
			return m, nil
		}
		m.form = nil
		m.clampCursor()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.form != nil {
		f, cmd := m.form.update(msg)
		m.form = &f
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.form != nil {
		return m.handleFormKey(msg)
	}
	if m.ctrl.Snapshot().PendingDelete != nil {
		return m.handleConfirmKey(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	visible := m.ctrl.Visible()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "a":
		m.ctrl.OpenCreate()
		f := newForm(nil)
		m.form = &f
	case "e", "enter":
		if it, ok := m.selected(visible); ok {
			m.ctrl.OpenEdit(it)
			f := newForm(&it)
			m.form = &f
		}
	case "d":
		if it, ok := m.selected(visible); ok {
			m.ctrl.RequestDelete(it)
		}
	case "/":
		m.searching = true
		m.search.Focus()
	case "esc":
		m.search.SetValue("")
		m.ctrl.SetSearch("")
		m.cursor = 0
	case "t":
		m.theme = m.theme.Toggle()
	case "r":
		return m, tea.Batch(m.spinner.Tick, m.load())
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.busy {
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.ctrl.CloseModal()
		m.form = nil
		return m, nil
	case "tab", "shift+tab":
		f := *m.form
		f.toggleFocus()
		m.form = &f
		return m, nil
	case "ctrl+s":
		return m.submitForm()
	case "enter":
		if m.form.focus == focusTitle {
			return m.submitForm()
		}
	}
	f, cmd := m.form.update(msg)
	m.form = &f
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	f := *m.form
	d, ok := f.submit()
	m.form = &f
	if !ok {
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, m.save(d))
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m, m.confirmDelete()
	case "n", "N", "esc":
		m.ctrl.CancelDelete()
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.ctrl.SetSearch("")
		m.cursor = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.ctrl.SetSearch(m.search.Value())
	m.cursor = 0
	return m, cmd
}

func (m Model) selected(visible []item.Item) (item.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(visible) {
		return item.Item{}, false
	}
	return visible[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.ctrl.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	th := m.theme
	if m.form != nil {
		return m.form.view(th, m.width, m.spinner.View())
	}

	state := m.ctrl.Snapshot()
	visible := m.ctrl.Visible()

	var b strings.Builder
	b.WriteString(th.Title.Render("Items"))
	b.WriteString(th.Muted.Render(fmt.Sprintf("  %d total", len(state.Items))))
	b.WriteString(th.Accent.Render(fmt.Sprintf("   [t] %s theme", th.Name)))
	b.WriteString("\n")

	if m.searching || state.SearchQuery != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case state.Loading && len(state.Items) == 0:
		b.WriteString(m.spinner.View() + " Loading items...")
		b.WriteString("\n")
	case len(state.Items) == 0:
		b.WriteString(th.Muted.Render("No items found"))
		b.WriteString("\n")
	case len(visible) == 0:
		b.WriteString(th.Muted.Render("No items match your search"))
		b.WriteString("\n")
	default:
		for i, it := range visible {
			b.WriteString(renderCard(it, i == m.cursor, m.width, th))
			b.WriteString("\n")
		}
	}

	if state.PendingDelete != nil {
		b.WriteString("\n")
		b.WriteString(th.Error.Render(fmt.Sprintf("Delete %q? (y/n)", state.PendingDelete.Title)))
		b.WriteString("\n")
	}
	if state.LastError != "" {
		b.WriteString("\n")
		b.WriteString(th.Error.Render(state.LastError))
		b.WriteString(th.Muted.Render("  (r to retry)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(th.Help.Render("a add • e edit • d delete • / search • t theme • r reload • q quit"))
	return b.String()
}
