package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rpggio/itemboard/internal/domain/item"
)

const (
	focusTitle = iota
	focusDescription
)

const titleRequired = "Title is required"

// form edits the two user-facing fields of an item. It only collects input;
// saving is delegated to the controller by the list screen.
type form struct {
	title   textinput.Model
	desc    textarea.Model
	focus   int
	editing bool
	busy    bool
	err     string
}

// newForm returns a form seeded from editing, or blank when editing is nil.
func newForm(editing *item.Item) form {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Title"
	ti.CharLimit = 200
	ti.Cursor.SetMode(cursor.CursorStatic)

	ta := textarea.New()
	ta.Placeholder = "Description (optional)"
	ta.ShowLineNumbers = false
	ta.SetHeight(4)
	ta.Cursor.SetMode(cursor.CursorStatic)

	f := form{title: ti, desc: ta}
	if editing != nil {
		d := editing.Draft()
		f.editing = true
		f.title.SetValue(d.Title)
		f.title.CursorEnd()
		f.desc.SetValue(d.Description)
	}
	f.title.Focus()
	return f
}

func (f form) heading() string {
	if f.editing {
		return "Edit Item"
	}
	return "New Item"
}

func (f form) draft() item.Draft {
	return item.Draft{Title: f.title.Value(), Description: f.desc.Value()}
}

// submit validates locally. It returns false and sets the form error when the
// title is blank.
func (f *form) submit() (item.Draft, bool) {
	d := f.draft()
	if strings.TrimSpace(d.Title) == "" {
		f.err = titleRequired
		return item.Draft{}, false
	}
	f.err = ""
	f.busy = true
	return d, true
}

func (f *form) toggleFocus() {
	if f.focus == focusTitle {
		f.focus = focusDescription
		f.title.Blur()
		f.desc.Focus()
		return
	}
	f.focus = focusTitle
	f.desc.Blur()
	f.title.Focus()
}

// update forwards input to the focused field.
func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == focusTitle {
		f.title, cmd = f.title.Update(msg)
	} else {
		f.desc, cmd = f.desc.Update(msg)
	}
	return f, cmd
}

func (f form) view(th Theme, width int, spin string) string {
	if width > 8 {
		f.title.Width = width - 8
		f.desc.SetWidth(width - 6)
	}

	var b strings.Builder
	b.WriteString(th.Title.Render(f.heading()))
	b.WriteString("\n\n")
	b.WriteString(th.Label.Render("Title"))
	b.WriteString("\n")
	b.WriteString(f.title.View())
	b.WriteString("\n\n")
	b.WriteString(th.Label.Render("Description"))
	b.WriteString("\n")
	b.WriteString(f.desc.View())
	b.WriteString("\n\n")

	switch {
	case f.busy:
		b.WriteString(spin + " Saving...")
	case f.err != "":
		b.WriteString(th.Error.Render(f.err))
	default:
		b.WriteString(th.Help.Render("tab switch field • enter/ctrl+s save • esc cancel"))
	}
	return th.Modal.Render(b.String())
}
