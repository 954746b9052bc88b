// Package tui implements the interactive morning-reflection form.
package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"consciousday/internal/model"
)

type field int

const (
	fieldJournal field = iota
	fieldIntention
	fieldDream
	fieldPriorities
	fieldCount
)

var (
	formTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	focusedLabel     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	blurredLabel     = lipgloss.NewStyle().Bold(true).Faint(true)
	formHelpStyle    = lipgloss.NewStyle().Faint(true)
	defaultFormWidth = 60
)

// Form is the bubbletea model for the four morning inputs. When the program
// finishes, Submitted reports whether the user confirmed (ctrl+s) or
// cancelled (esc / ctrl+c).
type Form struct {
	journal    textarea.Model
	intention  textinput.Model
	dream      textarea.Model
	priorities textarea.Model

	focus     field
	submitted bool
}

// NewForm builds the form with the journal field focused.
func NewForm() Form {
	journal := newArea("What did you wake up with this morning?", 5)
	journal.Focus()

	intention := textinput.New()
	intention.Placeholder = "What is your main focus today?"
	intention.CharLimit = 0
	intention.Width = defaultFormWidth

	dream := newArea("Any dream you remember?", 3)
	priorities := newArea("1. ...\n2. ...\n3. ...", 3)

	return Form{
		journal:    journal,
		intention:  intention,
		dream:      dream,
		priorities: priorities,
	}
}

func newArea(placeholder string, height int) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 0
	ta.SetWidth(defaultFormWidth)
	ta.SetHeight(height)
	ta.ShowLineNumbers = false
	return ta
}

// Submitted reports whether the user confirmed the form.
func (f Form) Submitted() bool {
	return f.submitted
}

// Request returns the entered fields.
func (f Form) Request() model.ReflectionRequest {
	return model.ReflectionRequest{
		Journal:    f.journal.Value(),
		Intention:  f.intention.Value(),
		Dream:      f.dream.Value(),
		Priorities: f.priorities.Value(),
	}
}

func (f Form) Init() tea.Cmd {
	return textarea.Blink
}

func (f Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 4
		if w > 0 {
			f.journal.SetWidth(w)
			f.dream.SetWidth(w)
			f.priorities.SetWidth(w)
			f.intention.Width = w
		}
		return f, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			f.submitted = false
			return f, tea.Quit
		case "ctrl+s":
			f.submitted = true
			return f, tea.Quit
		case "tab":
			return f.moveFocus(1)
		case "shift+tab":
			return f.moveFocus(-1)
		}
	}

	return f.updateFocused(msg)
}

func (f Form) moveFocus(delta int) (tea.Model, tea.Cmd) {
	f.blurAll()
	f.focus = (f.focus + field(delta) + fieldCount) % fieldCount
	return f, f.focusCurrent()
}

func (f *Form) blurAll() {
	f.journal.Blur()
	f.intention.Blur()
	f.dream.Blur()
	f.priorities.Blur()
}

func (f *Form) focusCurrent() tea.Cmd {
	switch f.focus {
	case fieldJournal:
		return f.journal.Focus()
	case fieldIntention:
		return f.intention.Focus()
	case fieldDream:
		return f.dream.Focus()
	default:
		return f.priorities.Focus()
	}
}

func (f Form) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case fieldJournal:
		f.journal, cmd = f.journal.Update(msg)
	case fieldIntention:
		f.intention, cmd = f.intention.Update(msg)
	case fieldDream:
		f.dream, cmd = f.dream.Update(msg)
	default:
		f.priorities, cmd = f.priorities.Update(msg)
	}
	return f, cmd
}

func (f Form) View() string {
	label := func(fd field, text string) string {
		if f.focus == fd {
			return focusedLabel.Render(text)
		}
		return blurredLabel.Render(text)
	}

	return formTitleStyle.Render("Morning Reflection") + "\n\n" +
		label(fieldJournal, "Morning Journal") + "\n" + f.journal.View() + "\n\n" +
		label(fieldIntention, "Intention of the Day") + "\n" + f.intention.View() + "\n\n" +
		label(fieldDream, "Dream") + "\n" + f.dream.View() + "\n\n" +
		label(fieldPriorities, "Top 3 Priorities") + "\n" + f.priorities.View() + "\n\n" +
		formHelpStyle.Render("tab: next field • ctrl+s: generate • esc: cancel")
}

// RunForm runs the form and returns the entered request. ok is false when
// the user cancelled.
func RunForm() (model.ReflectionRequest, bool, error) {
	p := tea.NewProgram(NewForm())
	out, err := p.Run()
	if err != nil {
		return model.ReflectionRequest{}, false, err
	}
	f := out.(Form)
	if !f.Submitted() {
		return model.ReflectionRequest{}, false, nil
	}
	return f.Request(), true, nil
}
