package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stagehand/internal/cli/formatter"
	"github.com/alexanderramin/stagehand/internal/match"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const selectorVisibleRows = 10

// selectorModel is an incremental-search picker. Typing re-ranks the
// option list on every keystroke; the highlight is clamped whenever the
// ranked list shrinks under it.
type selectorModel struct {
	title   string
	input   textinput.Model
	options []match.Option
	ranked  []match.Option
	cursor  int

	choice  *match.Option
	aborted bool
}

func newSelectorModel(title string, options []match.Option) selectorModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = "> "
	ti.Focus()

	return selectorModel{
		title:   title,
		input:   ti,
		options: options,
		ranked:  options,
	}
}

func (m selectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyEnter:
		if len(m.ranked) > 0 {
			chosen := m.ranked[m.cursor]
			m.choice = &chosen
		}
		return m, tea.Quit
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.cursor < len(m.ranked)-1 {
			m.cursor++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	m.ranked = match.Rank(m.input.Value(), m.options)
	m.clampCursor()
	return m, cmd
}

func (m *selectorModel) clampCursor() {
	if m.cursor >= len(m.ranked) {
		m.cursor = len(m.ranked) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m selectorModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Bold(m.title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.ranked) == 0 {
		b.WriteString(formatter.Dim("No matches."))
		b.WriteString("\n")
		return b.String()
	}

	// Keep the highlighted row in the visible window.
	start := 0
	if m.cursor >= selectorVisibleRows {
		start = m.cursor - selectorVisibleRows + 1
	}
	end := min(start+selectorVisibleRows, len(m.ranked))

	for i := start; i < end; i++ {
		opt := m.ranked[i]
		if i == m.cursor {
			b.WriteString(formatter.StyleHeader.Render("❯ " + opt.Label))
		} else {
			b.WriteString("  " + opt.Label)
		}
		b.WriteString("\n")
	}
	if rest := len(m.ranked) - end; rest > 0 {
		b.WriteString(formatter.Dim(fmt.Sprintf("  …%d more", rest)))
		b.WriteString("\n")
	}
	return b.String()
}

// pickOption runs the selector full-screen and returns the chosen option,
// or an error when the user aborts.
func pickOption(title string, options []match.Option) (match.Option, error) {
	final, err := tea.NewProgram(newSelectorModel(title, options)).Run()
	if err != nil {
		return match.Option{}, err
	}
	m := final.(selectorModel)
	if m.aborted || m.choice == nil {
		return match.Option{}, fmt.Errorf("selection cancelled")
	}
	return *m.choice, nil
}
