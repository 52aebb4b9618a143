package window

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mthorsen/folio/internal/shell"
	"github.com/mthorsen/folio/internal/ui/styles"
)

// terminalRows is how many transcript lines stay visible above the prompt.
const terminalRows = 16

// Terminal hosts a shell session. The session lives exactly as long as
// the window: closing it discards transcript and working directory.
type Terminal struct {
	session *shell.Session
	input   textinput.Model
	styles  *styles.Styles
}

// NewTerminal creates a terminal view over a fresh session.
func NewTerminal(session *shell.Session, st *styles.Styles) *Terminal {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 200
	ti.Width = 60
	ti.Focus()

	return &Terminal{
		session: session,
		input:   ti,
		styles:  st,
	}
}

func (v *Terminal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			line := v.input.Value()
			v.input.SetValue("")
			if v.session.Exec(line) == shell.EffectExit {
				return v, func() tea.Msg { return CloseSelfMsg{} }
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *Terminal) View(width int) string {
	var b strings.Builder

	transcript := v.session.Transcript()
	if len(transcript) > terminalRows {
		transcript = transcript[len(transcript)-terminalRows:]
	}
	for _, line := range transcript {
		b.WriteString(v.styles.TermText.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(v.styles.TermPrompt.Render(v.session.Prompt()))
	b.WriteString(" ")
	b.WriteString(v.input.View())

	return b.String()
}

func (v *Terminal) Title() string {
	return "Terminal"
}

// Init starts the cursor blink.
func (v *Terminal) Init() tea.Cmd {
	return textinput.Blink
}
