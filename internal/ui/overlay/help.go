package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory represents a category of keybindings
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

// HelpOverlay displays the keybinding reference for the console.
type HelpOverlay struct {
	styles *Styles
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{styles: New()}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "?":
			return h, func() tea.Msg { return CloseOverlayMsg{} }
		}
	}

	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	var b strings.Builder

	for i, cat := range h.categories() {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(h.styles.MenuHeader.Render(cat.Name))
		b.WriteString("\n")

		for _, kb := range cat.Bindings {
			key := h.styles.MenuKey.Render(padKey(kb.Key))
			desc := h.styles.MenuItem.Render(kb.Description)
			b.WriteString("  " + key + "  " + desc + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(h.styles.Footer.Render("Esc / q / ?: Close"))

	return b.String()
}

func (h *HelpOverlay) categories() []KeyCategory {
	return []KeyCategory{
		{
			Name: "Windows",
			Bindings: []KeyBinding{
				{"i", "Open inbox"},
				{"p", "Open projects"},
				{"n", "Compose new project"},
				{"enter", "Open selected item"},
				{"e", "Edit selected project"},
				{"d", "Delete selected project"},
				{"tab", "Cycle window focus"},
				{"esc / q", "Close active window"},
			},
		},
		{
			Name: "Terminal",
			Bindings: []KeyBinding{
				{"t", "Open terminal"},
				{"exit", "Close terminal (from the prompt)"},
			},
		},
		{
			Name: "General",
			Bindings: []KeyBinding{
				{"?", "This help"},
				{"r", "Reload data"},
				{"ctrl+c", "Quit console"},
			},
		},
	}
}

func padKey(key string) string {
	const width = 8
	if len(key) >= width {
		return key
	}
	return key + strings.Repeat(" ", width-len(key))
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Keyboard Reference"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 56, 22
}
