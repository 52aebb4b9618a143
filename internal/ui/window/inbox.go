package window

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mthorsen/folio/internal/domain"
	"github.com/mthorsen/folio/internal/ui/styles"
)

// Inbox lists received messages, newest first.
type Inbox struct {
	messages []domain.Message
	cursor   int
	styles   *styles.Styles
}

// NewInbox creates an inbox view over the given messages.
func NewInbox(messages []domain.Message, st *styles.Styles) *Inbox {
	return &Inbox{
		messages: domain.SortMessages(messages),
		styles:   st,
	}
}

// SetMessages replaces the message list, clamping the cursor.
func (v *Inbox) SetMessages(messages []domain.Message) {
	v.messages = domain.SortMessages(messages)
	if v.cursor >= len(v.messages) {
		v.cursor = len(v.messages) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// Unseen returns the number of unseen messages.
func (v *Inbox) Unseen() int {
	n := 0
	for _, m := range v.messages {
		if !m.Seen {
			n++
		}
	}
	return n
}

func (v *Inbox) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if v.cursor < len(v.messages)-1 {
				v.cursor++
			}
			return v, nil

		case "k", "up":
			if v.cursor > 0 {
				v.cursor--
			}
			return v, nil

		case "enter":
			if len(v.messages) == 0 {
				return v, nil
			}
			selected := v.messages[v.cursor]
			return v, func() tea.Msg { return OpenMessageMsg{Message: selected} }

		case "s":
			if len(v.messages) == 0 {
				return v, nil
			}
			id := v.messages[v.cursor].ID
			return v, func() tea.Msg { return MarkSeenMsg{ID: id} }

		case "q", "esc":
			return v, func() tea.Msg { return CloseSelfMsg{} }
		}
	}

	return v, nil
}

func (v *Inbox) View(width int) string {
	if len(v.messages) == 0 {
		return v.styles.Muted.Render("No messages yet.")
	}

	var b strings.Builder
	for i, m := range v.messages {
		line := fmt.Sprintf("%s  %s", m.ReceivedAt.Format("Jan 02 15:04"), m.Name)
		if !m.Seen {
			line += "  " + v.styles.UnseenBadge.Render("new")
		}

		style := v.styles.ListItem
		if i == v.cursor {
			style = v.styles.ListItemActive
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")

		preview := m.Body
		if len(preview) > width-8 && width > 8 {
			preview = preview[:width-8] + "…"
		}
		b.WriteString(v.styles.Muted.Render("   " + preview))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (v *Inbox) Title() string {
	return fmt.Sprintf("Inbox (%d)", len(v.messages))
}
