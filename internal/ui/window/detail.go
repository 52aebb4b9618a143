package window

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mthorsen/folio/internal/domain"
	"github.com/mthorsen/folio/internal/ui/styles"
)

// Detail shows one message in full. The message is a snapshot taken
// when the window opened; marking it seen goes through the desktop.
type Detail struct {
	message domain.Message
	styles  *styles.Styles
}

// NewDetail creates a message detail view.
func NewDetail(message domain.Message, st *styles.Styles) *Detail {
	return &Detail{message: message, styles: st}
}

func (v *Detail) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			id := v.message.ID
			return v, func() tea.Msg { return MarkSeenMsg{ID: id} }

		case "q", "esc":
			return v, func() tea.Msg { return CloseSelfMsg{} }
		}
	}

	return v, nil
}

func (v *Detail) View(width int) string {
	var b strings.Builder

	b.WriteString(v.styles.FieldLabel.Render("From:"))
	b.WriteString("  " + v.message.Name + " <" + v.message.Email + ">\n")
	b.WriteString(v.styles.FieldLabel.Render("Received:"))
	b.WriteString("  " + v.message.ReceivedAt.Format("Mon Jan 2 15:04:05 2006") + "\n")
	if !v.message.Seen {
		b.WriteString(v.styles.FieldLabel.Render(""))
		b.WriteString("  " + v.styles.UnseenBadge.Render("unseen") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(v.message.Body)

	return b.String()
}

func (v *Detail) Title() string {
	return "Message from " + v.message.Name
}
