// Package statusbar renders the bar at the bottom of the console.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mthorsen/folio/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the console.
type StatusBar struct {
	active string // active window kind name, empty when the desktop is bare
	unseen int    // unseen message count
	width  int
	styles *styles.Styles
}

// New creates a StatusBar for the given active window kind and width.
func New(active string, unseen, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		active: active,
		unseen: unseen,
		width:  width,
		styles: styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	badge := sb.styles.StatusMode.Render(" " + sb.badgeText() + " ")

	hints := GetHints(sb.active)
	hintsRendered := sb.styles.StatusHint.Render(hints)

	var content string
	if hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		content = lipgloss.JoinHorizontal(lipgloss.Left, badge, separator, hintsRendered)
	} else {
		content = badge
	}

	if sb.unseen > 0 {
		unseen := sb.styles.UnseenBadge.Render(fmt.Sprintf(" %d new ", sb.unseen))
		content = lipgloss.JoinHorizontal(lipgloss.Left, content, " ", unseen)
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}

func (sb StatusBar) badgeText() string {
	if sb.active == "" {
		return "DESKTOP"
	}
	return strings.ToUpper(sb.active)
}
