package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mthorsen/folio/internal/ui/statusbar"
	"github.com/mthorsen/folio/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "starting console..."
	}

	contentHeight := m.height - 2 // taskbar + status bar
	if contentHeight < 1 {
		contentHeight = 1
	}

	var body string
	switch {
	case !m.overlayStack.IsEmpty():
		body = m.renderOverlay()
	case m.term != nil:
		body = m.renderWindow("terminal", m.term.Title(), m.term.View(m.width-4))
	default:
		body = m.renderDesktop()
	}
	body = lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, body)

	if toasts := m.toaster.Render(m.toasts, m.width); toasts != "" {
		lines := strings.Split(body, "\n")
		toastLines := strings.Split(toasts, "\n")
		// Overlay the toasts onto the bottom-right of the body.
		offset := len(lines) - len(toastLines)
		if offset < 0 {
			offset = 0
		}
		for i, tl := range toastLines {
			if offset+i < len(lines) {
				lines[offset+i] = placeRight(tl, m.width)
			}
		}
		body = strings.Join(lines, "\n")
	}

	bar := statusbar.New(m.activeKind(), m.unseen(), m.width, m.styles)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTaskbar(),
		body,
		bar.Render(),
	)
}

func (m Model) renderDesktop() string {
	active := m.manager.Active()
	if active == nil {
		return m.renderSplash()
	}

	view, ok := m.views[active.ID]
	if !ok {
		return m.renderSplash()
	}
	return m.renderWindow(active.Kind.String(), view.Title(), view.View(m.width-4))
}

func (m Model) renderWindow(kind, title, content string) string {
	titleBar := m.styles.WindowTitle.Foreground(styles.KindColor(kind)).Render(title)
	frame := m.styles.WindowActive.BorderForeground(styles.KindColor(kind))
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, titleBar, content))
}

func (m Model) renderOverlay() string {
	current := m.overlayStack.Current()
	if current == nil {
		return ""
	}
	title := m.styles.OverlayTitle.Render(current.Title())
	return m.styles.Overlay.Render(lipgloss.JoinVertical(lipgloss.Left, title, current.View()))
}

func (m Model) renderSplash() string {
	lines := []string{
		m.styles.WindowTitle.Render("folio console"),
		"",
		m.styles.Muted.Render("i  open inbox"),
		m.styles.Muted.Render("p  open projects"),
		m.styles.Muted.Render("n  compose a project"),
		m.styles.Muted.Render("t  open terminal"),
		m.styles.Muted.Render("?  keyboard reference"),
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTaskbar() string {
	brand := m.styles.TaskbarItem.Render("folio")

	var items []string
	items = append(items, brand)

	active := m.manager.Active()
	for _, w := range m.manager.Windows() {
		view, ok := m.views[w.ID]
		if !ok {
			continue
		}
		style := m.styles.TaskbarItem
		if m.term == nil && active != nil && w.ID == active.ID {
			style = m.styles.TaskbarItemActive
		}
		items = append(items, style.Render(view.Title()))
	}
	if m.term != nil {
		items = append(items, m.styles.TaskbarItemActive.Render(m.term.Title()))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Left, items...)
	return m.styles.Taskbar.Width(m.width).Render(row)
}

func placeRight(line string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, line)
}
