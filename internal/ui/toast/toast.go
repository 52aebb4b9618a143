// Package toast renders transient notifications in the console.
package toast

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mthorsen/folio/internal/ui/styles"
)

// Level is the severity of a toast.
type Level int

const (
	Info Level = iota
	Success
	Warning
	Error
)

// Toast is one notification. It expires after ExpiresAt.
type Toast struct {
	Level     Level
	Message   string
	ExpiresAt time.Time
}

// New creates a toast that lives for the given duration.
func New(level Level, message string, ttl time.Duration) Toast {
	return Toast{
		Level:     level,
		Message:   message,
		ExpiresAt: time.Now().Add(ttl),
	}
}

// Prune drops expired toasts, preserving order.
func Prune(toasts []Toast, now time.Time) []Toast {
	live := toasts[:0]
	for _, t := range toasts {
		if now.Before(t.ExpiresAt) {
			live = append(live, t)
		}
	}
	return live
}

// Renderer handles rendering of toast notifications
type Renderer struct {
	styles *styles.Styles
}

// NewRenderer creates a Renderer with the given styles
func NewRenderer(styles *styles.Styles) *Renderer {
	return &Renderer{
		styles: styles,
	}
}

// Render renders a stack of toasts in the bottom-right corner
// Returns empty string if no toasts to display
func (r *Renderer) Render(toasts []Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}

	var rendered []string
	toastWidth := width / 3
	if toastWidth > 40 {
		toastWidth = 40 // Cap maximum toast width
	}

	for _, t := range toasts {
		style := r.styleForLevel(t.Level)
		rendered = append(rendered, style.Width(toastWidth).Render(t.Message))
	}

	// Stack toasts vertically, aligned to the right
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// styleForLevel returns the appropriate style for a toast level
func (r *Renderer) styleForLevel(level Level) lipgloss.Style {
	switch level {
	case Success:
		return r.styles.ToastSuccess
	case Warning:
		return r.styles.ToastWarning
	case Error:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}
