// Package styles holds the lipgloss styling for the console.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles holds all the UI styles
type Styles struct {
	// Desktop
	Desktop lipgloss.Style

	// Taskbar
	Taskbar           lipgloss.Style
	TaskbarItem       lipgloss.Style
	TaskbarItemActive lipgloss.Style

	// Windows
	Window       lipgloss.Style
	WindowActive lipgloss.Style
	WindowTitle  lipgloss.Style

	// Lists
	ListItem       lipgloss.Style
	ListItemActive lipgloss.Style
	UnseenBadge    lipgloss.Style
	Muted          lipgloss.Style

	// Forms
	FieldLabel   lipgloss.Style
	FieldFocused lipgloss.Style
	Chip         lipgloss.Style
	ChipActive   lipgloss.Style

	// Terminal
	TermPrompt lipgloss.Style
	TermText   lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style

	// Overlays
	Overlay        lipgloss.Style
	OverlayTitle   lipgloss.Style
	MenuItem       lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuKey        lipgloss.Style
	Separator      lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Desktop: lipgloss.NewStyle().
			Background(Base),

		Taskbar: lipgloss.NewStyle().
			Background(Mantle).
			Foreground(Subtext0).
			Padding(0, 1),

		TaskbarItem: lipgloss.NewStyle().
			Foreground(Overlay1).
			Padding(0, 1),

		TaskbarItemActive: lipgloss.NewStyle().
			Foreground(Base).
			Background(Lavender).
			Bold(true).
			Padding(0, 1),

		Window: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		WindowActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1),

		WindowTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		ListItem: lipgloss.NewStyle().
			Foreground(Text).
			Padding(0, 1),

		ListItemActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			Padding(0, 1),

		UnseenBadge: lipgloss.NewStyle().
			Foreground(Base).
			Background(Peach).
			Padding(0, 1).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(Overlay0),

		FieldLabel: lipgloss.NewStyle().
			Foreground(Teal).
			Width(12).
			Align(lipgloss.Right),

		FieldFocused: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			Width(12).
			Align(lipgloss.Right),

		Chip: lipgloss.NewStyle().
			Foreground(Subtext0).
			Background(Surface1).
			Padding(0, 1),

		ChipActive: lipgloss.NewStyle().
			Foreground(Base).
			Background(Teal).
			Bold(true).
			Padding(0, 1),

		TermPrompt: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		TermText: lipgloss.NewStyle().
			Foreground(Text),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(Surface1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}

// KindColor returns the accent color for a window kind name, falling back
// to the default border color for unknown kinds.
func KindColor(kind string) lipgloss.Color {
	if c, ok := KindColors[kind]; ok {
		return c
	}
	return Surface1
}
