package statusbar

// GetHints returns the keybinding hint line for the active window kind.
func GetHints(active string) string {
	switch active {
	case "inbox":
		return "j/k: Navigate • Enter: Open • s: Mark seen • q: Close • ?: Help"
	case "projects":
		return "j/k: Navigate • Enter/e: Edit • n: New • d: Delete • q: Close • ?: Help"
	case "message":
		return "s: Mark seen • q: Close • ?: Help"
	case "compose":
		return "Tab: Next field • Ctrl+S: Save • Esc: Close"
	case "terminal":
		return "Enter: Run • exit: Close"
	default:
		return "i: Inbox • p: Projects • n: Compose • t: Terminal • ?: Help • Ctrl+C: Quit"
	}
}
