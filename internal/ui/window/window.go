// Package window implements the per-kind views shown on the console
// desktop. Each view owns its interaction state (cursor, form fields)
// and communicates with the desktop through messages.
package window

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mthorsen/folio/internal/domain"
	"github.com/mthorsen/folio/internal/editor"
)

// View is the interactive content of one desktop window.
type View interface {
	Update(msg tea.Msg) (View, tea.Cmd)
	View(width int) string
	Title() string
}

// CloseSelfMsg asks the desktop to close the active window.
type CloseSelfMsg struct{}

// OpenMessageMsg asks the desktop to open a detail window for a message.
type OpenMessageMsg struct {
	Message domain.Message
}

// MarkSeenMsg asks the desktop to mark a message seen.
type MarkSeenMsg struct {
	ID string
}

// EditProjectMsg asks the desktop to open a compose window seeded from
// an existing project.
type EditProjectMsg struct {
	Project domain.Project
}

// ComposeNewMsg asks the desktop to open an empty compose window.
type ComposeNewMsg struct{}

// DeleteProjectMsg asks the desktop to confirm and delete a project.
type DeleteProjectMsg struct {
	Project domain.Project
}

// SaveFormMsg carries a submitted compose form. EditingID is empty for
// a new record.
type SaveFormMsg struct {
	Form      editor.Form
	EditingID string
}
