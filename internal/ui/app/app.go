// Package app is the console desktop: a window manager over the inbox,
// project list, editor and terminal views.
package app

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mthorsen/folio/internal/content"
	"github.com/mthorsen/folio/internal/domain"
	"github.com/mthorsen/folio/internal/editor"
	"github.com/mthorsen/folio/internal/shell"
	"github.com/mthorsen/folio/internal/store"
	"github.com/mthorsen/folio/internal/ui/overlay"
	"github.com/mthorsen/folio/internal/ui/styles"
	"github.com/mthorsen/folio/internal/ui/toast"
	"github.com/mthorsen/folio/internal/ui/window"
	"github.com/mthorsen/folio/internal/wsm"
)

const toastTTL = 4 * time.Second

// Model is the top-level Bubble Tea model for the console.
type Model struct {
	store   store.Store
	editor  *editor.Service
	manager *wsm.Manager
	content content.Content
	logger  *slog.Logger

	styles  *styles.Styles
	toaster *toast.Renderer

	overlayStack *overlay.Stack

	// views maps window IDs to their interactive state. The terminal
	// is not managed by the window manager: its session dies with the
	// view, so it lives directly on the model.
	views map[string]window.View
	term  *window.Terminal

	messages []domain.Message
	projects []domain.Project

	pendingDelete *domain.Project
	toasts        []toast.Toast

	width  int
	height int
}

// New creates the console model.
func New(st store.Store, ed *editor.Service, c content.Content, logger *slog.Logger) Model {
	s := styles.New()
	return Model{
		store:        st,
		editor:       ed,
		manager:      wsm.NewManager(),
		content:      c,
		logger:       logger,
		styles:       s,
		toaster:      toast.NewRenderer(s),
		overlayStack: overlay.NewStack(),
		views:        make(map[string]window.View),
	}
}

// Init loads the initial data set.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadMessages(), m.loadProjects())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case toastTickMsg:
		m.toasts = toast.Prune(m.toasts, time.Now())
		if len(m.toasts) > 0 {
			return m, tickToasts()
		}
		return m, nil

	case messagesLoadedMsg:
		if msg.err != nil {
			return m.toastError("Inbox unavailable: " + msg.err.Error())
		}
		m.messages = msg.messages
		m.refreshInbox()
		return m, nil

	case projectsLoadedMsg:
		if msg.err != nil {
			return m.toastError("Projects unavailable: " + msg.err.Error())
		}
		m.projects = msg.projects
		m.refreshProjects()
		return m, nil

	case seenMarkedMsg:
		if msg.err != nil {
			return m.toastError("Could not mark seen")
		}
		return m, m.loadMessages()

	case projectSavedMsg:
		return m.handleSaved(msg)

	case projectDeletedMsg:
		if msg.err != nil {
			return m.toastError("Delete failed: " + msg.err.Error())
		}
		m.projects = msg.projects
		m.refreshProjects()
		return m.toastSuccess("Project deleted")

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case window.CloseSelfMsg:
		m.closeActive()
		return m, nil

	case window.OpenMessageMsg:
		w := m.manager.OpenMessage(msg.Message)
		m.views[w.ID] = window.NewDetail(*w.Message, m.styles)
		return m, nil

	case window.MarkSeenMsg:
		return m, m.markSeen(msg.ID)

	case window.EditProjectMsg:
		w := m.manager.OpenCompose(&msg.Project)
		m.views[w.ID] = window.NewCompose(editor.FormFromProject(*w.Project), w.Project.ID, m.styles)
		return m, nil

	case window.ComposeNewMsg:
		w := m.manager.OpenCompose(nil)
		m.views[w.ID] = window.NewCompose(editor.Form{}, "", m.styles)
		return m, nil

	case window.DeleteProjectMsg:
		project := msg.Project
		m.pendingDelete = &project
		return m, m.overlayStack.Push(overlay.NewDeleteDialog(
			"Delete Project",
			fmt.Sprintf("Delete %q? This cannot be undone.", project.Title),
		))

	case window.SaveFormMsg:
		var windowID string
		if active := m.manager.Active(); active != nil {
			windowID = active.ID
		}
		return m, m.saveProject(msg.Form, msg.EditingID, windowID)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Everything else (cursor blinks and friends) goes to whatever has
	// focus.
	return m.forward(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if !m.overlayStack.IsEmpty() {
		return m, m.overlayStack.Update(msg)
	}

	if m.term != nil {
		return m.forward(msg)
	}

	// The compose form owns the keyboard while focused.
	if active := m.manager.Active(); active != nil && active.Kind == wsm.KindCompose {
		return m.forward(msg)
	}

	switch msg.String() {
	case "i":
		m.openInbox()
		return m, nil

	case "p":
		m.openProjects()
		return m, nil

	case "n":
		w := m.manager.OpenCompose(nil)
		m.views[w.ID] = window.NewCompose(editor.Form{}, "", m.styles)
		return m, nil

	case "t":
		return m.openTerminal()

	case "?":
		return m, m.overlayStack.Push(overlay.NewHelpOverlay())

	case "r":
		return m, tea.Batch(m.loadMessages(), m.loadProjects())

	case "tab":
		m.cycleFocus()
		return m, nil
	}

	return m.forward(msg)
}

// forward sends a message to the focused view: the terminal when open,
// otherwise the active window.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.term != nil {
		view, cmd := m.term.Update(msg)
		m.term = view.(*window.Terminal)
		return m, cmd
	}

	active := m.manager.Active()
	if active == nil {
		return m, nil
	}
	view, ok := m.views[active.ID]
	if !ok {
		return m, nil
	}

	updated, cmd := view.Update(msg)
	m.views[active.ID] = updated
	return m, cmd
}

func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	m.overlayStack.Pop()

	result, ok := msg.Value.(overlay.ConfirmResult)
	if !ok || m.pendingDelete == nil {
		return m, nil
	}

	project := *m.pendingDelete
	m.pendingDelete = nil
	if !result.Confirmed {
		return m, nil
	}
	return m, m.deleteProject(project.ID)
}

func (m Model) handleSaved(msg projectSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if domain.IsValidation(msg.err) {
			if view, ok := m.views[msg.windowID].(*window.Compose); ok {
				view.SetError(msg.err.Error())
				return m, nil
			}
		}
		return m.toastError("Save failed: " + msg.err.Error())
	}

	m.projects = msg.projects
	m.manager.Close(msg.windowID)
	delete(m.views, msg.windowID)
	m.refreshProjects()
	return m.toastSuccess("Project saved")
}

func (m *Model) closeActive() {
	if m.term != nil {
		m.term = nil
		return
	}
	if active := m.manager.Active(); active != nil {
		m.manager.Close(active.ID)
		delete(m.views, active.ID)
	}
}

func (m *Model) openInbox() {
	w := m.manager.OpenInbox()
	if _, ok := m.views[w.ID]; !ok {
		m.views[w.ID] = window.NewInbox(m.messages, m.styles)
	}
}

func (m *Model) openProjects() {
	w := m.manager.OpenProjects()
	if _, ok := m.views[w.ID]; !ok {
		m.views[w.ID] = window.NewProjects(m.projects, m.styles)
	}
}

func (m Model) openTerminal() (tea.Model, tea.Cmd) {
	session := shell.NewSession(m.content.FileTree(m.projects), shell.Options{
		Host:    m.content.Terminal.Host,
		Welcome: m.content.Terminal.Welcome,
	})
	m.term = window.NewTerminal(session, m.styles)
	return m, m.term.Init()
}

func (m *Model) cycleFocus() {
	windows := m.manager.Windows()
	if len(windows) < 2 {
		return
	}

	active := m.manager.Active()
	for i, w := range windows {
		if w.ID == active.ID {
			m.manager.Focus(windows[(i+1)%len(windows)].ID)
			return
		}
	}
}

func (m *Model) refreshInbox() {
	for _, w := range m.manager.Windows() {
		if w.Kind == wsm.KindInbox {
			if view, ok := m.views[w.ID].(*window.Inbox); ok {
				view.SetMessages(m.messages)
			}
		}
	}
}

func (m *Model) refreshProjects() {
	for _, w := range m.manager.Windows() {
		if w.Kind == wsm.KindProjectList {
			if view, ok := m.views[w.ID].(*window.Projects); ok {
				view.SetProjects(m.projects)
			}
		}
	}
}

func (m Model) toastError(text string) (tea.Model, tea.Cmd) {
	m.logger.Error("console", "msg", text)
	m.toasts = append(m.toasts, toast.New(toast.Error, text, toastTTL))
	return m, tickToasts()
}

func (m Model) toastSuccess(text string) (tea.Model, tea.Cmd) {
	m.toasts = append(m.toasts, toast.New(toast.Success, text, toastTTL))
	return m, tickToasts()
}

func (m Model) unseen() int {
	n := 0
	for _, msg := range m.messages {
		if !msg.Seen {
			n++
		}
	}
	return n
}

// activeKind names the focused surface for the status bar.
func (m Model) activeKind() string {
	if m.term != nil {
		return "terminal"
	}
	if active := m.manager.Active(); active != nil {
		return active.Kind.String()
	}
	return ""
}
