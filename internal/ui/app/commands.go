package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mthorsen/folio/internal/domain"
	"github.com/mthorsen/folio/internal/editor"
)

type messagesLoadedMsg struct {
	messages []domain.Message
	err      error
}

type projectsLoadedMsg struct {
	projects []domain.Project
	err      error
}

type seenMarkedMsg struct {
	err error
}

type projectSavedMsg struct {
	projects []domain.Project
	windowID string
	err      error
}

type projectDeletedMsg struct {
	projects []domain.Project
	err      error
}

type toastTickMsg struct{}

func tickToasts() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

func (m Model) loadMessages() tea.Cmd {
	return func() tea.Msg {
		messages, err := m.store.ListMessages(context.Background())
		return messagesLoadedMsg{messages: messages, err: err}
	}
}

func (m Model) loadProjects() tea.Cmd {
	return func() tea.Msg {
		projects, err := m.editor.List(context.Background())
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func (m Model) markSeen(id string) tea.Cmd {
	return func() tea.Msg {
		return seenMarkedMsg{err: m.store.MarkMessageSeen(context.Background(), id)}
	}
}

func (m Model) saveProject(form editor.Form, editingID, windowID string) tea.Cmd {
	return func() tea.Msg {
		projects, err := m.editor.Save(context.Background(), form, editingID)
		return projectSavedMsg{projects: projects, windowID: windowID, err: err}
	}
}

func (m Model) deleteProject(id string) tea.Cmd {
	return func() tea.Msg {
		projects, err := m.editor.Delete(context.Background(), id)
		return projectDeletedMsg{projects: projects, err: err}
	}
}
