// Package wsm manages the set of open admin-console windows: typed
// surfaces with z-ordering, singleton enforcement for the inbox and
// project list, and snapshot payloads for detail and compose windows.
//
// All mutation happens from synchronous UI callbacks; there is exactly one
// logical actor, so no locking.
package wsm

import (
	"github.com/google/uuid"
	"github.com/mthorsen/folio/internal/domain"
)

// Kind identifies the surface a window hosts.
type Kind int

const (
	KindInbox Kind = iota
	KindProjectList
	KindMessageDetail
	KindCompose
)

func (k Kind) String() string {
	return [...]string{"inbox", "projects", "message", "compose"}[k]
}

// Singleton reports whether at most one window of this kind may be open.
func (k Kind) Singleton() bool {
	return k == KindInbox || k == KindProjectList
}

// Window is one open surface. Payload fields are read-only snapshots
// copied at open time: Message for KindMessageDetail, Project for
// KindCompose when editing an existing record (nil means compose-new).
type Window struct {
	ID      string
	Kind    Kind
	ZOrder  int
	Message *domain.Message
	Project *domain.Project
}

// Manager owns the open window set and the z-order counter. Counter
// values are unique and strictly increasing; the window holding the
// maximum is the active one.
type Manager struct {
	windows []*Window
	counter int
}

// NewManager creates an empty window manager.
func NewManager() *Manager {
	return &Manager{}
}

// OpenInbox opens the inbox, or focuses the existing one.
func (m *Manager) OpenInbox() *Window {
	return m.openSingleton(KindInbox)
}

// OpenProjects opens the project list, or focuses the existing one.
func (m *Manager) OpenProjects() *Window {
	return m.openSingleton(KindProjectList)
}

// OpenMessage opens a detail window for the given message. Each call
// creates an independent window; several may coexist.
func (m *Manager) OpenMessage(msg domain.Message) *Window {
	w := m.newWindow(KindMessageDetail)
	w.Message = &msg
	return w
}

// OpenCompose opens a compose window. A non-nil project snapshot puts the
// window in edit mode; nil composes a new record. The snapshot is copied
// so list-view state never sees in-progress edits.
func (m *Manager) OpenCompose(project *domain.Project) *Window {
	w := m.newWindow(KindCompose)
	if project != nil {
		snapshot := *project
		snapshot.Highlights = append([]string{}, project.Highlights...)
		if project.CaseStudy != nil {
			cs := *project.CaseStudy
			snapshot.CaseStudy = &cs
		}
		w.Project = &snapshot
	}
	return w
}

// Focus raises the window with the given id to the top. Unknown ids are
// ignored.
func (m *Manager) Focus(id string) {
	for _, w := range m.windows {
		if w.ID == id {
			w.ZOrder = m.nextZ()
			return
		}
	}
}

// Close removes the window with the given id. No other window is
// promoted; if the active window closes, focus becomes undefined until
// the next open or focus.
func (m *Manager) Close(id string) {
	for i, w := range m.windows {
		if w.ID == id {
			m.windows = append(m.windows[:i], m.windows[i+1:]...)
			return
		}
	}
}

// Windows returns the open set in creation order.
func (m *Manager) Windows() []*Window {
	return m.windows
}

// Active returns the window with the highest z-order, or nil when none
// are open.
func (m *Manager) Active() *Window {
	var top *Window
	for _, w := range m.windows {
		if top == nil || w.ZOrder > top.ZOrder {
			top = w
		}
	}
	return top
}

// Find returns the open window with the given id, or nil.
func (m *Manager) Find(id string) *Window {
	for _, w := range m.windows {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// Len returns the number of open windows.
func (m *Manager) Len() int {
	return len(m.windows)
}

func (m *Manager) openSingleton(kind Kind) *Window {
	for _, w := range m.windows {
		if w.Kind == kind {
			m.Focus(w.ID)
			return w
		}
	}
	return m.newWindow(kind)
}

func (m *Manager) newWindow(kind Kind) *Window {
	w := &Window{
		ID:     uuid.NewString(),
		Kind:   kind,
		ZOrder: m.nextZ(),
	}
	m.windows = append(m.windows, w)
	return w
}

func (m *Manager) nextZ() int {
	z := m.counter
	m.counter++
	return z
}
