// Package store is the document-store collaborator backing messages and
// projects. The admin console and the public site both talk to it through
// the Store interface; the only production implementation is SQLite.
package store

import (
	"context"

	"github.com/mthorsen/folio/internal/domain"
)

// Store provides access to the two collections. Messages are append-only
// from the application's point of view (plus a seen flag); projects have
// a full CRUD lifecycle driven by the admin console.
type Store interface {
	// ListMessages returns messages ordered newest first.
	ListMessages(ctx context.Context) ([]domain.Message, error)
	// CreateMessage persists a contact-form submission, assigning the ID
	// and received timestamp if unset, and returns the stored record.
	CreateMessage(ctx context.Context, msg domain.Message) (domain.Message, error)
	// MarkMessageSeen flips the seen flag on a message.
	MarkMessageSeen(ctx context.Context, id string) error

	// ListProjects returns projects ordered ascending by display order.
	ListProjects(ctx context.Context) ([]domain.Project, error)
	// CreateProject persists a new project, assigning the ID and creation
	// timestamp if unset, and returns the stored record.
	CreateProject(ctx context.Context, p domain.Project) (domain.Project, error)
	// UpdateProject replaces the stored record with the given one.
	UpdateProject(ctx context.Context, p domain.Project) error
	// DeleteProject removes a project by id.
	DeleteProject(ctx context.Context, id string) error

	// Close releases the underlying connection.
	Close() error
}
