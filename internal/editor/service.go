// Package editor implements the project record editor behind the compose
// window: form seeding, validation, save/delete against the document
// store, and tech-tag list edits.
package editor

import (
	"context"
	"log/slog"

	"github.com/mthorsen/folio/internal/domain"
	"github.com/mthorsen/folio/internal/store"
)

// PlaceholderImage is used when a saved form has no image reference.
const PlaceholderImage = "https://placehold.co/600x400?text=Project"

// Form is the editable state of a compose window. It is seeded once when
// the window opens and only written back to the store on an explicit save.
type Form struct {
	Title       string
	Description string
	TechStack   []string
	LiveURL     string
	CodeURL     string
	Image       string
	Highlights  []string
	CaseStudy   domain.CaseStudy
}

// FormFromProject seeds a form field-for-field from an existing project.
// The stored stack string is parsed back into a list.
func FormFromProject(p domain.Project) Form {
	f := Form{
		Title:       p.Title,
		Description: p.Description,
		TechStack:   domain.ParseStack(p.Stack),
		LiveURL:     p.LiveURL,
		CodeURL:     p.CodeURL,
		Image:       p.Image,
		Highlights:  append([]string{}, p.Highlights...),
	}
	if p.CaseStudy != nil {
		f.CaseStudy = *p.CaseStudy
	}
	return f
}

// AddTechTag appends a tag to the list. Tags are taken verbatim; callers
// must not submit empty strings.
func AddTechTag(current []string, tag string) []string {
	return append(current, tag)
}

// RemoveTechTag removes the first exact match from the list.
func RemoveTechTag(current []string, tag string) []string {
	for i, t := range current {
		if t == tag {
			return append(append([]string{}, current[:i]...), current[i+1:]...)
		}
	}
	return current
}

// Service is the record editor. It issues one store call at a time:
// save-then-refetch and delete-then-refetch are sequential, never
// concurrent, and failures surface to the caller without retry.
type Service struct {
	store  store.Store
	logger *slog.Logger
}

// NewService creates an editor over the given store.
func NewService(st store.Store, logger *slog.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// Save validates and persists the form. With editingID set it updates
// the existing record in place, preserving its display order and
// creation time; otherwise it creates a new record ordered after all
// existing ones. Returns the refreshed project list on success.
func (s *Service) Save(ctx context.Context, form Form, editingID string) ([]domain.Project, error) {
	if form.Title == "" || len(form.TechStack) == 0 {
		return nil, &domain.ValidationError{Message: "Subject and Tech required"}
	}

	image := form.Image
	if image == "" {
		image = PlaceholderImage
	}

	record := domain.Project{
		Title:       form.Title,
		Description: form.Description,
		Stack:       domain.JoinStack(form.TechStack),
		LiveURL:     form.LiveURL,
		CodeURL:     form.CodeURL,
		Image:       image,
		Highlights:  append([]string{}, form.Highlights...),
	}
	if form.CaseStudy != (domain.CaseStudy{}) {
		cs := form.CaseStudy
		record.CaseStudy = &cs
	}

	existing, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	if editingID != "" {
		prev, ok := findProject(existing, editingID)
		if !ok {
			return nil, &domain.StoreError{Op: "update", Collection: "projects", ID: editingID, Err: domain.ErrNoSuchFile}
		}
		record.ID = editingID
		record.Order = prev.Order
		record.CreatedAt = prev.CreatedAt

		if err := s.store.UpdateProject(ctx, record); err != nil {
			return nil, err
		}
		s.logger.Info("project updated", "id", editingID, "title", record.Title)
	} else {
		// Append-to-end: orders go sparse after deletions and are not
		// renumbered.
		record.Order = len(existing)

		created, err := s.store.CreateProject(ctx, record)
		if err != nil {
			return nil, err
		}
		s.logger.Info("project created", "id", created.ID, "title", created.Title)
	}

	return s.store.ListProjects(ctx)
}

// Delete removes the record and re-fetches the list so displayed state
// reflects the store rather than an optimistic local removal.
func (s *Service) Delete(ctx context.Context, id string) ([]domain.Project, error) {
	if err := s.store.DeleteProject(ctx, id); err != nil {
		return nil, err
	}
	s.logger.Info("project deleted", "id", id)

	return s.store.ListProjects(ctx)
}

// List returns all projects in display order.
func (s *Service) List(ctx context.Context) ([]domain.Project, error) {
	return s.store.ListProjects(ctx)
}

func findProject(projects []domain.Project, id string) (domain.Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Project{}, false
}
