package editor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mthorsen/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records calls for asserting editor/store interaction.
type fakeStore struct {
	projects []domain.Project
	calls    []string
	failNext error
}

func (f *fakeStore) ListMessages(ctx context.Context) ([]domain.Message, error) { return nil, nil }
func (f *fakeStore) CreateMessage(ctx context.Context, m domain.Message) (domain.Message, error) {
	return m, nil
}
func (f *fakeStore) MarkMessageSeen(ctx context.Context, id string) error { return nil }
func (f *fakeStore) Close() error                                         { return nil }

func (f *fakeStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	f.calls = append(f.calls, "list")
	if err := f.takeErr(); err != nil {
		return nil, err
	}
	return append([]domain.Project{}, f.projects...), nil
}

func (f *fakeStore) CreateProject(ctx context.Context, p domain.Project) (domain.Project, error) {
	f.calls = append(f.calls, "create")
	if err := f.takeErr(); err != nil {
		return domain.Project{}, err
	}
	if p.ID == "" {
		p.ID = "generated"
	}
	f.projects = append(f.projects, p)
	return p, nil
}

func (f *fakeStore) UpdateProject(ctx context.Context, p domain.Project) error {
	f.calls = append(f.calls, "update")
	if err := f.takeErr(); err != nil {
		return err
	}
	for i := range f.projects {
		if f.projects[i].ID == p.ID {
			f.projects[i] = p
			return nil
		}
	}
	return &domain.StoreError{Op: "update", Collection: "projects", ID: p.ID, Err: errors.New("missing")}
}

func (f *fakeStore) DeleteProject(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delete")
	if err := f.takeErr(); err != nil {
		return err
	}
	for i := range f.projects {
		if f.projects[i].ID == id {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) takeErr() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func (f *fakeStore) writes() []string {
	var w []string
	for _, c := range f.calls {
		if c != "list" {
			w = append(w, c)
		}
	}
	return w
}

func newTestService(fs *fakeStore) *Service {
	return NewService(fs, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validForm() Form {
	return Form{Title: "Folio", TechStack: []string{"Go"}}
}

func TestFormFromProject_SeedsFieldForField(t *testing.T) {
	p := domain.Project{
		Title:       "Folio",
		Description: "site",
		Stack:       "React • Node",
		LiveURL:     "https://example.com",
		CodeURL:     "https://github.com/x",
		Image:       "img.png",
		Highlights:  []string{"fast"},
		CaseStudy:   &domain.CaseStudy{Challenge: "c", Solution: "s", Results: "r"},
	}

	f := FormFromProject(p)

	assert.Equal(t, "Folio", f.Title)
	assert.Equal(t, []string{"React", "Node"}, f.TechStack)
	assert.Equal(t, []string{"fast"}, f.Highlights)
	assert.Equal(t, "c", f.CaseStudy.Challenge)

	// Seeded highlights are a copy
	f.Highlights[0] = "slow"
	assert.Equal(t, "fast", p.Highlights[0])
}

func TestSave_EmptyTitleFailsWithoutWrites(t *testing.T) {
	fs := &fakeStore{}
	svc := newTestService(fs)

	_, err := svc.Save(context.Background(), Form{TechStack: []string{"Go"}}, "")

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "Subject and Tech required", err.Error())
	assert.Empty(t, fs.calls, "store must receive zero calls")
}

func TestSave_EmptyStackFailsWithoutWrites(t *testing.T) {
	fs := &fakeStore{}
	svc := newTestService(fs)

	_, err := svc.Save(context.Background(), Form{Title: "Folio"}, "")

	assert.True(t, domain.IsValidation(err))
	assert.Empty(t, fs.calls)
}

func TestSave_CreateAppendsToEnd(t *testing.T) {
	fs := &fakeStore{projects: []domain.Project{
		{ID: "a", Order: 0},
		{ID: "b", Order: 3}, // sparse after an earlier delete
	}}
	svc := newTestService(fs)

	projects, err := svc.Save(context.Background(), validForm(), "")
	require.NoError(t, err)

	assert.Equal(t, []string{"create"}, fs.writes())
	require.Len(t, projects, 3)
	assert.Equal(t, 2, projects[2].Order, "order is the count of existing records")
}

func TestSave_CreateDefaultsImageAndJoinsStack(t *testing.T) {
	fs := &fakeStore{}
	svc := newTestService(fs)

	form := Form{Title: "Folio", TechStack: []string{"React", "Node"}}
	projects, err := svc.Save(context.Background(), form, "")
	require.NoError(t, err)

	require.Len(t, projects, 1)
	assert.Equal(t, PlaceholderImage, projects[0].Image)
	assert.Equal(t, "React • Node", projects[0].Stack)
}

func TestSave_CreateKeepsExplicitImage(t *testing.T) {
	fs := &fakeStore{}
	svc := newTestService(fs)

	form := validForm()
	form.Image = "custom.png"
	projects, err := svc.Save(context.Background(), form, "")
	require.NoError(t, err)
	assert.Equal(t, "custom.png", projects[0].Image)
}

func TestSave_EditUpdatesInPlacePreservingOrder(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fs := &fakeStore{projects: []domain.Project{
		{ID: "p-1", Title: "Old", Order: 7, CreatedAt: created},
	}}
	svc := newTestService(fs)

	projects, err := svc.Save(context.Background(), validForm(), "p-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"update"}, fs.writes(), "exactly one update, zero creates")
	require.Len(t, projects, 1)
	assert.Equal(t, "Folio", projects[0].Title)
	assert.Equal(t, 7, projects[0].Order, "order preserved on edit")
	assert.Equal(t, created, projects[0].CreatedAt)
}

func TestSave_EditUnknownIDFails(t *testing.T) {
	fs := &fakeStore{}
	svc := newTestService(fs)

	_, err := svc.Save(context.Background(), validForm(), "ghost")

	require.Error(t, err)
	assert.Empty(t, fs.writes())
}

func TestSave_StoreFailureSurfacesToCaller(t *testing.T) {
	fs := &fakeStore{failNext: &domain.StoreError{Op: "list", Collection: "projects", Err: errors.New("down")}}
	svc := newTestService(fs)

	_, err := svc.Save(context.Background(), validForm(), "")

	var se *domain.StoreError
	require.ErrorAs(t, err, &se)
}

func TestDelete_DeleteThenRefetchInOrder(t *testing.T) {
	fs := &fakeStore{projects: []domain.Project{{ID: "p-1"}, {ID: "p-2"}}}
	svc := newTestService(fs)

	projects, err := svc.Delete(context.Background(), "p-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"delete", "list"}, fs.calls, "exactly one delete followed by one list")
	require.Len(t, projects, 1)
	assert.Equal(t, "p-2", projects[0].ID)
}

func TestDelete_FailureSkipsRefetch(t *testing.T) {
	fs := &fakeStore{failNext: errors.New("down")}
	svc := newTestService(fs)

	_, err := svc.Delete(context.Background(), "p-1")

	require.Error(t, err)
	assert.Equal(t, []string{"delete"}, fs.calls)
}

func TestTechTags(t *testing.T) {
	tags := AddTechTag(nil, "React")
	tags = AddTechTag(tags, "Node")
	tags = AddTechTag(tags, "React")
	assert.Equal(t, []string{"React", "Node", "React"}, tags, "no dedup")

	tags = RemoveTechTag(tags, "React")
	assert.Equal(t, []string{"Node", "React"}, tags, "first exact match removed")

	tags = RemoveTechTag(tags, "missing")
	assert.Equal(t, []string{"Node", "React"}, tags)
}
