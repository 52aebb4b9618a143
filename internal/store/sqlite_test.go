package store

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mthorsen/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := OpenSQLite(":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMessages_CreateAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateMessage(ctx, domain.Message{
		Name:       "Ada",
		Email:      "ada@example.com",
		Body:       "Hi there",
		ReceivedAt: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID, "store assigns the id")

	second, err := s.CreateMessage(ctx, domain.Message{
		Name:       "Grace",
		Email:      "grace@example.com",
		Body:       "Hello",
		ReceivedAt: time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	messages, err := s.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	// Newest first
	assert.Equal(t, second.ID, messages[0].ID)
	assert.Equal(t, first.ID, messages[1].ID)
	assert.False(t, messages[0].Seen)
}

func TestMessages_AssignsReceivedAt(t *testing.T) {
	s := newTestStore(t)

	msg, err := s.CreateMessage(context.Background(), domain.Message{Name: "Ada", Email: "a@b.c", Body: "hi"})
	require.NoError(t, err)
	assert.False(t, msg.ReceivedAt.IsZero())
}

func TestMessages_MarkSeen(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	msg, err := s.CreateMessage(ctx, domain.Message{Name: "Ada", Email: "a@b.c", Body: "hi"})
	require.NoError(t, err)

	require.NoError(t, s.MarkMessageSeen(ctx, msg.ID))

	messages, err := s.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].Seen)
}

func TestProjects_CRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateProject(ctx, domain.Project{
		Title:       "Folio",
		Description: "This site",
		Stack:       "Go • SQLite",
		Highlights:  []string{"fast", "small"},
		CaseStudy:   &domain.CaseStudy{Challenge: "hard", Solution: "code", Results: "done"},
		Order:       0,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	projects, err := s.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	got := projects[0]
	assert.Equal(t, "Folio", got.Title)
	assert.Equal(t, []string{"fast", "small"}, got.Highlights)
	require.NotNil(t, got.CaseStudy)
	assert.Equal(t, "hard", got.CaseStudy.Challenge)

	got.Title = "Folio v2"
	got.CaseStudy = nil
	require.NoError(t, s.UpdateProject(ctx, got))

	projects, err = s.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Folio v2", projects[0].Title)
	assert.Nil(t, projects[0].CaseStudy)

	require.NoError(t, s.DeleteProject(ctx, got.ID))

	projects, err = s.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestProjects_ListOrdersByDisplayOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, p := range []domain.Project{
		{Title: "third", Order: 9},
		{Title: "first", Order: 0},
		{Title: "second", Order: 4},
	} {
		_, err := s.CreateProject(ctx, p)
		require.NoError(t, err)
	}

	projects, err := s.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)

	assert.Equal(t, "first", projects[0].Title)
	assert.Equal(t, "second", projects[1].Title)
	assert.Equal(t, "third", projects[2].Title)
}

func TestProjects_UpdateMissingFails(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateProject(context.Background(), domain.Project{ID: "ghost", Title: "x"})
	require.Error(t, err)

	var se *domain.StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "update", se.Op)
	assert.Equal(t, "projects", se.Collection)
}
