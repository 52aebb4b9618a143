package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSortProjects_ByOrder(t *testing.T) {
	projects := []Project{
		{ID: "c", Order: 5},
		{ID: "a", Order: 0},
		{ID: "b", Order: 2},
	}

	sorted := SortProjects(projects)

	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", sorted[1].ID)
	assert.Equal(t, "c", sorted[2].ID)

	// Input untouched
	assert.Equal(t, "c", projects[0].ID)
}

func TestSortProjects_SparseOrders(t *testing.T) {
	// Orders left non-contiguous by deletions still sort correctly
	projects := []Project{
		{ID: "b", Order: 7},
		{ID: "a", Order: 1},
	}

	sorted := SortProjects(projects)
	assert.Equal(t, []string{"a", "b"}, []string{sorted[0].ID, sorted[1].ID})
}

func TestSortProjects_OrderTieBreaksOnCreation(t *testing.T) {
	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	projects := []Project{
		{ID: "new", Order: 3, CreatedAt: newer},
		{ID: "old", Order: 3, CreatedAt: older},
	}

	sorted := SortProjects(projects)
	assert.Equal(t, "old", sorted[0].ID)
}

func TestSortMessages_NewestFirst(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	messages := []Message{
		{ID: "oldest", ReceivedAt: base},
		{ID: "newest", ReceivedAt: base.Add(2 * time.Hour)},
		{ID: "middle", ReceivedAt: base.Add(time.Hour)},
	}

	sorted := SortMessages(messages)

	assert.Equal(t, "newest", sorted[0].ID)
	assert.Equal(t, "middle", sorted[1].ID)
	assert.Equal(t, "oldest", sorted[2].ID)
}
