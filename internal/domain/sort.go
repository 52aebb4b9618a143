package domain

import "sort"

// SortProjects orders projects ascending by their display order, with
// creation time as a tiebreak so records sharing an order value render
// stably. Returns a new slice; the input is not modified.
func SortProjects(projects []Project) []Project {
	sorted := make([]Project, len(projects))
	copy(sorted, projects)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}

// SortMessages orders messages newest first.
func SortMessages(messages []Message) []Message {
	sorted := make([]Message, len(messages))
	copy(sorted, messages)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReceivedAt.After(sorted[j].ReceivedAt)
	})
	return sorted
}
