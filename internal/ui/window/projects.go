package window

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mthorsen/folio/internal/domain"
	"github.com/mthorsen/folio/internal/ui/styles"
)

// Projects lists portfolio projects in display order.
type Projects struct {
	projects []domain.Project
	cursor   int
	styles   *styles.Styles
}

// NewProjects creates a project list view.
func NewProjects(projects []domain.Project, st *styles.Styles) *Projects {
	return &Projects{
		projects: domain.SortProjects(projects),
		styles:   st,
	}
}

// SetProjects replaces the project list, clamping the cursor.
func (v *Projects) SetProjects(projects []domain.Project) {
	v.projects = domain.SortProjects(projects)
	if v.cursor >= len(v.projects) {
		v.cursor = len(v.projects) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *Projects) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if v.cursor < len(v.projects)-1 {
				v.cursor++
			}
			return v, nil

		case "k", "up":
			if v.cursor > 0 {
				v.cursor--
			}
			return v, nil

		case "enter", "e":
			if len(v.projects) == 0 {
				return v, nil
			}
			selected := v.projects[v.cursor]
			return v, func() tea.Msg { return EditProjectMsg{Project: selected} }

		case "n":
			return v, func() tea.Msg { return ComposeNewMsg{} }

		case "d":
			if len(v.projects) == 0 {
				return v, nil
			}
			selected := v.projects[v.cursor]
			return v, func() tea.Msg { return DeleteProjectMsg{Project: selected} }

		case "q", "esc":
			return v, func() tea.Msg { return CloseSelfMsg{} }
		}
	}

	return v, nil
}

func (v *Projects) View(width int) string {
	if len(v.projects) == 0 {
		return v.styles.Muted.Render("No projects yet. Press n to compose one.")
	}

	var b strings.Builder
	for i, p := range v.projects {
		style := v.styles.ListItem
		if i == v.cursor {
			style = v.styles.ListItemActive
		}
		b.WriteString(style.Render(fmt.Sprintf("%2d  %s", p.Order, p.Title)))
		b.WriteString("\n")

		tags := domain.ParseStack(p.Stack)
		if len(tags) > 0 {
			var chips []string
			for _, tag := range tags {
				chips = append(chips, v.styles.Chip.Render(tag))
			}
			b.WriteString("    " + strings.Join(chips, " "))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func (v *Projects) Title() string {
	return fmt.Sprintf("Projects (%d)", len(v.projects))
}
