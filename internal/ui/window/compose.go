package window

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mthorsen/folio/internal/editor"
	"github.com/mthorsen/folio/internal/ui/styles"
)

const (
	focusTitle = iota
	focusDescription
	focusTech
	focusLiveURL
	focusCodeURL
	focusImage
	focusHighlights
	focusChallenge
	focusSolution
	focusResults
	focusSubmit
	focusCount
)

// Compose is the project editor form. It is seeded once from a form
// snapshot when the window opens; nothing reaches the store until the
// desktop receives a SaveFormMsg.
type Compose struct {
	title       textinput.Model
	description textarea.Model
	tech        textinput.Model
	liveURL     textinput.Model
	codeURL     textinput.Model
	image       textinput.Model
	highlights  textarea.Model
	challenge   textarea.Model
	solution    textarea.Model
	results     textarea.Model

	techStack  []string
	editingID  string
	focusIndex int
	errText    string
	styles     *styles.Styles
}

// NewCompose creates a compose window seeded from the given form.
// editingID is empty when composing a new project.
func NewCompose(form editor.Form, editingID string, st *styles.Styles) *Compose {
	input := func(placeholder, value string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 200
		ti.Width = 50
		ti.SetValue(value)
		return ti
	}
	area := func(placeholder, value string, height int) textarea.Model {
		ta := textarea.New()
		ta.Placeholder = placeholder
		ta.CharLimit = 4000
		ta.SetWidth(50)
		ta.SetHeight(height)
		ta.SetValue(value)
		return ta
	}

	c := &Compose{
		title:       input("Project title...", form.Title),
		description: area("What it is and why it exists...", form.Description, 3),
		tech:        input("Add a tag, Enter to commit...", ""),
		liveURL:     input("https://...", form.LiveURL),
		codeURL:     input("https://github.com/...", form.CodeURL),
		image:       input("Image URL (blank for placeholder)...", form.Image),
		highlights:  area("One highlight per line...", strings.Join(form.Highlights, "\n"), 3),
		challenge:   area("Case study: the challenge...", form.CaseStudy.Challenge, 2),
		solution:    area("Case study: the solution...", form.CaseStudy.Solution, 2),
		results:     area("Case study: the results...", form.CaseStudy.Results, 2),
		techStack:   append([]string{}, form.TechStack...),
		editingID:   editingID,
		styles:      st,
	}
	c.title.Focus()
	return c
}

// Editing reports whether the form edits an existing record.
func (c *Compose) Editing() bool {
	return c.editingID != ""
}

// SetError displays a validation failure inline.
func (c *Compose) SetError(text string) {
	c.errText = text
}

// Form assembles the current field values into an editor form.
func (c *Compose) Form() editor.Form {
	var highlights []string
	for _, line := range strings.Split(c.highlights.Value(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			highlights = append(highlights, line)
		}
	}

	form := editor.Form{
		Title:       strings.TrimSpace(c.title.Value()),
		Description: strings.TrimSpace(c.description.Value()),
		TechStack:   append([]string{}, c.techStack...),
		LiveURL:     strings.TrimSpace(c.liveURL.Value()),
		CodeURL:     strings.TrimSpace(c.codeURL.Value()),
		Image:       strings.TrimSpace(c.image.Value()),
		Highlights:  highlights,
	}
	form.CaseStudy.Challenge = strings.TrimSpace(c.challenge.Value())
	form.CaseStudy.Solution = strings.TrimSpace(c.solution.Value())
	form.CaseStudy.Results = strings.TrimSpace(c.results.Value())
	return form
}

func (c *Compose) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return c, func() tea.Msg { return CloseSelfMsg{} }

		case "ctrl+s":
			return c, c.submit()

		case "tab", "shift+tab":
			if msg.String() == "tab" {
				c.focusIndex = (c.focusIndex + 1) % focusCount
			} else {
				c.focusIndex = (c.focusIndex - 1 + focusCount) % focusCount
			}
			c.syncFocus()
			return c, nil

		case "enter":
			switch c.focusIndex {
			case focusSubmit:
				return c, c.submit()
			case focusTech:
				if tag := strings.TrimSpace(c.tech.Value()); tag != "" {
					c.techStack = editor.AddTechTag(c.techStack, tag)
					c.tech.SetValue("")
				}
				return c, nil
			}
			// Textareas take the newline themselves.

		case "backspace":
			if c.focusIndex == focusTech && c.tech.Value() == "" && len(c.techStack) > 0 {
				c.techStack = editor.RemoveTechTag(c.techStack, c.techStack[len(c.techStack)-1])
				return c, nil
			}
		}
	}

	return c, c.updateFocused(msg)
}

func (c *Compose) submit() tea.Cmd {
	form := c.Form()
	id := c.editingID
	return func() tea.Msg {
		return SaveFormMsg{Form: form, EditingID: id}
	}
}

func (c *Compose) syncFocus() {
	c.title.Blur()
	c.description.Blur()
	c.tech.Blur()
	c.liveURL.Blur()
	c.codeURL.Blur()
	c.image.Blur()
	c.highlights.Blur()
	c.challenge.Blur()
	c.solution.Blur()
	c.results.Blur()

	switch c.focusIndex {
	case focusTitle:
		c.title.Focus()
	case focusDescription:
		c.description.Focus()
	case focusTech:
		c.tech.Focus()
	case focusLiveURL:
		c.liveURL.Focus()
	case focusCodeURL:
		c.codeURL.Focus()
	case focusImage:
		c.image.Focus()
	case focusHighlights:
		c.highlights.Focus()
	case focusChallenge:
		c.challenge.Focus()
	case focusSolution:
		c.solution.Focus()
	case focusResults:
		c.results.Focus()
	}
}

func (c *Compose) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch c.focusIndex {
	case focusTitle:
		c.title, cmd = c.title.Update(msg)
	case focusDescription:
		c.description, cmd = c.description.Update(msg)
	case focusTech:
		c.tech, cmd = c.tech.Update(msg)
	case focusLiveURL:
		c.liveURL, cmd = c.liveURL.Update(msg)
	case focusCodeURL:
		c.codeURL, cmd = c.codeURL.Update(msg)
	case focusImage:
		c.image, cmd = c.image.Update(msg)
	case focusHighlights:
		c.highlights, cmd = c.highlights.Update(msg)
	case focusChallenge:
		c.challenge, cmd = c.challenge.Update(msg)
	case focusSolution:
		c.solution, cmd = c.solution.Update(msg)
	case focusResults:
		c.results, cmd = c.results.Update(msg)
	}
	return cmd
}

func (c *Compose) View(width int) string {
	var b strings.Builder

	label := func(index int, text string) string {
		if c.focusIndex == index {
			return c.styles.FieldFocused.Render(text)
		}
		return c.styles.FieldLabel.Render(text)
	}

	if c.errText != "" {
		b.WriteString(c.styles.ToastError.Render(c.errText))
		b.WriteString("\n\n")
	}

	b.WriteString(label(focusTitle, "Subject:") + "  " + c.title.View() + "\n\n")

	b.WriteString(label(focusDescription, "Description:") + "\n")
	b.WriteString(c.description.View() + "\n\n")

	b.WriteString(label(focusTech, "Tech:") + "  " + c.tech.View() + "\n")
	if len(c.techStack) > 0 {
		var chips []string
		for _, tag := range c.techStack {
			chips = append(chips, c.styles.Chip.Render(tag))
		}
		b.WriteString("              " + strings.Join(chips, " ") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(label(focusLiveURL, "Live URL:") + "  " + c.liveURL.View() + "\n")
	b.WriteString(label(focusCodeURL, "Code URL:") + "  " + c.codeURL.View() + "\n")
	b.WriteString(label(focusImage, "Image:") + "  " + c.image.View() + "\n\n")

	b.WriteString(label(focusHighlights, "Highlights:") + "\n")
	b.WriteString(c.highlights.View() + "\n\n")

	b.WriteString(label(focusChallenge, "Challenge:") + "\n")
	b.WriteString(c.challenge.View() + "\n")
	b.WriteString(label(focusSolution, "Solution:") + "\n")
	b.WriteString(c.solution.View() + "\n")
	b.WriteString(label(focusResults, "Results:") + "\n")
	b.WriteString(c.results.View() + "\n\n")

	b.WriteString(c.styles.Separator.Render(strings.Repeat("─", 50)))
	b.WriteString("\n\n")

	submit := "[ Create Project ]"
	if c.Editing() {
		submit = "[ Save Changes ]"
	}
	submitStyle := c.styles.MenuItem
	if c.focusIndex == focusSubmit {
		submitStyle = c.styles.MenuItemActive
	}
	b.WriteString(submitStyle.Render(submit))
	b.WriteString("\n\n")

	hints := []string{
		c.styles.MenuKey.Render("Tab") + " " + c.styles.StatusHint.Render("Switch fields"),
		c.styles.MenuKey.Render("Ctrl+S") + " " + c.styles.StatusHint.Render("Save"),
		c.styles.MenuKey.Render("Esc") + " " + c.styles.StatusHint.Render("Close"),
	}
	b.WriteString(c.styles.StatusHint.Render(strings.Join(hints, " • ")))

	return b.String()
}

func (c *Compose) Title() string {
	if c.Editing() {
		return "Edit Project"
	}
	return "New Project"
}
