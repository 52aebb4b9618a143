// Package content holds the authored site copy: the profile shown on the
// public pages and the material exposed through the terminal's file tree.
// Content is loaded from a TOML file with built-in defaults as fallback.
package content

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mthorsen/folio/internal/domain"
	"github.com/mthorsen/folio/internal/vfs"
)

// Content is the authored site copy.
type Content struct {
	Profile  Profile  `toml:"profile"`
	Skills   []string `toml:"skills"`
	Terminal Terminal `toml:"terminal"`
}

// Profile is the biography block.
type Profile struct {
	Name     string `toml:"name"`
	Tagline  string `toml:"tagline"`
	About    string `toml:"about"`
	Email    string `toml:"email"`
	Location string `toml:"location"`
}

// Terminal configures the easter-egg shell.
type Terminal struct {
	Host    string   `toml:"host"`
	Welcome []string `toml:"welcome"`
}

// Default returns the built-in content used when no file is configured.
func Default() Content {
	return Content{
		Profile: Profile{
			Name:     "M. Thorsen",
			Tagline:  "Software engineer. I build small, fast things.",
			About:    "I build software that is useful first and clever second.\nMost projects here started as a weekend idea that refused to stay small.",
			Email:    "hello@example.dev",
			Location: "Remote",
		},
		Skills: []string{"Go", "SQLite", "TypeScript", "Linux"},
		Terminal: Terminal{
			Host: "folio",
			Welcome: []string{
				"Welcome to folio terminal.",
				"Type 'help' for a list of commands.",
			},
		},
	}
}

// Load reads content from a TOML file, merging missing sections from the
// defaults. An empty path returns the defaults unchanged.
func Load(path string) (Content, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("read content file: %w", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return Content{}, fmt.Errorf("parse content file: %w", err)
	}

	if c.Terminal.Host == "" {
		c.Terminal.Host = Default().Terminal.Host
	}
	return c, nil
}

// FileTree builds the terminal's virtual filesystem. The top level is
// fixed (about.txt, contact.md, skills.json, projects/); project files
// are named by slug and rendered as short markdown summaries.
func (c Content) FileTree(projects []domain.Project) *vfs.Node {
	projectNodes := make([]*vfs.Node, 0, len(projects))
	for _, p := range projects {
		projectNodes = append(projectNodes, vfs.File(p.Slug()+".md", renderProject(p)))
	}

	return vfs.Dir("",
		vfs.File("about.txt", c.Profile.About),
		vfs.File("contact.md", renderContact(c.Profile)),
		vfs.File("skills.json", renderSkills(c.Skills)),
		vfs.Dir("projects", projectNodes...),
	)
}

func renderContact(p Profile) string {
	return fmt.Sprintf("# Contact\n\nemail: %s\nlocation: %s", p.Email, p.Location)
}

func renderSkills(skills []string) string {
	data, err := json.MarshalIndent(skills, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}

func renderProject(p domain.Project) string {
	out := fmt.Sprintf("# %s\n\n%s\n\nstack: %s", p.Title, p.Description, p.Stack)
	if p.LiveURL != "" {
		out += "\nlive: " + p.LiveURL
	}
	if p.CodeURL != "" {
		out += "\ncode: " + p.CodeURL
	}
	return out
}
