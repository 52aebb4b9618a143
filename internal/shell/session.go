// Package shell implements the line-oriented command interpreter behind
// the terminal easter egg. A Session owns a cursor into the static vfs
// tree and an append-only transcript; every command resolves synchronously
// before the next line is accepted.
package shell

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mthorsen/folio/internal/domain"
	"github.com/mthorsen/folio/internal/vfs"
)

// Effect signals a side effect outside the session's own state. Exit is
// the only command with one: it asks the embedding view to close.
type Effect int

const (
	EffectNone Effect = iota
	EffectExit
)

// Options configures a new Session.
type Options struct {
	Host    string   // prompt hostname, default "folio"
	Welcome []string // canned lines seeding the transcript
	Clock   func() time.Time
}

// Session is one terminal session. It is created when the terminal view
// opens and discarded when it closes; nothing persists.
type Session struct {
	root       *vfs.Node
	cursor     []string
	transcript []string
	host       string
	now        func() time.Time
}

// NewSession creates a session rooted at the top of the tree with the
// welcome transcript already in place.
func NewSession(root *vfs.Node, opts Options) *Session {
	if opts.Host == "" {
		opts.Host = "folio"
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	return &Session{
		root:       root,
		host:       opts.Host,
		now:        opts.Clock,
		transcript: append([]string{}, opts.Welcome...),
	}
}

// Prompt renders the current prompt string.
func (s *Session) Prompt() string {
	path := "~"
	if len(s.cursor) > 0 {
		path = "~/" + strings.Join(s.cursor, "/")
	}
	return fmt.Sprintf("guest@%s:%s$", s.host, path)
}

// Transcript returns the display lines accumulated so far.
func (s *Session) Transcript() []string {
	return s.transcript
}

// Cursor returns the current path segments (empty at root).
func (s *Session) Cursor() []string {
	return s.cursor
}

// Exec runs one line of input against the session. Empty input is a
// no-op. Every other line is echoed with the prompt before its output,
// except clear which discards the transcript instead.
func (s *Session) Exec(line string) Effect {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return EffectNone
	}

	fields := strings.Fields(trimmed)
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	if cmd == "clear" {
		s.transcript = nil
		return EffectNone
	}

	s.append(s.Prompt() + " " + trimmed)

	switch cmd {
	case "help":
		s.runHelp()
	case "exit":
		return EffectExit
	case "whoami":
		s.append("guest")
	case "date":
		s.append(s.now().Format("Mon Jan 2 15:04:05 MST 2006"))
	case "ls":
		s.runLs()
	case "cd":
		s.runCd(args)
	case "cat":
		s.runCat(args)
	case "sudo":
		s.append("Permission denied: You are not an admin.")
	default:
		s.append("command not found: " + fields[0])
	}

	return EffectNone
}

func (s *Session) append(lines ...string) {
	s.transcript = append(s.transcript, lines...)
}

func (s *Session) runHelp() {
	s.append(
		"Available commands:",
		"  help          show this help",
		"  ls            list directory contents",
		"  cd [dir]      change directory (.. to go up, / for root)",
		"  cat <file>    print file contents",
		"  whoami        print current user",
		"  date          print current date and time",
		"  clear         clear the screen",
		"  exit          close the terminal",
	)
}

func (s *Session) runLs() {
	dir, err := vfs.Resolve(s.root, s.cursor)
	if err != nil {
		// Cursor only ever holds resolvable paths; treat as empty.
		return
	}
	if entries := vfs.List(dir); len(entries) > 0 {
		s.append(strings.Join(entries, "  "))
	}
}

func (s *Session) runCd(args []string) {
	target := ""
	if len(args) > 0 {
		target = args[0]
	}

	cursor, err := vfs.ChangeDir(s.root, s.cursor, target)
	if err != nil {
		s.append("cd: no such directory: " + target)
		return
	}
	s.cursor = cursor
}

func (s *Session) runCat(args []string) {
	if len(args) == 0 {
		s.append("usage: cat <file>")
		return
	}

	content, err := vfs.ReadFile(s.root, s.cursor, args[0])
	switch {
	case errors.Is(err, domain.ErrIsADirectory):
		s.append("cat: " + args[0] + ": Is a directory")
	case err != nil:
		s.append("cat: " + args[0] + ": No such file")
	default:
		s.append(strings.Split(content, "\n")...)
	}
}
