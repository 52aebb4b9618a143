package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mthorsen/folio/internal/domain"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS messages (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	email       TEXT NOT NULL,
	body        TEXT NOT NULL,
	seen        INTEGER NOT NULL DEFAULT 0,
	received_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS projects (
	id            TEXT PRIMARY KEY,
	title         TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	stack         TEXT NOT NULL DEFAULT '',
	live_url      TEXT NOT NULL DEFAULT '',
	code_url      TEXT NOT NULL DEFAULT '',
	image         TEXT NOT NULL DEFAULT '',
	highlights    TEXT NOT NULL DEFAULT '[]',
	challenge     TEXT NOT NULL DEFAULT '',
	solution      TEXT NOT NULL DEFAULT '',
	results       TEXT NOT NULL DEFAULT '',
	display_order INTEGER NOT NULL DEFAULT 0,
	created_at    TIMESTAMP NOT NULL
);
`

// SQLite implements Store on a local SQLite database via database/sql.
type SQLite struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() time.Time
}

// OpenSQLite opens (creating if needed) the database at path and
// bootstraps the schema. Use ":memory:" in tests.
func OpenSQLite(path string, logger *slog.Logger) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &domain.StoreError{Op: "open", Collection: "db", Err: err}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &domain.StoreError{Op: "migrate", Collection: "db", Err: err}
	}

	logger.Debug("sqlite store opened", "path", path)
	return &SQLite{db: db, logger: logger, now: time.Now}, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) ListMessages(ctx context.Context) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, body, seen, received_at
		FROM messages
		ORDER BY received_at DESC`)
	if err != nil {
		return nil, &domain.StoreError{Op: "list", Collection: "messages", Err: err}
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.Seen, &m.ReceivedAt); err != nil {
			return nil, &domain.StoreError{Op: "list", Collection: "messages", Err: err}
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "list", Collection: "messages", Err: err}
	}

	s.logger.Debug("listed messages", "count", len(messages))
	return messages, nil
}

func (s *SQLite) CreateMessage(ctx context.Context, msg domain.Message) (domain.Message, error) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.ReceivedAt.IsZero() {
		msg.ReceivedAt = s.now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (id, name, email, body, seen, received_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.Name, msg.Email, msg.Body, msg.Seen, msg.ReceivedAt)
	if err != nil {
		return domain.Message{}, &domain.StoreError{Op: "create", Collection: "messages", ID: msg.ID, Err: err}
	}

	s.logger.Debug("message stored", "id", msg.ID, "from", msg.Email)
	return msg, nil
}

func (s *SQLite) MarkMessageSeen(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE messages SET seen = 1 WHERE id = ?`, id)
	if err != nil {
		return &domain.StoreError{Op: "update", Collection: "messages", ID: id, Err: err}
	}
	return nil
}

func (s *SQLite) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, stack, live_url, code_url, image,
		       highlights, challenge, solution, results, display_order, created_at
		FROM projects
		ORDER BY display_order ASC, created_at ASC`)
	if err != nil {
		return nil, &domain.StoreError{Op: "list", Collection: "projects", Err: err}
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, &domain.StoreError{Op: "list", Collection: "projects", Err: err}
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "list", Collection: "projects", Err: err}
	}

	s.logger.Debug("listed projects", "count", len(projects))
	return projects, nil
}

func (s *SQLite) CreateProject(ctx context.Context, p domain.Project) (domain.Project, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now().UTC()
	}

	highlights, err := json.Marshal(p.Highlights)
	if err != nil {
		return domain.Project{}, &domain.StoreError{Op: "create", Collection: "projects", ID: p.ID, Err: err}
	}

	var challenge, solution, results string
	if p.CaseStudy != nil {
		challenge, solution, results = p.CaseStudy.Challenge, p.CaseStudy.Solution, p.CaseStudy.Results
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO projects (id, title, description, stack, live_url, code_url, image,
		                      highlights, challenge, solution, results, display_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, p.Stack, p.LiveURL, p.CodeURL, p.Image,
		string(highlights), challenge, solution, results, p.Order, p.CreatedAt)
	if err != nil {
		return domain.Project{}, &domain.StoreError{Op: "create", Collection: "projects", ID: p.ID, Err: err}
	}

	s.logger.Debug("project created", "id", p.ID, "title", p.Title)
	return p, nil
}

func (s *SQLite) UpdateProject(ctx context.Context, p domain.Project) error {
	highlights, err := json.Marshal(p.Highlights)
	if err != nil {
		return &domain.StoreError{Op: "update", Collection: "projects", ID: p.ID, Err: err}
	}

	var challenge, solution, results string
	if p.CaseStudy != nil {
		challenge, solution, results = p.CaseStudy.Challenge, p.CaseStudy.Solution, p.CaseStudy.Results
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE projects
		SET title = ?, description = ?, stack = ?, live_url = ?, code_url = ?, image = ?,
		    highlights = ?, challenge = ?, solution = ?, results = ?, display_order = ?
		WHERE id = ?`,
		p.Title, p.Description, p.Stack, p.LiveURL, p.CodeURL, p.Image,
		string(highlights), challenge, solution, results, p.Order, p.ID)
	if err != nil {
		return &domain.StoreError{Op: "update", Collection: "projects", ID: p.ID, Err: err}
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return &domain.StoreError{Op: "update", Collection: "projects", ID: p.ID, Err: sql.ErrNoRows}
	}

	s.logger.Debug("project updated", "id", p.ID)
	return nil
}

func (s *SQLite) DeleteProject(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return &domain.StoreError{Op: "delete", Collection: "projects", ID: id, Err: err}
	}

	s.logger.Debug("project deleted", "id", id)
	return nil
}

func scanProject(rows *sql.Rows) (domain.Project, error) {
	var p domain.Project
	var highlights, challenge, solution, results string

	err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Stack, &p.LiveURL, &p.CodeURL,
		&p.Image, &highlights, &challenge, &solution, &results, &p.Order, &p.CreatedAt)
	if err != nil {
		return domain.Project{}, err
	}

	if err := json.Unmarshal([]byte(highlights), &p.Highlights); err != nil {
		return domain.Project{}, err
	}

	if challenge != "" || solution != "" || results != "" {
		p.CaseStudy = &domain.CaseStudy{Challenge: challenge, Solution: solution, Results: results}
	}
	return p, nil
}
