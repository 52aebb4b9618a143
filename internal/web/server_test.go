package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mthorsen/folio/internal/auth"
	"github.com/mthorsen/folio/internal/content"
	"github.com/mthorsen/folio/internal/domain"
	"github.com/mthorsen/folio/internal/editor"
	"github.com/mthorsen/folio/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	messages []domain.Message
	projects []domain.Project
	fail     bool
}

func (f *fakeStore) ListMessages(ctx context.Context) ([]domain.Message, error) {
	if f.fail {
		return nil, errors.New("down")
	}
	return f.messages, nil
}

func (f *fakeStore) CreateMessage(ctx context.Context, m domain.Message) (domain.Message, error) {
	if f.fail {
		return domain.Message{}, errors.New("down")
	}
	m.ID = "m-1"
	m.ReceivedAt = time.Now()
	f.messages = append(f.messages, m)
	return m, nil
}

func (f *fakeStore) MarkMessageSeen(ctx context.Context, id string) error {
	for i := range f.messages {
		if f.messages[i].ID == id {
			f.messages[i].Seen = true
		}
	}
	return nil
}

func (f *fakeStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if f.fail {
		return nil, errors.New("down")
	}
	return append([]domain.Project{}, f.projects...), nil
}

func (f *fakeStore) CreateProject(ctx context.Context, p domain.Project) (domain.Project, error) {
	p.ID = "p-new"
	f.projects = append(f.projects, p)
	return p, nil
}

func (f *fakeStore) UpdateProject(ctx context.Context, p domain.Project) error {
	for i := range f.projects {
		if f.projects[i].ID == p.ID {
			f.projects[i] = p
			return nil
		}
	}
	return errors.New("missing")
}

func (f *fakeStore) DeleteProject(ctx context.Context, id string) error {
	for i := range f.projects {
		if f.projects[i].ID == id {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) Close() error { return nil }

// fakeNotifier records relayed messages; fail makes delivery error.
type fakeNotifier struct {
	relayed []domain.Message
	fail    bool
}

func (f *fakeNotifier) MessageReceived(ctx context.Context, msg domain.Message) error {
	if f.fail {
		return errors.New("telegram down")
	}
	f.relayed = append(f.relayed, msg)
	return nil
}

type testEnv struct {
	server   *Server
	store    *fakeStore
	notifier *fakeNotifier
	gate     *auth.Gate
}

func newTestEnv(t *testing.T, limit int) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fs := &fakeStore{}
	fn := &fakeNotifier{}
	gate := auth.NewGate("admin", "hunter2", logger)

	srv := NewServer(
		fs,
		editor.NewService(fs, logger),
		gate,
		ratelimit.New(limit, time.Minute),
		fn,
		content.Default(),
		logger,
	)
	return &testEnv{server: srv, store: fs, notifier: fn, gate: gate}
}

func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(w, req)
	return w
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	w := e.do(http.MethodPost, "/api/admin/login", "", gin.H{"username": "admin", "password": "hunter2"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func TestProfile(t *testing.T) {
	env := newTestEnv(t, 10)

	w := env.do(http.MethodGet, "/api/profile", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), content.Default().Profile.Name)
}

func TestListProjects_Public(t *testing.T) {
	env := newTestEnv(t, 10)
	env.store.projects = []domain.Project{
		{ID: "p-1", Title: "Terminal OS", Stack: "Go • SQLite"},
	}

	w := env.do(http.MethodGet, "/api/projects", "", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var out []projectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "terminal-os", out[0].Slug)
	assert.Equal(t, []string{"Go", "SQLite"}, out[0].Stack)
}

func TestGetProjectBySlug(t *testing.T) {
	env := newTestEnv(t, 10)
	env.store.projects = []domain.Project{{ID: "p-1", Title: "Terminal OS"}}

	w := env.do(http.MethodGet, "/api/projects/terminal-os", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/projects/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContact_StoresAndRelays(t *testing.T) {
	env := newTestEnv(t, 10)

	w := env.do(http.MethodPost, "/api/contact", "", gin.H{
		"name": "Ada", "email": "ada@example.com", "message": "Hi",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, env.store.messages, 1)
	assert.Equal(t, "Ada", env.store.messages[0].Name)
	require.Len(t, env.notifier.relayed, 1)
	assert.Equal(t, "m-1", env.notifier.relayed[0].ID)
}

func TestContact_MissingFields(t *testing.T) {
	env := newTestEnv(t, 10)

	w := env.do(http.MethodPost, "/api/contact", "", gin.H{"name": "Ada"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.store.messages)
}

func TestContact_BadEmail(t *testing.T) {
	env := newTestEnv(t, 10)

	w := env.do(http.MethodPost, "/api/contact", "", gin.H{
		"name": "Ada", "email": "not-an-email", "message": "Hi",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContact_RateLimited(t *testing.T) {
	env := newTestEnv(t, 1)

	body := gin.H{"name": "Ada", "email": "ada@example.com", "message": "Hi"}
	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/api/contact", "", body).Code)

	w := env.do(http.MethodPost, "/api/contact", "", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Len(t, env.store.messages, 1, "no write past the limit")
}

func TestContact_NotifyFailureDoesNotFailSubmission(t *testing.T) {
	env := newTestEnv(t, 10)
	env.notifier.fail = true

	w := env.do(http.MethodPost, "/api/contact", "", gin.H{
		"name": "Ada", "email": "ada@example.com", "message": "Hi",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, env.store.messages, 1)
}

func TestRoute_SPAFallback(t *testing.T) {
	env := newTestEnv(t, 10)

	w := env.do(http.MethodGet, "/cv", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"route":"cv"}`, w.Body.String())

	w = env.do(http.MethodGet, "/projects/terminal-os", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"route":"project","slug":"terminal-os"}`, w.Body.String())

	w = env.do(http.MethodGet, "/totally/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdmin_RequiresToken(t *testing.T) {
	env := newTestEnv(t, 10)

	w := env.do(http.MethodGet, "/api/admin/messages", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodGet, "/api/admin/messages", "bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdmin_LoginDeniedGenerically(t *testing.T) {
	env := newTestEnv(t, 10)

	wrongPass := env.do(http.MethodPost, "/api/admin/login", "", gin.H{"username": "admin", "password": "x"})
	wrongUser := env.do(http.MethodPost, "/api/admin/login", "", gin.H{"username": "x", "password": "hunter2"})

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, wrongPass.Body.String(), wrongUser.Body.String())
}

func TestAdmin_MessagesAndSeen(t *testing.T) {
	env := newTestEnv(t, 10)
	env.store.messages = []domain.Message{{ID: "m-1", Name: "Ada"}}
	token := env.login(t)

	w := env.do(http.MethodGet, "/api/admin/messages", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ada")

	w = env.do(http.MethodPost, "/api/admin/messages/m-1/seen", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.store.messages[0].Seen)
}

func TestAdmin_ProjectLifecycle(t *testing.T) {
	env := newTestEnv(t, 10)
	token := env.login(t)

	// Create
	w := env.do(http.MethodPost, "/api/admin/projects", token, gin.H{
		"title": "Folio", "techStack": []string{"Go"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.store.projects, 1)
	id := env.store.projects[0].ID

	// Update preserves order via editor
	w = env.do(http.MethodPut, "/api/admin/projects/"+id, token, gin.H{
		"title": "Folio v2", "techStack": []string{"Go", "SQLite"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Folio v2", env.store.projects[0].Title)

	// Delete
	w = env.do(http.MethodDelete, "/api/admin/projects/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.store.projects)
}

func TestAdmin_ProjectValidation(t *testing.T) {
	env := newTestEnv(t, 10)
	token := env.login(t)

	w := env.do(http.MethodPost, "/api/admin/projects", token, gin.H{"title": ""})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Subject and Tech required")
	assert.Empty(t, env.store.projects)
}

func TestAdmin_Logout(t *testing.T) {
	env := newTestEnv(t, 10)
	token := env.login(t)

	w := env.do(http.MethodPost, "/api/admin/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/admin/messages", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
