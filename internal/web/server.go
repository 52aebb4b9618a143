// Package web serves the public portfolio API and the token-gated admin
// API. The handlers are thin: validation and rate limiting up front, then
// a call into the store or the record editor.
package web

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/mthorsen/folio/internal/auth"
	"github.com/mthorsen/folio/internal/content"
	"github.com/mthorsen/folio/internal/domain"
	"github.com/mthorsen/folio/internal/editor"
	"github.com/mthorsen/folio/internal/notify"
	"github.com/mthorsen/folio/internal/ratelimit"
	"github.com/mthorsen/folio/internal/store"
)

// Server wires the HTTP surface together.
type Server struct {
	engine   *gin.Engine
	store    store.Store
	editor   *editor.Service
	gate     *auth.Gate
	limiter  *ratelimit.Limiter
	notifier notify.Notifier
	logger   *slog.Logger

	mu      sync.RWMutex
	content content.Content
}

// NewServer builds the router over the given collaborators.
func NewServer(
	st store.Store,
	ed *editor.Service,
	gate *auth.Gate,
	limiter *ratelimit.Limiter,
	notifier notify.Notifier,
	c content.Content,
	logger *slog.Logger,
) *Server {
	s := &Server{
		store:    st,
		editor:   ed,
		gate:     gate,
		limiter:  limiter,
		notifier: notifier,
		content:  c,
		logger:   logger,
	}

	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/profile", s.handleProfile)
		api.GET("/projects", s.handleListProjects)
		api.GET("/projects/:slug", s.handleGetProject)
		api.POST("/contact", s.handleContact)

		api.POST("/admin/login", s.handleLogin)
		api.POST("/admin/logout", s.handleLogout)

		admin := api.Group("/admin", s.requireAdmin())
		{
			admin.GET("/messages", s.handleListMessages)
			admin.POST("/messages/:id/seen", s.handleMarkSeen)
			admin.GET("/projects", s.handleAdminListProjects)
			admin.POST("/projects", s.handleCreateProject)
			admin.PUT("/projects/:id", s.handleUpdateProject)
			admin.DELETE("/projects/:id", s.handleDeleteProject)
		}
	}

	// The SPA routes by pathname; everything else resolves to a view
	// kind the client hydrates.
	r.NoRoute(s.handleRoute)

	s.engine = r
	return s
}

// Handler exposes the router for tests and for http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP server on addr.
func (s *Server) Run(addr string) error {
	s.logger.Info("serving", "addr", addr)
	return s.engine.Run(addr)
}

// SetContent swaps in freshly reloaded site content.
func (s *Server) SetContent(c content.Content) {
	s.mu.Lock()
	s.content = c
	s.mu.Unlock()
}

func (s *Server) getContent() content.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}

// handleRoute parses the request path into an SPA route descriptor.
func (s *Server) handleRoute(c *gin.Context) {
	route := domain.ParseRoute(c.Request.URL.Path)
	if route.Kind == domain.RouteNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	resp := gin.H{"route": route.Kind.String()}
	if route.Slug != "" {
		resp["slug"] = route.Slug
	}
	c.JSON(http.StatusOK, resp)
}
