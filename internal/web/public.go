package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mthorsen/folio/internal/domain"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type projectResponse struct {
	ID          string            `json:"id"`
	Slug        string            `json:"slug"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Stack       []string          `json:"stack"`
	LiveURL     string            `json:"liveUrl,omitempty"`
	CodeURL     string            `json:"codeUrl,omitempty"`
	Image       string            `json:"image"`
	Highlights  []string          `json:"highlights,omitempty"`
	CaseStudy   *domain.CaseStudy `json:"caseStudy,omitempty"`
	Order       int               `json:"order"`
}

func toProjectResponse(p domain.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Slug:        p.Slug(),
		Title:       p.Title,
		Description: p.Description,
		Stack:       domain.ParseStack(p.Stack),
		LiveURL:     p.LiveURL,
		CodeURL:     p.CodeURL,
		Image:       p.Image,
		Highlights:  p.Highlights,
		CaseStudy:   p.CaseStudy,
		Order:       p.Order,
	}
}

func (s *Server) handleProfile(c *gin.Context) {
	cnt := s.getContent()
	c.JSON(http.StatusOK, gin.H{
		"name":     cnt.Profile.Name,
		"tagline":  cnt.Profile.Tagline,
		"about":    cnt.Profile.About,
		"email":    cnt.Profile.Email,
		"location": cnt.Profile.Location,
		"skills":   cnt.Skills,
	})
}

func (s *Server) handleListProjects(c *gin.Context) {
	projects, err := s.store.ListProjects(c.Request.Context())
	if err != nil {
		s.logger.Error("list projects failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load projects"})
		return
	}

	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetProject(c *gin.Context) {
	slug := c.Param("slug")

	projects, err := s.store.ListProjects(c.Request.Context())
	if err != nil {
		s.logger.Error("list projects failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load projects"})
		return
	}

	for _, p := range projects {
		if p.Slug() == slug {
			c.JSON(http.StatusOK, toProjectResponse(p))
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
}

func (s *Server) handleContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and message are required"})
		return
	}
	if !strings.Contains(req.Email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email address"})
		return
	}

	if !s.limiter.TryAcquire() {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many messages, try again later"})
		return
	}

	msg, err := s.store.CreateMessage(c.Request.Context(), domain.Message{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Body:  req.Message,
	})
	if err != nil {
		s.logger.Error("store message failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	// Best-effort relay; a failed notification never fails the submission.
	if err := s.notifier.MessageReceived(c.Request.Context(), msg); err != nil {
		s.logger.Warn("notification relay failed", "error", err)
	}

	c.JSON(http.StatusCreated, gin.H{"status": "sent"})
}
