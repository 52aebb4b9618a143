package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mthorsen/folio/internal/domain"
	"github.com/mthorsen/folio/internal/editor"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type projectForm struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	TechStack   []string         `json:"techStack"`
	LiveURL     string           `json:"liveUrl"`
	CodeURL     string           `json:"codeUrl"`
	Image       string           `json:"image"`
	Highlights  []string         `json:"highlights"`
	CaseStudy   domain.CaseStudy `json:"caseStudy"`
}

func (f projectForm) toForm() editor.Form {
	return editor.Form{
		Title:       f.Title,
		Description: f.Description,
		TechStack:   f.TechStack,
		LiveURL:     f.LiveURL,
		CodeURL:     f.CodeURL,
		Image:       f.Image,
		Highlights:  f.Highlights,
		CaseStudy:   f.CaseStudy,
	}
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	token, err := s.gate.Login(req.Username, req.Password)
	if err != nil {
		// One generic message for every failure mode.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) handleLogout(c *gin.Context) {
	s.gate.Logout(bearerToken(c))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.gate.Valid(bearerToken(c)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return token
}

func (s *Server) handleListMessages(c *gin.Context) {
	messages, err := s.store.ListMessages(c.Request.Context())
	if err != nil {
		s.logger.Error("list messages failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	c.JSON(http.StatusOK, messages)
}

func (s *Server) handleMarkSeen(c *gin.Context) {
	if err := s.store.MarkMessageSeen(c.Request.Context(), c.Param("id")); err != nil {
		s.logger.Error("mark seen failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update message"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleAdminListProjects(c *gin.Context) {
	projects, err := s.editor.List(c.Request.Context())
	if err != nil {
		s.logger.Error("list projects failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load projects"})
		return
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	c.JSON(http.StatusOK, projects)
}

func (s *Server) handleCreateProject(c *gin.Context) {
	s.saveProject(c, "")
}

func (s *Server) handleUpdateProject(c *gin.Context) {
	s.saveProject(c, c.Param("id"))
}

func (s *Server) saveProject(c *gin.Context, editingID string) {
	var form projectForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project payload"})
		return
	}

	projects, err := s.editor.Save(c.Request.Context(), form.toForm(), editingID)
	if err != nil {
		if domain.IsValidation(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		s.logger.Error("save project failed", "error", err, "id", editingID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save project"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (s *Server) handleDeleteProject(c *gin.Context) {
	projects, err := s.editor.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.logger.Error("delete project failed", "error", err, "id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}
	c.JSON(http.StatusOK, projects)
}
