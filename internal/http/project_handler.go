package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/service"
)

// ProjectHandler mantiene dependencias para endpoints de proyectos.
type ProjectHandler struct {
	logger      *zap.Logger
	projectServ *service.ProjectService
}

func NewProjectHandler(logger *zap.Logger, projectServ *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		logger:      logger,
		projectServ: projectServ,
	}
}

// projectRequest es el cuerpo de create/update. Technologies acepta lista o
// string delimitado por comas; TechnologyList lo canonicaliza al decodificar.
type projectRequest struct {
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	ImageURL     string                `json:"imageURL"`
	Technologies domain.TechnologyList `json:"technologies"`
	LiveDemoLink string                `json:"liveDemoLink"`
	GithubLink   string                `json:"githubLink"`
}

func (r projectRequest) toInput() service.ProjectInput {
	return service.ProjectInput{
		Title:        r.Title,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Technologies: r.Technologies,
		LiveDemoLink: r.LiveDemoLink,
		GithubLink:   r.GithubLink,
	}
}

// List maneja GET /projects. Ruta pública.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectServ.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list projects failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Create maneja POST /projects. Requiere identidad (middleware).
func (h *ProjectHandler) Create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create project request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	project, err := h.projectServ.Create(c.Request.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("create project failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// Update maneja PUT /projects/:id.
func (h *ProjectHandler) Update(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid update project request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	project, err := h.projectServ.Update(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("update project failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update project"})
		}
		return
	}

	c.JSON(http.StatusOK, project)
}

// Delete maneja DELETE /projects/:id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectServ.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		h.logger.Error("delete project failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "project removed"})
}
