package handler

import (
	"net/http"

	"github.com/devfolio/devfolio/internal/dto"
	"github.com/devfolio/devfolio/internal/service"
	"github.com/devfolio/devfolio/pkg/response"
	"github.com/devfolio/devfolio/pkg/validator"
	"github.com/gin-gonic/gin"
)

// ProjectHandler exposes project CRUD. Like the store it fronts, it performs
// no ownership checks: which user a write applies to is decided entirely by
// the client. See the open-question notes in DESIGN.md.
type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects := h.projectService.List(c.Request.Context(), c.Param("userId"))
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	project, err := h.projectService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input dto.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var input dto.ProjectUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.projectService.Update(c.Request.Context(), c.Param("id"), input); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ReorderProjects persists a full display sequence: each listed project's
// order becomes its index. All-or-nothing.
func (h *ProjectHandler) ReorderProjects(c *gin.Context) {
	var input dto.ReorderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.projectService.Reorder(c.Request.Context(), input.IDs); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
