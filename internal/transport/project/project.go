package project

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	pgproject "github.com/alanyang/promptdeck/internal/adapter/postgres/project"
	projectsvc "github.com/alanyang/promptdeck/internal/service/project"
)

// Register mounts the project endpoints. The project subsystem exists to
// drive the active-project context consumed by the prompt service.
func Register(rg *gin.RouterGroup, svc *projectsvc.Service) {
	rg.POST("/", createProject(svc))
	rg.GET("/", listProjects(svc))
	rg.GET("/active", activeProject(svc))
	rg.GET("/:id", getProject(svc))
	rg.PUT("/:id/activate", activateProject(svc))
	rg.DELETE("/:id", deleteProject(svc))
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, pgproject.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func projectIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return 0, false
	}
	return id, true
}

type createProjectReq struct {
	Name string `json:"name" binding:"required"`
}

func createProject(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProjectReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		p, err := svc.Create(c.Request.Context(), req.Name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func listProjects(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		projects, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, projects)
	}
}

func activeProject(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok, err := svc.Active(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active project"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func getProject(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := projectIDParam(c)
		if !ok {
			return
		}
		p, err := svc.GetByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func activateProject(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := projectIDParam(c)
		if !ok {
			return
		}
		p, err := svc.Activate(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func deleteProject(svc *projectsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := projectIDParam(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
