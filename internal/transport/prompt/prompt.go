package prompt

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainprompt "github.com/alanyang/promptdeck/internal/domain/prompt"
	pagesvc "github.com/alanyang/promptdeck/internal/service/page"
	promptsvc "github.com/alanyang/promptdeck/internal/service/prompt"
)

// hxTriggerBlueprints is the client-side event fired when the blueprint
// prompt changes, so the hypermedia UI refreshes the catalog partial.
const hxTriggerBlueprints = "refreshBlueprints"

// Register mounts the prompt endpoints on the given router group. The
// handlers translate between serialized requests and service calls; all
// rules live in the services.
func Register(rg *gin.RouterGroup, svc *promptsvc.Service, pages *pagesvc.Service) {
	rg.GET("/new/global", newGlobalForm(pages))
	rg.GET("/new/project", newProjectForm(pages))
	rg.GET("/global/list", globalList(pages))
	rg.GET("/project/list", projectList(pages))
	rg.GET("/page", fullPage(pages))

	rg.POST("/global", createGlobal(svc, pages))
	rg.POST("/project", createProject(svc, pages))

	rg.GET("/global/:id/view", viewPrompt(pages))
	rg.GET("/project/:id/view", viewPrompt(pages))
	rg.GET("/global/:id/edit", editForm(pages))
	rg.GET("/project/:id/edit", editForm(pages))
	rg.PUT("/global/:id", updatePrompt(svc, pages))
	rg.PUT("/project/:id", updatePrompt(svc, pages))
	rg.DELETE("/global/:id", deletePrompt(svc, http.StatusNoContent))
	rg.DELETE("/project/:id", deletePrompt(svc, http.StatusOK))

	rg.POST("/:id/toggle-attachment", toggleAttachment(svc, pages))

	rg.GET("/blueprint/list", blueprintList(pages))
	rg.POST("/from-blueprint", fromBlueprint(svc, pages))
	rg.DELETE("/blueprint-prompt", deleteBlueprint(svc))
}

// respondError maps the domain error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainprompt.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domainprompt.ErrActiveProjectRequired),
		errors.Is(err, domainprompt.ErrAlreadyExists),
		errors.Is(err, domainprompt.ErrUnsupportedType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func promptID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid prompt id"})
		return 0, false
	}
	return id, true
}

func newGlobalForm(pages *pagesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, pages.NewGlobalForm())
	}
}

func newProjectForm(pages *pagesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := pages.NewProjectForm(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, form)
	}
}

func globalList(pages *pagesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := pages.GlobalList(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func projectList(pages *pagesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := pages.ProjectList(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func fullPage(pages *pagesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := pages.Page(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

type createPromptReq struct {
	Name    string `json:"name" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func createGlobal(svc *promptsvc.Service, pages *pagesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPromptReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := svc.CreateGlobal(c.Request.Context(), promptsvc.CreateInput{Name: req.Name, Content: req.Content})
		if err != nil {
			respondError(c, err)
			return
		}
		item, err := pages.View(c.Request.Context(), created.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func createProject(svc *promptsvc.Service, pages *pagesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPromptReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := svc.CreateProject(c.Request.Context(), promptsvc.CreateInput{Name: req.Name, Content: req.Content})
		if err != nil {
			respondError(c, err)
			return
		}
		item, err := pages.View(c.Request.Context(), created.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func viewPrompt(pages *pagesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := promptID(c)
		if !ok {
			return
		}
		item, err := pages.View(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func editForm(pages *pagesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := promptID(c)
		if !ok {
			return
		}
		form, err := pages.EditForm(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, form)
	}
}

type updatePromptReq struct {
	Name    *string `json:"name"`
	Content *string `json:"content"`
}

func updatePrompt(svc *promptsvc.Service, pages *pagesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := promptID(c)
		if !ok {
			return
		}
		var req updatePromptReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		_, err := svc.Update(c.Request.Context(), id, domainprompt.Patch{Name: req.Name, Content: req.Content})
		if err != nil {
			respondError(c, err)
			return
		}
		item, err := pages.View(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func deletePrompt(svc *promptsvc.Service, successStatus int) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := promptID(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(successStatus)
	}
}

func toggleAttachment(svc *promptsvc.Service, pages *pagesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := promptID(c)
		if !ok {
			return
		}
		p, isAttached, err := svc.ToggleAttachment(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, pages.Item(p, isAttached))
	}
}

func blueprintList(pages *pagesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := pages.BlueprintList(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

type blueprintReq struct {
	Path string `json:"path" binding:"required"`
}

func fromBlueprint(svc *promptsvc.Service, pages *pagesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req blueprintReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if _, _, err := svc.UpsertBlueprint(c.Request.Context(), req.Path); err != nil {
			respondError(c, err)
			return
		}
		list, err := pages.BlueprintList(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("HX-Trigger", hxTriggerBlueprints)
		c.JSON(http.StatusOK, list)
	}
}

// deleteBlueprint is idempotent from the user's perspective: an absent
// blueprint prompt is treated as success, unlike the service which reports
// not-found.
func deleteBlueprint(svc *promptsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.DeleteBlueprint(c.Request.Context())
		if err != nil && !errors.Is(err, domainprompt.ErrNotFound) {
			respondError(c, err)
			return
		}
		c.Header("HX-Trigger", hxTriggerBlueprints)
		c.Status(http.StatusNoContent)
	}
}
