package transport

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/alanyang/promptdeck/internal/domain/event"
	porteventbus "github.com/alanyang/promptdeck/internal/port/eventbus"
	pagesvc "github.com/alanyang/promptdeck/internal/service/page"
	projectsvc "github.com/alanyang/promptdeck/internal/service/project"
	promptsvc "github.com/alanyang/promptdeck/internal/service/prompt"

	mcptransport "github.com/alanyang/promptdeck/internal/transport/mcp"
	projecthandler "github.com/alanyang/promptdeck/internal/transport/project"
	prompthandler "github.com/alanyang/promptdeck/internal/transport/prompt"
	wshandler "github.com/alanyang/promptdeck/internal/transport/ws"
)

func NewRouter(
	ctx context.Context,
	promptSvc *promptsvc.Service,
	pageSvc *pagesvc.Service,
	projectSvc *projectsvc.Service,
	mcpServer *mcptransport.Server,
	eventBus porteventbus.EventBus,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())

	api := r.Group("/api")

	prompthandler.Register(api.Group("/prompts"), promptSvc, pageSvc)
	projecthandler.Register(api.Group("/projects"), projectSvc)

	// Assistants speak MCP over streamable HTTP on a single endpoint.
	r.Any("/mcp", gin.WrapH(mcpServer.Handler()))

	hub := wshandler.NewHub()
	hub.Register(api.Group("/ws"))

	// Bridge: one subscription per domain channel. Events carry identifiers
	// only; the browser re-fetches the affected partial.
	for _, ch := range []event.Channel{
		event.ChannelPrompt,
		event.ChannelBlueprint,
		event.ChannelProject,
	} {
		c := ch
		if _, err := eventBus.Subscribe(ctx, c, func(_ context.Context, e event.Event) {
			hub.Broadcast(e)
		}); err != nil {
			slog.Error("failed to subscribe channel to WS hub", "channel", c, "error", err)
		}
	}

	return r
}
