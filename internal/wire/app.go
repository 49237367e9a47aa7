package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	fsblueprint "github.com/alanyang/promptdeck/internal/adapter/fs/blueprint"
	pgdb "github.com/alanyang/promptdeck/internal/adapter/postgres"
	pgeventbus "github.com/alanyang/promptdeck/internal/adapter/postgres/eventbus"
	pgproject "github.com/alanyang/promptdeck/internal/adapter/postgres/project"
	pgprompt "github.com/alanyang/promptdeck/internal/adapter/postgres/prompt"

	"github.com/alanyang/promptdeck/internal/config"

	pagesvc "github.com/alanyang/promptdeck/internal/service/page"
	projectsvc "github.com/alanyang/promptdeck/internal/service/project"
	promptsvc "github.com/alanyang/promptdeck/internal/service/prompt"

	"github.com/alanyang/promptdeck/internal/transport"
	mcptransport "github.com/alanyang/promptdeck/internal/transport/mcp"
)

// App holds the top-level resources needed to run and gracefully stop the
// server.
type App struct {
	Pool      *pgxpool.Pool
	Server    *http.Server
	MCPServer *mcptransport.Server
}

// Build is the composition root: the only place concrete types are wired to
// their interface dependencies.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	pool, err := pgdb.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// ── Adapters ─────────────────────────────────────────────────────────
	promptRepo := pgprompt.New(pool)
	projectRepo := pgproject.New(pool)
	eventBus := pgeventbus.New(pool)
	blueprints := fsblueprint.New(cfg.BlueprintsRootDir)

	// ── Services ─────────────────────────────────────────────────────────
	projectSvcInstance := projectsvc.NewService(projectRepo, eventBus)
	promptSvcInstance := promptsvc.NewService(promptRepo, projectSvcInstance, blueprints, eventBus)
	pageSvcInstance := pagesvc.NewService(promptRepo, projectSvcInstance, blueprints)

	mcpServer := mcptransport.New(promptSvcInstance)

	// ── Transport ────────────────────────────────────────────────────────
	router := transport.NewRouter(ctx, promptSvcInstance, pageSvcInstance, projectSvcInstance, mcpServer, eventBus)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Surface blueprint catalog changes to open UIs.
	if err := blueprints.Watch(ctx, eventBus); err != nil {
		slog.Warn("blueprints watcher not started", "error", err)
	}

	slog.Info("application wired", "port", cfg.Port, "blueprints_root", cfg.BlueprintsRootDir)

	return &App{
		Pool:      pool,
		Server:    server,
		MCPServer: mcpServer,
	}, nil
}
