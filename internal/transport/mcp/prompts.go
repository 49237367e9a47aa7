package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	promptsvc "github.com/alanyang/promptdeck/internal/service/prompt"
)

// RegisterPrompts registers the native MCP prompt surface: the composed
// context for the active project (blueprint prompt, then attached globals,
// then project prompts).
func RegisterPrompts(s *mcpserver.MCPServer, promptSvc *promptsvc.Service) {
	s.AddPrompt(
		mcpmcp.NewPrompt("project-context",
			mcpmcp.WithPromptDescription("Curated prompt context for the active project: the blueprint prompt, the attached prompts, then every project prompt. Fetched once at conversation startup."),
		),
		projectContextHandler(promptSvc),
	)
}

func projectContextHandler(promptSvc *promptsvc.Service) mcpserver.PromptHandlerFunc {
	return func(ctx context.Context, req mcpmcp.GetPromptRequest) (*mcpmcp.GetPromptResult, error) {
		var parts []string

		if bp, ok, err := promptSvc.BlueprintPrompt(ctx); err != nil {
			return nil, fmt.Errorf("get blueprint prompt: %w", err)
		} else if ok {
			parts = append(parts, bp.Content)
		}

		active, ok, err := promptSvc.ActiveProject(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolve active project: %w", err)
		}
		if ok {
			attached, err := promptSvc.AttachedPrompts(ctx, active.ID)
			if err != nil {
				return nil, fmt.Errorf("list attached prompts: %w", err)
			}
			for _, p := range attached {
				parts = append(parts, p.Content)
			}

			prompts, err := promptSvc.ProjectPrompts(ctx, &active)
			if err != nil {
				return nil, fmt.Errorf("list project prompts: %w", err)
			}
			for _, p := range prompts {
				parts = append(parts, p.Content)
			}
		}

		if len(parts) == 0 {
			return nil, fmt.Errorf("no prompt context available: no active project")
		}

		return mcpmcp.NewGetPromptResult(
			"Prompt context for the active project",
			[]mcpmcp.PromptMessage{
				mcpmcp.NewPromptMessage(
					mcpmcp.RoleUser,
					mcpmcp.TextContent{
						Type: "text",
						Text: strings.Join(parts, "\n\n"),
					},
				),
			},
		), nil
	}
}
