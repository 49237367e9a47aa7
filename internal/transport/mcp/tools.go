package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	domainprompt "github.com/alanyang/promptdeck/internal/domain/prompt"
	promptsvc "github.com/alanyang/promptdeck/internal/service/prompt"
)

// RegisterTools registers all MCP tools on the server. Tools are read-only:
// curation happens in the web UI, assistants only consume.
func RegisterTools(s *mcpserver.MCPServer, promptSvc *promptsvc.Service) {
	s.AddTool(mcpmcp.NewTool("list_prompts",
		mcpmcp.WithDescription("List the prompts visible in the current context: all global prompts plus the active project's prompts, names and ids only."),
	), listPromptsHandler(promptSvc))

	s.AddTool(mcpmcp.NewTool("get_prompt",
		mcpmcp.WithDescription("Fetch one prompt by id, including its full content."),
		mcpmcp.WithString("prompt_id", mcpmcp.Required(), mcpmcp.Description("Numeric prompt id")),
	), getPromptHandler(promptSvc))

	s.AddTool(mcpmcp.NewTool("list_session_prompts",
		mcpmcp.WithDescription("List the prompts attached to a chat session. Session attachments are managed by the chat subsystem."),
		mcpmcp.WithString("session_id", mcpmcp.Required(), mcpmcp.Description("Numeric chat session id")),
	), listSessionPromptsHandler(promptSvc))
}

type promptSummary struct {
	ID   int64             `json:"id"`
	Name string            `json:"name"`
	Type domainprompt.Type `json:"type"`
}

func summarize(prompts []domainprompt.Prompt) []promptSummary {
	out := make([]promptSummary, 0, len(prompts))
	for _, p := range prompts {
		out = append(out, promptSummary{ID: p.ID, Name: p.Name, Type: p.Type})
	}
	return out
}

func listPromptsHandler(promptSvc *promptsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		globals, err := promptSvc.GlobalPrompts(ctx)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		summaries := summarize(globals)

		if active, ok, err := promptSvc.ActiveProject(ctx); err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		} else if ok {
			projectPrompts, err := promptSvc.ProjectPrompts(ctx, &active)
			if err != nil {
				return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
			}
			summaries = append(summaries, summarize(projectPrompts)...)
		}

		result, _ := json.Marshal(summaries)
		return mcpmcp.NewToolResultText(string(result)), nil
	}
}

func getPromptHandler(promptSvc *promptsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		idStr := mcpmcp.ParseString(req, "prompt_id", "")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return mcpmcp.NewToolResultText("error: invalid prompt_id"), nil
		}

		p, err := promptSvc.Get(ctx, id)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		result, _ := json.Marshal(p)
		return mcpmcp.NewToolResultText(string(result)), nil
	}
}

func listSessionPromptsHandler(promptSvc *promptsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		idStr := mcpmcp.ParseString(req, "session_id", "")
		sessionID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return mcpmcp.NewToolResultText("error: invalid session_id"), nil
		}

		prompts, err := promptSvc.SessionPrompts(ctx, sessionID)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}
		result, _ := json.Marshal(summarize(prompts))
		return mcpmcp.NewToolResultText(string(result)), nil
	}
}
