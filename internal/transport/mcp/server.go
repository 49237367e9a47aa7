package mcp

import (
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	promptsvc "github.com/alanyang/promptdeck/internal/service/prompt"
)

// Server wraps the mark3labs/mcp-go MCPServer and its StreamableHTTPServer.
// Assistants connect here to pull the curated prompt context; tools are
// registered in tools.go, native prompts in prompts.go.
type Server struct {
	httpSrv *mcpserver.StreamableHTTPServer
}

func New(promptSvc *promptsvc.Service) *Server {
	mcpSrv := mcpserver.NewMCPServer(
		"promptdeck",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithPromptCapabilities(true),
	)

	RegisterTools(mcpSrv, promptSvc)
	RegisterPrompts(mcpSrv, promptSvc)

	return &Server{httpSrv: mcpserver.NewStreamableHTTPServer(mcpSrv)}
}

// Handler returns an http.Handler that serves the MCP endpoint.
func (s *Server) Handler() http.Handler {
	return s.httpSrv
}
