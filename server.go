package main

import "github.com/mark3labs/mcp-go/server"

// errorResult is the in-band failure record returned by tools whose
// contract reports errors with a success flag instead of a thrown error.
type errorResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// New builds the MCP server with all visualization tools registered.
// The probe is injected so tests can substitute a fake transport.
func New(cfg Config, probe probeFunc) *server.MCPServer {
	srv := server.NewMCPServer(
		"think-show",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	registerDiagramTool(srv, cfg, probe)
	registerChartTool(srv, cfg)
	registerMindmapTool(srv, cfg)
	registerTableTool(srv)

	return srv
}
