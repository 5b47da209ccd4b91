package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mark3labs/mcp-go/server"
)

// serveSSE hosts the MCP server over the SSE transport on the configured
// port, alongside a health endpoint. Blocks until ctx is cancelled or the
// listener fails.
func serveSSE(ctx context.Context, srv *server.MCPServer, cfg Config) error {
	opts := []server.SSEOption{
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
	}
	// without a public base URL the endpoint event carries a relative
	// message URL, which any client resolves against the host it dialed
	if cfg.PublicBaseURL != "" {
		opts = append(opts, server.WithBaseURL(cfg.PublicBaseURL))
	}
	sse := server.NewSSEServer(srv, opts...)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	// the SSE server routes /sse and /message itself
	e.Any("/sse", echo.WrapHandler(sse))
	e.Any("/message", echo.WrapHandler(sse))

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			e.Logger.Errorf("shutdown: %v", err)
		}
	}()

	return e.Start(fmt.Sprintf(":%d", cfg.Port))
}
