package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
)

// main starts the visualization tool server on stdio or SSE.
func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}
	log.SetPrefix("[think-show] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := New(cfg, newHTTPProbe(cfg.ProbeTimeout()))

	switch cfg.Transport {
	case "sse":
		if err := serveSSE(ctx, srv, cfg); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve sse: %v", err)
		}
	case "stdio":
		if err := server.ServeStdio(srv); err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	default:
		log.Fatalf("unknown transport %q (must be stdio or sse)", cfg.Transport)
	}
}
