// Package mcp exposes the devtools bridge as a Model Context Protocol
// server, so AI agents can drive the running game through the same mailbox
// the CLI uses.
package mcp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/aki/gdctl/internal/core/bridge"
	"github.com/aki/gdctl/internal/core/config"
	"github.com/aki/gdctl/internal/core/logger"
	"github.com/aki/gdctl/internal/core/mailbox"
)

// Server wraps an MCP server around a bridge client
type Server struct {
	mcpServer *server.MCPServer
	client    *bridge.Client
	mb        *mailbox.Mailbox
	cfg       config.MCPConfig
	log       logger.Logger
}

// NewServer creates an MCP server for the given mailbox
func NewServer(client *bridge.Client, mb *mailbox.Mailbox, cfg config.MCPConfig, log logger.Logger) *Server {
	mcpServer := server.NewMCPServer(
		"gdctl",
		"1.0.0",
		server.WithLogging(),
	)

	s := &Server{
		mcpServer: mcpServer,
		client:    client,
		mb:        mb,
		cfg:       cfg,
		log:       log,
	}

	s.registerTools()

	return s
}

// Start serves until the context is cancelled or the transport fails
func (s *Server) Start(ctx context.Context) error {
	switch s.cfg.Transport {
	case "stdio":
		return server.ServeStdio(s.mcpServer)
	case "http":
		return s.startHTTPServer(ctx)
	default:
		return fmt.Errorf("unsupported transport: %s", s.cfg.Transport)
	}
}

func (s *Server) startHTTPServer(ctx context.Context) error {
	sseServer := server.NewSSEServer(s.mcpServer)

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.HTTP.Port),
		Handler: s.authMiddleware(mux),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.log.Error("failed to shut down MCP server", "error", err)
		}
	}()

	s.log.Info("MCP server listening", "port", s.cfg.HTTP.Port)
	return httpServer.ListenAndServe()
}

// authMiddleware enforces the configured bearer token, if any
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.HTTP.Auth.Type == "" || s.cfg.HTTP.Auth.Type == "none" {
			next.ServeHTTP(w, r)
			return
		}

		switch s.cfg.HTTP.Auth.Type {
		case "bearer":
			token := r.Header.Get("Authorization")
			if token != "Bearer "+s.cfg.HTTP.Auth.Bearer {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
		default:
			http.Error(w, "Invalid auth type", http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r)
	})
}
