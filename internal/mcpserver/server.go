package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"termfolio/internal/api"
	"termfolio/internal/api/tools"
	"termfolio/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName = "termfolio"

	defaultHost = "localhost"
	defaultPort = 8091
)

// Config holds the listen settings for the SSE transport.
type Config struct {
	Host    string
	Port    int
	Version string
}

// Server exposes the control surface as an MCP server over stdio or SSE.
type Server struct {
	config Config
	mcp    *server.MCPServer

	mu        sync.Mutex
	sseServer *server.SSEServer
	errCh     chan error
}

// New creates a server whose tools drive surface.
func New(surface *api.Surface, config Config) *Server {
	if config.Host == "" {
		config.Host = defaultHost
	}
	if config.Port == 0 {
		config.Port = defaultPort
	}
	if config.Version == "" {
		config.Version = "dev"
	}

	mcpServer := server.NewMCPServer(
		serverName,
		config.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	mcpServer.AddTools(tools.NewAPITools(surface).ServerTools()...)

	return &Server{config: config, mcp: mcpServer}
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer { return s.mcp }

// Addr returns the SSE listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// ServeStdio serves on stdin/stdout until the client disconnects or the process is signalled.
func (s *Server) ServeStdio() error {
	logging.Info("MCP", "Serving control surface on stdio")
	return server.ServeStdio(s.mcp)
}

// Start begins serving SSE in the background. Listener errors are reported on Errors.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sseServer != nil {
		return fmt.Errorf("control server already started")
	}

	baseURL := fmt.Sprintf("http://%s", s.Addr())
	s.sseServer = server.NewSSEServer(
		s.mcp,
		server.WithBaseURL(baseURL),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)
	s.errCh = make(chan error, 1)

	addr := s.Addr()
	logging.Info("MCP", "Starting control server on %s", addr)

	// Capture sseServer to avoid race condition
	sseServer, errCh := s.sseServer, s.errCh
	go func() {
		if err := sseServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("MCP", err, "SSE server error")
			errCh <- err
		}
		close(errCh)
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Stop(shutdownCtx)
	}()

	return nil
}

// Errors delivers a listener failure, if any. It is closed when the listener exits.
func (s *Server) Errors() <-chan error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errCh
}

// Stop shuts the SSE listener down. Stopping a server that is not running is a no-op.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	sseServer := s.sseServer
	s.sseServer = nil
	s.mu.Unlock()

	if sseServer == nil {
		return nil
	}
	logging.Info("MCP", "Stopping control server")
	if err := sseServer.Shutdown(ctx); err != nil {
		logging.Error("MCP", err, "Error shutting down SSE server")
		return err
	}
	return nil
}
