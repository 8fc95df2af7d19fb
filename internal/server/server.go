package server

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/umltools/uml-mcp/internal/config"
	"github.com/umltools/uml-mcp/internal/render"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "UML Diagram Generator"
	// serverVersion identifies the MCP server version.
	serverVersion = "1.2.0"
)

// Server hosts the MCP server and the rendering dispatcher behind it.
type Server struct {
	cfg        config.Config
	dispatcher *render.Dispatcher
	mcpServer  *mcp.Server
}

// New creates a configured MCP server with all diagram tools, resources, and
// prompts registered.
func New(cfg config.Config) *Server {
	s := &Server{
		cfg:        cfg,
		dispatcher: render.NewDispatcher(cfg),
	}

	m := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	s.registerTools(m)
	s.registerResources(m)
	s.registerPrompts(m)
	s.mcpServer = m
	return s
}

// Run serves MCP over stdio and blocks until the transport closes or the
// context is canceled. Context cancellation is a normal shutdown, not an
// error.
func (s *Server) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, &mcp.StdioTransport{})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
