// Package mcp exposes the window shifter as a Model Context Protocol server on
// stdio.
package mcp

import (
	"context"
	"io"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/herbst3/internal/herbst"
	"github.com/1broseidon/herbst3/internal/shift"
)

const (
	ServerName    = "herbst3"
	ServerVersion = "0.1.0"
)

// Options configure a Server.
type Options struct {
	Runner     herbst.Runner
	Attributes herbst.Attributes
	SplitRatio float64
	Logger     *slog.Logger
}

// Server is the MCP server for herbstluftwm window shifting.
type Server struct {
	mcpServer  *mcpsdk.Server
	runner     herbst.Runner
	attrs      herbst.Attributes
	splitRatio float64
	logger     *slog.Logger
}

// NewServer creates a server that talks to herbstluftwm through opts.Runner.
func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ratio := opts.SplitRatio
	if ratio <= 0 || ratio >= 1 {
		ratio = shift.DefaultSplitRatio
	}

	s := &Server{
		runner:     opts.Runner,
		attrs:      opts.Attributes,
		splitRatio: ratio,
		logger:     logger,
	}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "shift",
		Description: "Move the focused herbstluftwm window one step in a direction (left, right, up, down). Creates a new frame split when no frame exists on that side and removes the frame the window leaves empty. With dry_run, nothing is changed and the commands that would be sent are returned.",
	}, s.handleShift)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "layout_stack",
		Description: "Report the focused frame's index in the herbstluftwm frame tree, the layout of every split above it, and the frame itself in dump syntax.",
	}, s.handleLayoutStack)
}

func (s *Server) shifter(runner herbst.Runner) *shift.Shifter {
	sh := shift.New(herbst.NewClient(runner, s.attrs, s.logger), s.logger)
	sh.SplitRatio = s.splitRatio
	return sh
}
