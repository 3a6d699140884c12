package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"figtrack/internal/adapters/filesystem"
	mcpadapter "figtrack/internal/adapters/mcp"
	"figtrack/internal/adapters/sqlite"
	"figtrack/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("figtrack-mcp: %v", err)
	}

	store := filesystem.NewStore(cfg.DataDir)
	index := sqlite.NewIndex()
	if err := index.Open(cfg.DataDir); err != nil {
		log.Fatalf("figtrack-mcp: open index: %v", err)
	}
	defer index.Close()

	mcpServer := server.NewMCPServer(
		"figtrack-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, cfg, store, index)
	mcpadapter.RegisterWriteTools(mcpServer, cfg, store, index)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("figtrack-mcp: %v", err)
	}
}
