package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"figtrack/internal/application/commands"
	"figtrack/internal/config"
	"figtrack/internal/ports"
	"figtrack/internal/report"
)

// RegisterWriteTools adds the snapshot ingestion tool to the MCP server.
// This is the push half of the capture workflow: the assistant fetches the
// board itself and hands the raw payload over for storage and diffing.
func RegisterWriteTools(s *server.MCPServer, cfg *config.Config, store ports.SnapshotStore, index ports.SnapshotIndex) {
	s.AddTool(saveSnapshotTool(), saveSnapshotHandler(cfg, store, index))
}

// --- save_snapshot ---

func saveSnapshotTool() mcp.Tool {
	return mcp.NewTool("save_snapshot",
		mcp.WithDescription("Save a raw board payload as a new snapshot and report the changes since the previous one. The payload may be a raw FigJam response or a snapshot JSON document."),
		mcp.WithString("board",
			mcp.Description("Board name (omit to use the default board)"),
		),
		mcp.WithString("payload",
			mcp.Description("Raw board payload to ingest"),
			mcp.Required(),
		),
	)
}

func saveSnapshotHandler(cfg *config.Config, store ports.SnapshotStore, index ports.SnapshotIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		payload := req.GetString("payload", "")
		if strings.TrimSpace(payload) == "" {
			return toolError(fmt.Errorf("payload is required"))
		}

		board, err := cfg.Ref(req.GetString("board", ""))
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewCaptureCommand(store, index, board, payload).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Saved snapshot %s for board %q (%d nodes) to %s\n",
			result.Snapshot.Timestamp, board.Name, result.Snapshot.NodeCount, result.Path)
		if result.Warning != nil {
			fmt.Fprintf(&sb, "Warning: %s\n", result.Warning.Error())
		}
		if result.Report != nil {
			sb.WriteString(report.Text(result.Report))
		} else {
			sb.WriteString("First snapshot for this board; nothing to compare yet.")
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}
