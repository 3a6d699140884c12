package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"figtrack/internal/application/commands"
	"figtrack/internal/config"
	"figtrack/internal/ports"
	"figtrack/internal/report"
)

// RegisterReadTools adds all read-only snapshot tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, cfg *config.Config, store ports.SnapshotStore, index ports.SnapshotIndex) {
	s.AddTool(listBoardsTool(), listBoardsHandler(cfg, store, index))
	s.AddTool(listSnapshotsTool(), listSnapshotsHandler(cfg, store, index))
	s.AddTool(summaryTool(), summaryHandler(cfg, store))
	s.AddTool(compareTool(), compareHandler(cfg, store, index))
}

// --- list_boards ---

func listBoardsTool() mcp.Tool {
	return mcp.NewTool("list_boards",
		mcp.WithDescription("List the configured Figma boards with their snapshot counts."),
	)
}

func listBoardsHandler(cfg *config.Config, store ports.SnapshotStore, index ports.SnapshotIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var sb strings.Builder
		for _, name := range cfg.BoardNames() {
			status, err := commands.NewStatusCommand(store, index, name, cfg.Boards[name].Name).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			marker := " "
			if name == cfg.DefaultBoard {
				marker = "*"
			}
			fmt.Fprintf(&sb, "%s %s  %q  %d snapshots", marker, name, status.DisplayName, status.TotalSnapshots)
			if status.LastAgo != "" {
				fmt.Fprintf(&sb, "  (last %s)", status.LastAgo)
			}
			sb.WriteByte('\n')
		}
		if sb.Len() == 0 {
			return mcp.NewToolResultText("No boards configured."), nil
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_snapshots ---

func listSnapshotsTool() mcp.Tool {
	return mcp.NewTool("list_snapshots",
		mcp.WithDescription("List the stored snapshots of a board, most recent first."),
		mcp.WithString("board",
			mcp.Description("Board name (omit to use the default board)"),
		),
	)
}

func listSnapshotsHandler(cfg *config.Config, store ports.SnapshotStore, index ports.SnapshotIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		board, err := cfg.Ref(req.GetString("board", ""))
		if err != nil {
			return toolError(err)
		}

		metas, err := commands.NewListSnapshotsCommand(store, index, board.Name).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(metas) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No snapshots for board %q yet.", board.Name)), nil
		}

		var sb strings.Builder
		for _, m := range metas {
			fmt.Fprintf(&sb, "%s  %d nodes", m.Timestamp, m.NodeCount)
			if m.SectionName != "" {
				fmt.Fprintf(&sb, "  [%s]", m.SectionName)
			}
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- snapshot_summary ---

func summaryTool() mcp.Tool {
	return mcp.NewTool("snapshot_summary",
		mcp.WithDescription("Summarize a stored snapshot: node count and per-type breakdown. Defaults to the latest snapshot."),
		mcp.WithString("board",
			mcp.Description("Board name (omit to use the default board)"),
		),
		mcp.WithString("timestamp",
			mcp.Description("Snapshot timestamp, e.g. 2025-01-15_120000. Omit for the latest."),
		),
	)
}

func summaryHandler(cfg *config.Config, store ports.SnapshotStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		board, err := cfg.Ref(req.GetString("board", ""))
		if err != nil {
			return toolError(err)
		}

		summary, err := commands.NewSummaryCommand(store, board.Name, req.GetString("timestamp", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Board: %s\nSnapshot: %s\n", summary.BoardName, summary.Timestamp)
		if summary.SectionName != "" {
			fmt.Fprintf(&sb, "Section: %s\n", summary.SectionName)
		}
		fmt.Fprintf(&sb, "Total nodes: %d\n", summary.TotalNodes)
		for _, nodeType := range sortedKeys(summary.NodeTypes) {
			fmt.Fprintf(&sb, "  %s: %d\n", nodeType, summary.NodeTypes[nodeType])
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- compare ---

func compareTool() mcp.Tool {
	return mcp.NewTool("compare",
		mcp.WithDescription("Diff two snapshots of a board and render the change report. Without timestamps compares the two most recent snapshots."),
		mcp.WithString("board",
			mcp.Description("Board name (omit to use the default board)"),
		),
		mcp.WithString("from",
			mcp.Description("Older snapshot timestamp. Omit to use the second-latest."),
		),
		mcp.WithString("to",
			mcp.Description("Newer snapshot timestamp. Omit to use the latest."),
		),
		mcp.WithString("format",
			mcp.Description("Output format: text (default) or json"),
		),
	)
}

func compareHandler(cfg *config.Config, store ports.SnapshotStore, index ports.SnapshotIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		board, err := cfg.Ref(req.GetString("board", ""))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewCompareCommand(store, index, board.Name,
			req.GetString("from", ""), req.GetString("to", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if req.GetString("format", "text") == "json" {
			data, err := report.JSON(result)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(string(data)), nil
		}
		return mcp.NewToolResultText(report.Text(result)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
