package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"figtrack/internal/adapters/claudecli"
	"figtrack/internal/application/commands"
	"figtrack/internal/report"
)

var (
	captureFile      string
	captureStdin     bool
	captureClaude    bool
	captureModel     string
	captureCopy      bool
	captureNoCompare bool
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture a new snapshot of a board",
	Long: `Capture a new snapshot of a board.

Without flags this prints the capture prompt for an assistant with
Figma MCP access; paste its response back in via --file or --stdin.
With --claude the claude CLI is invoked directly to fetch the board.

Examples:
  figtrack capture                   # print the capture prompt
  figtrack capture --copy            # also copy it to the clipboard
  figtrack capture --file resp.txt   # ingest a saved assistant response
  figtrack capture --stdin < resp.txt
  figtrack capture --claude          # fetch via the claude CLI`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		board, err := ResolveBoard()
		if err != nil {
			return err
		}

		raw, err := captureInput(ctx, cmd)
		if err != nil {
			return err
		}
		if raw == "" {
			return printCapturePrompt(ctx, cmd)
		}

		capture := commands.NewCaptureCommand(GetStore(), GetIndex(), board, raw)
		capture.Compare = !captureNoCompare
		result, err := capture.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Saved snapshot %s (%d nodes) to %s\n",
			result.Snapshot.Timestamp, result.Snapshot.NodeCount, result.Path)
		if result.Warning != nil {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", result.Warning.Error())
		}
		if result.Report != nil {
			fmt.Println(report.Text(result.Report))
		} else if !captureNoCompare {
			fmt.Println("First snapshot for this board; nothing to compare yet.")
		}
		return nil
	},
}

func captureInput(ctx context.Context, cmd *cobra.Command) (string, error) {
	board, err := ResolveBoard()
	if err != nil {
		return "", err
	}

	switch {
	case captureFile != "":
		data, err := os.ReadFile(captureFile)
		if err != nil {
			return "", fmt.Errorf("read capture file: %w", err)
		}
		return string(data), nil

	case captureStdin:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil

	case captureClaude:
		source := claudecli.NewSource(claudecli.WithModel(captureModel))
		if !source.IsAvailable() {
			return "", fmt.Errorf("claude CLI not found in PATH")
		}
		fmt.Fprintf(os.Stderr, "Fetching board %q via claude...\n", board.Name)
		return source.Fetch(ctx, board)

	default:
		return "", nil
	}
}

func printCapturePrompt(ctx context.Context, cmd *cobra.Command) error {
	board, err := ResolveBoard()
	if err != nil {
		return err
	}
	status, err := commands.NewStatusCommand(GetStore(), GetIndex(), board.Name, board.DisplayName).Execute(ctx)
	if err != nil {
		return err
	}

	banner := strings.Repeat("=", 60)
	fmt.Println(banner)
	fmt.Println("Figma Board Snapshot Capture")
	fmt.Println(banner)
	fmt.Printf("Board: %s (%s)\n", board.Name, board.DisplayName)
	if board.URL != "" {
		fmt.Printf("URL: %s\n", board.URL)
	}
	fmt.Printf("Snapshots so far: %d", status.TotalSnapshots)
	if status.LastAgo != "" {
		fmt.Printf(" (last %s)", status.LastAgo)
	}
	fmt.Println()
	fmt.Println()
	fmt.Println("Paste this prompt to an assistant with Figma MCP access:")
	fmt.Println()

	prompt := claudecli.CapturePrompt(board)
	fmt.Println(prompt)
	fmt.Println(banner)

	if captureCopy {
		if err := clipboard.WriteAll(prompt); err != nil {
			fmt.Fprintf(os.Stderr, "Could not copy to clipboard: %v\n", err)
		} else {
			fmt.Println("Prompt copied to clipboard.")
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(captureCmd)
	captureCmd.Flags().StringVar(&captureFile, "file", "", "ingest a raw board payload from a file")
	captureCmd.Flags().BoolVar(&captureStdin, "stdin", false, "ingest a raw board payload from stdin")
	captureCmd.Flags().BoolVar(&captureClaude, "claude", false, "fetch the board via the claude CLI")
	captureCmd.Flags().StringVar(&captureModel, "model", "haiku", "claude model to use with --claude")
	captureCmd.Flags().BoolVar(&captureCopy, "copy", false, "copy the capture prompt to the clipboard")
	captureCmd.Flags().BoolVar(&captureNoCompare, "no-compare", false, "skip comparing against the previous snapshot")
}
