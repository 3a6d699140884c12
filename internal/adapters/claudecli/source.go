// Package claudecli fetches board payloads through the Claude Code CLI,
// which relays the request to the Figma MCP tools it has access to.
package claudecli

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"figtrack/internal/ports"
)

// Source implements ports.CaptureSource using the claude CLI.
type Source struct {
	model string
}

// Ensure Source implements CaptureSource
var _ ports.CaptureSource = (*Source)(nil)

// Option configures the Source
type Option func(*Source)

// WithModel sets the Claude model to use
func WithModel(model string) Option {
	return func(s *Source) {
		s.model = model
	}
}

// NewSource creates a new Claude CLI capture source
func NewSource(opts ...Option) *Source {
	s := &Source{
		model: "haiku", // Default to haiku for speed
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// claudeResponse represents the JSON output from claude CLI
type claudeResponse struct {
	Type         string  `json:"type"`
	Subtype      string  `json:"subtype"`
	CostUSD      float64 `json:"cost_usd"`
	DurationMS   int     `json:"duration_ms"`
	DurationAPI  int     `json:"duration_api_ms"`
	IsError      bool    `json:"is_error"`
	NumTurns     int     `json:"num_turns"`
	Result       string  `json:"result"`
	SessionID    string  `json:"session_id"`
	TotalCostUSD float64 `json:"total_cost_usd"`
}

// IsAvailable returns true if the claude CLI is on PATH.
func (s *Source) IsAvailable() bool {
	_, err := exec.LookPath("claude")
	return err == nil
}

// Fetch asks the assistant to call the Figma MCP tool for the board and
// return the raw FigJam payload verbatim.
func (s *Source) Fetch(ctx context.Context, board ports.BoardRef) (string, error) {
	prompt := buildFetchPrompt(board)

	args := []string{
		"-p", prompt,
		"--output-format", "json",
		"--model", s.model,
	}

	cmd := exec.CommandContext(ctx, "claude", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("claude CLI error: %s", string(exitErr.Stderr))
		}
		return "", fmt.Errorf("claude CLI error: %w", err)
	}

	var response claudeResponse
	if err := json.Unmarshal(output, &response); err != nil {
		return "", fmt.Errorf("failed to parse claude response: %w", err)
	}
	if response.IsError {
		return "", fmt.Errorf("claude returned an error: %s", response.Result)
	}

	payload := stripCodeFences(response.Result)
	if payload == "" {
		return "", fmt.Errorf("claude returned an empty payload for board %q", board.Name)
	}
	return payload, nil
}

func buildFetchPrompt(board ports.BoardRef) string {
	return fmt.Sprintf(`Call the Figma MCP tool mcp_Figma_get_figjam with:
  fileKey: %s
  nodeId: %s

Return ONLY the raw response text from the tool, with no commentary,
no markdown and no code blocks.`, board.FileKey, board.NodeID)
}

// CapturePrompt builds the paste-ready prompt shown by the capture command
// for a human to relay to their assistant.
func CapturePrompt(board ports.BoardRef) string {
	return fmt.Sprintf(`Capture a Figma snapshot of board %q and compare:
  1. Call mcp_Figma_get_figjam with fileKey %s and nodeId %s
  2. Save the response with the figtrack save_snapshot MCP tool
     (or: figtrack capture --board %s --file <response file>)
  3. Show the change report against the previous snapshot`,
		board.Name, board.FileKey, board.NodeID, board.Name)
}

// stripCodeFences unwraps a payload the assistant wrapped in markdown code
// blocks despite instructions.
func stripCodeFences(result string) string {
	result = strings.TrimSpace(result)
	codeBlockRe := regexp.MustCompile("```(?:xml|text)?\\s*\\n?([\\s\\S]*?)\\n?```")
	if matches := codeBlockRe.FindStringSubmatch(result); len(matches) > 1 {
		result = strings.TrimSpace(matches[1])
	}
	return result
}
