// Package report renders comparison results for humans and for machines.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"figtrack/internal/domain"
)

const (
	bannerWidth    = 60
	previewLen     = 50
	diffPreviewLen = 40
)

// Text renders the fixed-shape change report. Every section is present even
// when empty so the report's shape is stable regardless of content.
func Text(r *domain.ComparisonResult) string {
	var b strings.Builder
	banner := strings.Repeat("=", bannerWidth)

	b.WriteString("\n")
	b.WriteString(banner + "\n")
	b.WriteString("Figma Board Change Report\n")
	b.WriteString(banner + "\n")
	fmt.Fprintf(&b, "Board: %s\n", r.Board)
	fmt.Fprintf(&b, "Comparing: %s -> %s\n", r.FromTimestamp, r.ToTimestamp)
	b.WriteString("\n")

	fmt.Fprintf(&b, "ADDED NODES (%d):\n", len(r.Added))
	if len(r.Added) > 0 {
		for _, n := range r.Added {
			fmt.Fprintf(&b, "  + %s [%s] %q\n", n.ID, n.NodeType, truncate(n.Text, previewLen))
		}
	} else {
		b.WriteString("  (none)\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "MODIFIED NODES (%d):\n", len(r.Modified))
	if len(r.Modified) > 0 {
		for _, m := range r.Modified {
			fmt.Fprintf(&b, "  ~ %s [%s]\n", m.ID, m.NodeType)
			fmt.Fprintf(&b, "    - %q\n", truncate(m.OldText, diffPreviewLen))
			fmt.Fprintf(&b, "    + %q\n", truncate(m.NewText, diffPreviewLen))
		}
	} else {
		b.WriteString("  (none)\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "REMOVED NODES (%d):\n", len(r.Removed))
	if len(r.Removed) > 0 {
		for _, n := range r.Removed {
			fmt.Fprintf(&b, "  - %s [%s] %q\n", n.ID, n.NodeType, truncate(n.Text, previewLen))
		}
	} else {
		b.WriteString("  (none)\n")
	}
	b.WriteString("\n")

	b.WriteString(strings.Repeat("-", bannerWidth) + "\n")
	fmt.Fprintf(&b, "Summary: %d added, %d modified, %d removed\n",
		r.AddedCount, r.ModifiedCount, r.RemovedCount)
	b.WriteString(banner)

	return b.String()
}

// JSON renders the comparison result as the stable machine-readable
// document. The output unmarshals back into a ComparisonResult
// field-for-field.
func JSON(r *domain.ComparisonResult) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
