// Package figjam extracts board nodes from the XML-like payload returned by
// the Figma MCP get_figjam tool.
package figjam

import (
	"regexp"
	"strconv"
	"strings"

	"figtrack/internal/domain"
)

// Capture identifies the board a raw payload was fetched from.
type Capture struct {
	BoardName string
	FileKey   string
	NodeID    string
	Timestamp string
}

// nodeParser pairs a node type with the pattern that recognizes it. The
// payload is not well-formed XML, so each element kind gets its own pattern
// instead of a DOM walk.
type nodeParser struct {
	pattern *regexp.Regexp
	build   func(m []string) domain.Node
}

var shapeWithTextParser = nodeParser{
	pattern: regexp.MustCompile(`(?s)<shape-with-text\s+id="([^"]+)"` +
		`(?:\s+x="([^"]*)")?` +
		`(?:\s+y="([^"]*)")?` +
		`(?:\s+width="([^"]*)")?` +
		`(?:\s+height="([^"]*)")?` +
		`(?:\s+name="([^"]*)")?` +
		`[^>]*>([^<]*)</shape-with-text>`),
	build: func(m []string) domain.Node {
		return domain.Node{
			ID:       m[1],
			NodeType: domain.NodeShapeWithText,
			X:        safeFloat(m[2]),
			Y:        safeFloat(m[3]),
			Width:    safeFloat(m[4]),
			Height:   safeFloat(m[5]),
			Name:     m[6],
			Text:     strings.TrimSpace(m[7]),
		}
	},
}

var connectorParser = nodeParser{
	pattern: regexp.MustCompile(`(?s)<connector\s+id="([^"]+)"` +
		`(?:\s+x="([^"]*)")?` +
		`(?:\s+y="([^"]*)")?` +
		`(?:\s+connectorStart="([^"]*)")?` +
		`(?:\s+connectorStartCap="([^"]*)")?` +
		`(?:\s+connectorEnd="([^"]*)")?` +
		`(?:\s+connectorEndCap="([^"]*)")?` +
		`[^>]*>([^<]*)</connector>`),
	build: func(m []string) domain.Node {
		return domain.Node{
			ID:                m[1],
			NodeType:          domain.NodeConnector,
			X:                 safeFloat(m[2]),
			Y:                 safeFloat(m[3]),
			ConnectorStart:    m[4],
			ConnectorStartCap: m[5],
			ConnectorEnd:      m[6],
			ConnectorEndCap:   m[7],
			Text:              strings.TrimSpace(m[8]),
		}
	},
}

var stickyParser = nodeParser{
	pattern: regexp.MustCompile(`(?s)<sticky\s+id="([^"]+)"` +
		`(?:\s+x="([^"]*)")?` +
		`(?:\s+y="([^"]*)")?` +
		`(?:\s+color="([^"]*)")?` +
		`(?:\s+author="([^"]*)")?` +
		`(?:\s+width="([^"]*)")?` +
		`(?:\s+height="([^"]*)")?` +
		`[^>]*>([^<]*)</sticky>`),
	build: func(m []string) domain.Node {
		return domain.Node{
			ID:       m[1],
			NodeType: domain.NodeSticky,
			X:        safeFloat(m[2]),
			Y:        safeFloat(m[3]),
			Color:    m[4],
			Author:   m[5],
			Width:    safeFloat(m[6]),
			Height:   safeFloat(m[7]),
			Text:     strings.TrimSpace(m[8]),
		}
	},
}

var textParser = nodeParser{
	pattern: regexp.MustCompile(`(?s)<text\s+id="([^"]+)"` +
		`(?:\s+name="([^"]*)")?` +
		`(?:\s+x="([^"]*)")?` +
		`(?:\s+y="([^"]*)")?` +
		`(?:\s+width="([^"]*)")?` +
		`(?:\s+height="([^"]*)")?` +
		`[^>]*/?>`),
	build: func(m []string) domain.Node {
		// Text elements carry their content in the name attribute.
		return domain.Node{
			ID:       m[1],
			NodeType: domain.NodeText,
			Name:     m[2],
			X:        safeFloat(m[3]),
			Y:        safeFloat(m[4]),
			Width:    safeFloat(m[5]),
			Height:   safeFloat(m[6]),
			Text:     m[2],
		}
	},
}

var nodeParsers = []nodeParser{
	shapeWithTextParser,
	connectorParser,
	stickyParser,
	textParser,
}

var sectionPattern = regexp.MustCompile(`<section\s+id="([^"]+)"\s+name="([^"]+)"`)

// Parse extracts all recognized nodes from a raw FigJam payload and wraps
// them in a snapshot for the given capture. Unrecognized content is skipped.
func Parse(raw string, cap Capture) *domain.Snapshot {
	snap := &domain.Snapshot{
		BoardName: cap.BoardName,
		FileKey:   cap.FileKey,
		NodeID:    cap.NodeID,
		Timestamp: cap.Timestamp,
	}

	if m := sectionPattern.FindStringSubmatch(raw); m != nil {
		snap.SectionID = m[1]
		snap.SectionName = m[2]
	}

	for _, p := range nodeParsers {
		for _, m := range p.pattern.FindAllStringSubmatch(raw, -1) {
			snap.Nodes = append(snap.Nodes, p.build(m))
		}
	}
	snap.NodeCount = len(snap.Nodes)

	return snap
}

func safeFloat(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
