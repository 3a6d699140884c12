package domain

// NodeType identifies the kind of visual element a node represents.
type NodeType string

const (
	NodeShapeWithText NodeType = "shape-with-text"
	NodeConnector     NodeType = "connector"
	NodeSticky        NodeType = "sticky"
	NodeText          NodeType = "text"
)

// Node is one visual element on a board. Empty fields are dropped from the
// wire form; only ID and NodeType are always present.
type Node struct {
	ID       string   `json:"id"`
	NodeType NodeType `json:"node_type"`
	Name     string   `json:"name,omitempty"`
	X        float64  `json:"x,omitempty"`
	Y        float64  `json:"y,omitempty"`
	Width    float64  `json:"width,omitempty"`
	Height   float64  `json:"height,omitempty"`
	Text     string   `json:"text,omitempty"`
	Color    string   `json:"color,omitempty"`
	Author   string   `json:"author,omitempty"`

	// Connector endpoints reference other node IDs within the same snapshot.
	ConnectorStart    string `json:"connector_start,omitempty"`
	ConnectorEnd      string `json:"connector_end,omitempty"`
	ConnectorStartCap string `json:"connector_start_cap,omitempty"`
	ConnectorEndCap   string `json:"connector_end_cap,omitempty"`
}
