package explorer

import (
	"github.com/gabapcia/aethersight/internal/layout"
	"github.com/gabapcia/aethersight/internal/txgraph"
	"github.com/gabapcia/aethersight/internal/txlinks"
)

// Drawing constants.
const (
	NodeRadius      = 6
	NodeStrokeWidth = 1.5
	LinkStroke      = "#999"
	LinkOpacity     = 0.6
	LinkWidth       = 1
)

// Fill returns the node colour for a role.
func Fill(role txgraph.Role) string {
	if role == txgraph.RoleTo {
		return "green"
	}

	return "blue"
}

// Message is centred text shown instead of a graph.
type Message struct {
	Text     string `json:"text" yaml:"text"`
	Color    string `json:"color" yaml:"color"`
	FontSize int    `json:"font_size" yaml:"font_size"`
}

func loadingMessage(text string) *Message {
	return &Message{Text: text, Color: "#666", FontSize: 18}
}

func emptyMessage(text string) *Message {
	return &Message{Text: text, Color: "#888", FontSize: 18}
}

func errorMessage(text string) *Message {
	return &Message{Text: text, Color: "#ff6b6b", FontSize: 16}
}

// SceneNode is a positioned node in layout coordinates.
type SceneNode struct {
	ID     txlinks.Address `json:"id" yaml:"id"`
	Role   txgraph.Role    `json:"role" yaml:"role"`
	X      float64         `json:"x" yaml:"x"`
	Y      float64         `json:"y" yaml:"y"`
	Radius float64         `json:"r" yaml:"r"`
	Fill   string          `json:"fill" yaml:"fill"`
}

// SceneLink is a positioned link in layout coordinates.
type SceneLink struct {
	Source txlinks.Address `json:"source" yaml:"source"`
	Target txlinks.Address `json:"target" yaml:"target"`
	Hash   txlinks.TxHash  `json:"hash,omitempty" yaml:"hash,omitempty"`
	X1     float64         `json:"x1" yaml:"x1"`
	Y1     float64         `json:"y1" yaml:"y1"`
	X2     float64         `json:"x2" yaml:"x2"`
	Y2     float64         `json:"y2" yaml:"y2"`
}

// Tooltip is shown next to the hovered node.
type Tooltip struct {
	Text string  `json:"text" yaml:"text"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
}

// Scene is everything needed to draw the canvas at one instant. Exactly one
// of Message and the graph (Nodes, Links) is populated.
type Scene struct {
	Width    float64         `json:"width" yaml:"width"`
	Height   float64         `json:"height" yaml:"height"`
	Label    string          `json:"label" yaml:"label"`
	Message  *Message        `json:"message,omitempty" yaml:"message,omitempty"`
	Viewport layout.Viewport `json:"viewport" yaml:"viewport"`
	Alpha    float64         `json:"alpha" yaml:"alpha"`
	Nodes    []SceneNode     `json:"nodes" yaml:"nodes"`
	Links    []SceneLink     `json:"links" yaml:"links"`
	Selected txlinks.Address `json:"selected,omitempty" yaml:"selected,omitempty"`
	Panel    *Panel          `json:"panel,omitempty" yaml:"panel,omitempty"`
	Tooltip  *Tooltip        `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
}

// buildScene positions g's nodes and links at positions.
func buildScene(g txgraph.Graph, positions []layout.Point) ([]SceneNode, []SceneLink) {
	nodes := make([]SceneNode, len(g.Nodes))
	for i, n := range g.Nodes {
		nodes[i] = SceneNode{
			ID:     n.ID,
			Role:   n.Role,
			X:      positions[i].X,
			Y:      positions[i].Y,
			Radius: NodeRadius,
			Fill:   Fill(n.Role),
		}
	}

	links := make([]SceneLink, 0, len(g.Links))
	for _, l := range g.Links {
		s, okS := g.IndexOf(l.Source)
		t, okT := g.IndexOf(l.Target)
		if !okS || !okT {
			continue
		}

		links = append(links, SceneLink{
			Source: l.Source,
			Target: l.Target,
			Hash:   l.Hash,
			X1:     positions[s].X,
			Y1:     positions[s].Y,
			X2:     positions[t].X,
			Y2:     positions[t].Y,
		})
	}

	return nodes, links
}
