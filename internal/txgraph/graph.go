// Package txgraph builds a node/link graph model out of transfer edges.
package txgraph

import (
	"errors"

	"github.com/gabapcia/aethersight/internal/txlinks"
)

// ErrEmptyGraph is returned by Build when the edges produce no node. It is
// a normal outcome (a block without transfers), not a processing failure.
var ErrEmptyGraph = errors.New("graph has no nodes")

// Role tells whether an address was first seen sending or receiving.
type Role string

const (
	RoleFrom Role = "from"
	RoleTo   Role = "to"
)

// Node is a distinct address. Role is fixed at the first appearance of the
// address and never revised, even if it later shows up in the other role.
type Node struct {
	ID   txlinks.Address `json:"id" yaml:"id"`
	Role Role            `json:"role" yaml:"role"`
}

// Link is one edge. Parallel links between the same pair are all kept.
type Link struct {
	Source txlinks.Address `json:"source" yaml:"source"`
	Target txlinks.Address `json:"target" yaml:"target"`
	Hash   txlinks.TxHash  `json:"hash,omitempty" yaml:"hash,omitempty"`
}

// Graph is the model handed to the layout engine. Nodes are in first
// appearance order.
type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Links []Link `json:"links" yaml:"links"`

	index map[txlinks.Address]int
}

// Build derives the graph of edges. Edges with an empty endpoint are ignored.
func Build(edges []txlinks.Edge) (Graph, error) {
	g := Graph{
		Nodes: make([]Node, 0),
		Links: make([]Link, 0, len(edges)),
		index: make(map[txlinks.Address]int),
	}

	for _, edge := range edges {
		if edge.From == "" || edge.To == "" {
			continue
		}

		g.addNode(edge.From, RoleFrom)
		g.addNode(edge.To, RoleTo)
		g.Links = append(g.Links, Link{
			Source: edge.From,
			Target: edge.To,
			Hash:   edge.Hash,
		})
	}

	if len(g.Nodes) == 0 {
		return Graph{}, ErrEmptyGraph
	}

	return g, nil
}

// BuildFromPayload decodes an edge list in any accepted wire shape and builds
// its graph.
func BuildFromPayload(data []byte) (Graph, error) {
	list, err := txlinks.Decode(data)
	if err != nil {
		return Graph{}, err
	}

	return Build(list.Edges)
}

func (g *Graph) addNode(id txlinks.Address, role Role) {
	if _, ok := g.index[id]; ok {
		return
	}

	g.index[id] = len(g.Nodes)
	g.Nodes = append(g.Nodes, Node{ID: id, Role: role})
}

// IndexOf returns the position of id in Nodes.
func (g Graph) IndexOf(id txlinks.Address) (int, bool) {
	if g.index == nil {
		for i, n := range g.Nodes {
			if n.ID == id {
				return i, true
			}
		}
		return 0, false
	}

	i, ok := g.index[id]
	return i, ok
}

// Node returns the node with the given id.
func (g Graph) Node(id txlinks.Address) (Node, bool) {
	i, ok := g.IndexOf(id)
	if !ok {
		return Node{}, false
	}

	return g.Nodes[i], true
}

// Degree returns the number of links touching each node, indexed like Nodes.
// A self-loop counts twice.
func (g Graph) Degree() []int {
	degree := make([]int, len(g.Nodes))
	for _, link := range g.Links {
		if i, ok := g.IndexOf(link.Source); ok {
			degree[i]++
		}
		if i, ok := g.IndexOf(link.Target); ok {
			degree[i]++
		}
	}

	return degree
}
