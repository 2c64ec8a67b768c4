// Package layout positions graph nodes with a force-directed simulation and
// tracks the interactive state around it: the pan/zoom viewport and
// drag-to-pin.
//
// The simulation is advanced one Tick at a time. Each tick cools the energy
// (alpha) towards its target, applies the link, charge and centering forces,
// and integrates velocities. It is considered settled once alpha drops below
// alphaMin; dragging a node re-heats it.
package layout

import (
	"errors"
	"math"
	"sync"

	"github.com/gabapcia/aethersight/internal/txgraph"
)

// ErrUnknownNode is returned by node-addressed operations when the index is
// out of range.
var ErrUnknownNode = errors.New("unknown node")

const (
	initialRadius = 10

	dragAlphaTarget = 0.3
)

var initialAngle = math.Pi * (3 - math.Sqrt(5))

// Node is the physical state of one graph node.
type Node struct {
	X, Y   float64 // position
	VX, VY float64 // velocity

	// Pinned nodes stay at (FX, FY) whatever the forces say.
	Pinned bool
	FX, FY float64
}

// Point is a position in layout coordinates.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Simulation is a force-directed layout of one graph. It is safe for
// concurrent use.
type Simulation struct {
	mu sync.Mutex

	nodes  []Node
	forces []force

	alpha         float64
	alphaMin      float64
	alphaDecay    float64
	alphaTarget   float64
	velocityDecay float64

	activeDrags int
	wake        chan struct{}
}

// New lays out g around the centre of a width x height canvas. Nodes start
// on a phyllotaxis spiral around the origin and are pulled towards the
// centre by the positioning forces.
func New(g txgraph.Graph, width, height float64, opts ...Option) *Simulation {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	nodes := make([]Node, len(g.Nodes))
	for i := range nodes {
		radius := initialRadius * math.Sqrt(0.5+float64(i))
		angle := float64(i) * initialAngle
		nodes[i] = Node{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		}
	}

	pairs := make([][2]int, 0, len(g.Links))
	for _, l := range g.Links {
		s, okS := g.IndexOf(l.Source)
		t, okT := g.IndexOf(l.Target)
		if !okS || !okT {
			continue
		}
		pairs = append(pairs, [2]int{s, t})
	}

	random := newLCG()

	return &Simulation{
		nodes: nodes,
		forces: []force{
			newLinkForce(pairs, len(nodes), cfg.linkDistance, random),
			&chargeForce{strength: cfg.chargeStrength, distanceMin2: cfg.distanceMin2, random: random},
			&positionForce{axis: axisX, target: width / 2, strength: cfg.centerStrength},
			&positionForce{axis: axisY, target: height / 2, strength: cfg.centerStrength},
		},
		alpha:         1,
		alphaMin:      cfg.alphaMin,
		alphaDecay:    cfg.alphaDecay,
		alphaTarget:   0,
		velocityDecay: 1 - cfg.velocityDecay,
		wake:          make(chan struct{}, 1),
	}
}

// Tick advances the simulation by one step.
func (s *Simulation) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tick()
}

func (s *Simulation) tick() {
	s.alpha += (s.alphaTarget - s.alpha) * s.alphaDecay

	for _, f := range s.forces {
		f.apply(s.nodes, s.alpha)
	}

	for i := range s.nodes {
		node := &s.nodes[i]
		if node.Pinned {
			node.X, node.Y = node.FX, node.FY
			node.VX, node.VY = 0, 0
			continue
		}

		node.VX *= s.velocityDecay
		node.VY *= s.velocityDecay
		node.X += node.VX
		node.Y += node.VY
	}
}

// Settle ticks until the simulation settles or maxTicks is reached, and
// returns the number of ticks run.
func (s *Simulation) Settle(maxTicks int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	ticks := 0
	for ticks < maxTicks && s.alpha >= s.alphaMin {
		s.tick()
		ticks++
	}

	return ticks
}

// Settled reports whether alpha has dropped below alphaMin.
func (s *Simulation) Settled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.alpha < s.alphaMin
}

// Alpha returns the current energy.
func (s *Simulation) Alpha() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.alpha
}

// AlphaTarget returns the value alpha is cooling (or heating) towards.
func (s *Simulation) AlphaTarget() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.alphaTarget
}

// Len returns the number of nodes.
func (s *Simulation) Len() int {
	return len(s.nodes)
}

// Node returns a copy of the state of node i.
func (s *Simulation) Node(i int) (Node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.nodes) {
		return Node{}, ErrUnknownNode
	}

	return s.nodes[i], nil
}

// Positions returns the current position of every node, indexed like the
// graph's nodes.
func (s *Simulation) Positions() []Point {
	s.mu.Lock()
	defer s.mu.Unlock()

	points := make([]Point, len(s.nodes))
	for i, n := range s.nodes {
		points[i] = Point{X: n.X, Y: n.Y}
	}

	return points
}

// Restarted is signalled whenever a settled simulation is re-heated.
func (s *Simulation) Restarted() <-chan struct{} {
	return s.wake
}

func (s *Simulation) restart() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// DragStart pins node i where it currently is. The first concurrent drag
// raises alphaTarget so the layout keeps moving while the node is held.
func (s *Simulation) DragStart(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.nodes) {
		return ErrUnknownNode
	}

	if s.activeDrags == 0 {
		s.alphaTarget = dragAlphaTarget
		s.restart()
	}
	s.activeDrags++

	node := &s.nodes[i]
	node.Pinned = true
	node.FX, node.FY = node.X, node.Y
	return nil
}

// Drag moves the pin of node i to (x, y), in layout coordinates.
func (s *Simulation) Drag(i int, x, y float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.nodes) {
		return ErrUnknownNode
	}

	node := &s.nodes[i]
	node.Pinned = true
	node.FX, node.FY = x, y
	return nil
}

// DragEnd releases node i. When no drag is left, alpha cools back to zero.
func (s *Simulation) DragEnd(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.nodes) {
		return ErrUnknownNode
	}

	if s.activeDrags > 0 {
		s.activeDrags--
	}
	if s.activeDrags == 0 {
		s.alphaTarget = 0
	}

	s.nodes[i].Pinned = false
	return nil
}

// Reheat sets alpha back to a and wakes a driver waiting on a settled
// simulation.
func (s *Simulation) Reheat(a float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alpha = a
	s.restart()
}
