package explorer

import (
	"fmt"

	"github.com/gabapcia/aethersight/internal/layout"
	"github.com/gabapcia/aethersight/internal/txlinks"
)

// tooltipOffset places the tooltip relative to the pointer.
var tooltipOffset = layout.Point{X: 10, Y: -28}

// Zoom scales the view by factor around the screen point anchor.
func (s *Session) Zoom(factor float64, anchor layout.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewport = s.viewport.ZoomBy(factor, anchor)
	s.render()
}

// Pan moves the view by (dx, dy) screen units.
func (s *Session) Pan(dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewport = s.viewport.Pan(dx, dy)
	s.render()
}

// Viewport returns the current pan/zoom transform.
func (s *Session) Viewport() layout.Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.viewport
}

// NodeAt returns the node drawn under the screen point p. When nodes overlap
// the one drawn last wins.
func (s *Session) NodeAt(p layout.Point) (txlinks.Address, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.nodeAt(p)
	if !ok {
		return "", false
	}

	return s.graph.Nodes[i].ID, true
}

// nodeAt hit-tests in layout coordinates. Must hold s.mu.
func (s *Session) nodeAt(p layout.Point) (int, bool) {
	if s.sim == nil {
		return 0, false
	}

	q := s.viewport.Invert(p)
	positions := s.sim.Positions()
	for i := len(positions) - 1; i >= 0; i-- {
		dx, dy := positions[i].X-q.X, positions[i].Y-q.Y
		if dx*dx+dy*dy <= NodeRadius*NodeRadius {
			return i, true
		}
	}

	return 0, false
}

// Hover shows the tooltip for the node under the screen point p, or hides it
// when there is none. It reports whether a node was hit.
func (s *Session) Hover(p layout.Point) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.nodeAt(p)
	if !ok {
		if s.tooltip != nil {
			s.tooltip = nil
			s.render()
		}
		return false
	}

	s.tooltip = &Tooltip{
		Text: fmt.Sprintf("Address: %s", s.graph.Nodes[i].ID),
		X:    p.X + tooltipOffset.X,
		Y:    p.Y + tooltipOffset.Y,
	}
	s.render()
	return true
}

// HoverEnd hides the tooltip.
func (s *Session) HoverEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tooltip = nil
	s.render()
}

// Click selects the node under the screen point p. Clicking empty space
// keeps the current selection.
func (s *Session) Click(p layout.Point) (txlinks.Address, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.nodeAt(p)
	if !ok {
		return "", false
	}

	id := s.graph.Nodes[i].ID
	s.selected = id
	s.render()
	return id, true
}

// Select selects the node id and opens its side panel. The id does not need
// to be in the current graph; the panel is then empty.
func (s *Session) Select(id txlinks.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = id
	s.render()
}

// ClearSelection closes the side panel.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = ""
	s.render()
}

// Selected returns the selected node, if any.
func (s *Session) Selected() (txlinks.Address, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selected, s.selected != ""
}

// DragStart grabs the node under the screen point p and pins it. Only one
// node is dragged at a time.
func (s *Session) DragStart(p layout.Point) (txlinks.Address, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dragging >= 0 {
		return "", false
	}

	i, ok := s.nodeAt(p)
	if !ok {
		return "", false
	}

	if err := s.sim.DragStart(i); err != nil {
		return "", false
	}

	s.dragging = i
	return s.graph.Nodes[i].ID, true
}

// DragMove moves the grabbed node's pin to the screen point p.
func (s *Session) DragMove(p layout.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dragging < 0 {
		return
	}

	q := s.viewport.Invert(p)
	_ = s.sim.Drag(s.dragging, q.X, q.Y)
}

// DragEnd releases the grabbed node.
func (s *Session) DragEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dragging < 0 {
		return
	}

	_ = s.sim.DragEnd(s.dragging)
	s.dragging = -1
}
