package layout

import (
	"fmt"
)

const (
	minScale = 0.1
	maxScale = 10
)

// Viewport is the pan/zoom transform applied to the whole scene: a layout
// point p is drawn at p*K + (X, Y).
type Viewport struct {
	K float64 `json:"k" yaml:"k"`
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Identity is the transform that draws layout coordinates as-is.
var Identity = Viewport{K: 1}

func clampScale(k float64) float64 {
	return max(minScale, min(maxScale, k))
}

// Apply maps a layout point to screen coordinates.
func (v Viewport) Apply(p Point) Point {
	return Point{X: p.X*v.K + v.X, Y: p.Y*v.K + v.Y}
}

// Invert maps a screen point back to layout coordinates.
func (v Viewport) Invert(p Point) Point {
	return Point{X: (p.X - v.X) / v.K, Y: (p.Y - v.Y) / v.K}
}

// Pan translates the view by (dx, dy) screen units.
func (v Viewport) Pan(dx, dy float64) Viewport {
	return Viewport{K: v.K, X: v.X + dx, Y: v.Y + dy}
}

// ZoomBy multiplies the scale by factor, keeping the screen point anchor
// fixed. The resulting scale is clamped to [0.1, 10].
func (v Viewport) ZoomBy(factor float64, anchor Point) Viewport {
	return v.ZoomTo(v.K*factor, anchor)
}

// ZoomTo sets the scale to k, keeping the screen point anchor fixed.
func (v Viewport) ZoomTo(k float64, anchor Point) Viewport {
	k = clampScale(k)

	world := v.Invert(anchor)
	return Viewport{
		K: k,
		X: anchor.X - world.X*k,
		Y: anchor.Y - world.Y*k,
	}
}

// String renders the transform as an SVG transform attribute.
func (v Viewport) String() string {
	return fmt.Sprintf("translate(%g,%g) scale(%g)", v.X, v.Y, v.K)
}
