package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewport(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		p := Point{X: 3, Y: 4}

		assert.Equal(t, p, Identity.Apply(p))
		assert.Equal(t, p, Identity.Invert(p))
	})

	t.Run("apply and invert are inverse", func(t *testing.T) {
		v := Viewport{K: 2.5, X: 40, Y: -10}
		p := Point{X: 12, Y: 7}

		back := v.Invert(v.Apply(p))
		assert.InDelta(t, p.X, back.X, 1e-9)
		assert.InDelta(t, p.Y, back.Y, 1e-9)
	})

	t.Run("pan translates", func(t *testing.T) {
		v := Identity.Pan(10, -5).Pan(1, 1)
		assert.Equal(t, Viewport{K: 1, X: 11, Y: -4}, v)
	})

	t.Run("zoom keeps the anchor fixed", func(t *testing.T) {
		v := Viewport{K: 1, X: 20, Y: 30}
		anchor := Point{X: 600, Y: 400}
		world := v.Invert(anchor)

		zoomed := v.ZoomBy(2, anchor)

		assert.Equal(t, 2.0, zoomed.K)
		screen := zoomed.Apply(world)
		assert.InDelta(t, anchor.X, screen.X, 1e-9)
		assert.InDelta(t, anchor.Y, screen.Y, 1e-9)
	})

	t.Run("scale is clamped", func(t *testing.T) {
		assert.Equal(t, 10.0, Identity.ZoomBy(100, Point{}).K)
		assert.Equal(t, 0.1, Identity.ZoomBy(0.001, Point{}).K)
		assert.Equal(t, 10.0, Identity.ZoomTo(11, Point{}).K)
	})

	t.Run("renders as an svg transform", func(t *testing.T) {
		assert.Equal(t, "translate(10,-4.5) scale(2)", Viewport{K: 2, X: 10, Y: -4.5}.String())
	})
}
