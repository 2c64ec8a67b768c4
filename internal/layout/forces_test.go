package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkForce(t *testing.T) {
	t.Run("strength and bias follow degrees", func(t *testing.T) {
		f := newLinkForce([][2]int{{0, 1}, {0, 2}, {0, 3}}, 4, 30, newLCG())

		for _, l := range f.links {
			assert.Equal(t, 1.0, l.strength, "min degree is the leaf's, 1")
			assert.Equal(t, 0.75, l.bias, "hub has 3 of the 4 link ends")
		}
	})

	t.Run("pulls stretched links back to their rest length", func(t *testing.T) {
		nodes := []Node{{X: 0, Y: 0}, {X: 100, Y: 0.000001}}
		f := newLinkForce([][2]int{{0, 1}}, 2, 30, newLCG())

		f.apply(nodes, 1)

		assert.InDelta(t, 35, nodes[0].VX, 1e-6)
		assert.InDelta(t, -35, nodes[1].VX, 1e-6)
	})

	t.Run("separates coincident endpoints", func(t *testing.T) {
		nodes := []Node{{X: 5, Y: 5}, {X: 5, Y: 5}}
		f := newLinkForce([][2]int{{0, 1}}, 2, 30, newLCG())

		f.apply(nodes, 1)

		assert.NotEqual(t, nodes[0].VX, nodes[1].VX)
	})
}

func TestChargeForce(t *testing.T) {
	t.Run("negative strength repels", func(t *testing.T) {
		nodes := []Node{{X: 0, Y: 0}, {X: 10, Y: 0}}
		f := &chargeForce{strength: -30, distanceMin2: 1, random: newLCG()}

		f.apply(nodes, 1)

		assert.InDelta(t, -3, nodes[0].VX, 1e-6)
		assert.InDelta(t, 3, nodes[1].VX, 1e-6)
	})

	t.Run("scales with alpha", func(t *testing.T) {
		nodes := []Node{{X: 0, Y: 0}, {X: 10, Y: 0}}
		f := &chargeForce{strength: -30, distanceMin2: 1, random: newLCG()}

		f.apply(nodes, 0.5)

		assert.InDelta(t, -1.5, nodes[0].VX, 1e-6)
	})

	t.Run("coincident nodes get a finite push", func(t *testing.T) {
		nodes := []Node{{X: 1, Y: 1}, {X: 1, Y: 1}}
		f := &chargeForce{strength: -30, distanceMin2: 1, random: newLCG()}

		f.apply(nodes, 1)

		for _, n := range nodes {
			assert.False(t, math.IsNaN(n.VX), "velocity must not be NaN")
			assert.False(t, math.IsNaN(n.VY), "velocity must not be NaN")
		}
	})
}

func TestPositionForce(t *testing.T) {
	nodes := []Node{{X: 0, Y: 0}}

	(&positionForce{axis: axisX, target: 600, strength: 0.1}).apply(nodes, 1)
	(&positionForce{axis: axisY, target: 400, strength: 0.1}).apply(nodes, 0.5)

	assert.InDelta(t, 60, nodes[0].VX, 1e-9)
	assert.InDelta(t, 20, nodes[0].VY, 1e-9)
}

func TestLCG(t *testing.T) {
	r := newLCG()

	first := r.next()
	assert.InDelta(t, float64((1664525+1013904223)%4294967296)/4294967296, first, 1e-15)

	for range 1000 {
		v := r.next()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}

	j := newLCG().jiggle()
	assert.Less(t, j, 1e-6)
	assert.Greater(t, j, -1e-6)
}
