package layout

import (
	"math"
)

// force mutates node velocities for the current alpha.
type force interface {
	apply(nodes []Node, alpha float64)
}

// linkForce pulls linked nodes towards a rest distance. Each link's
// strength is 1/min(degree(source), degree(target)) and its correction is
// split between the endpoints in proportion to their degrees, so hubs move
// less than leaves.
type linkForce struct {
	links    []link
	distance float64
	random   *lcg
}

type link struct {
	source, target int
	strength       float64
	bias           float64
}

func newLinkForce(pairs [][2]int, nodeCount int, distance float64, random *lcg) *linkForce {
	count := make([]int, nodeCount)
	for _, p := range pairs {
		count[p[0]]++
		count[p[1]]++
	}

	links := make([]link, len(pairs))
	for i, p := range pairs {
		s, t := count[p[0]], count[p[1]]
		links[i] = link{
			source:   p[0],
			target:   p[1],
			strength: 1 / float64(min(s, t)),
			bias:     float64(s) / float64(s+t),
		}
	}

	return &linkForce{
		links:    links,
		distance: distance,
		random:   random,
	}
}

func (f *linkForce) apply(nodes []Node, alpha float64) {
	for _, l := range f.links {
		source, target := &nodes[l.source], &nodes[l.target]

		x := target.X + target.VX - source.X - source.VX
		if x == 0 {
			x = f.random.jiggle()
		}

		y := target.Y + target.VY - source.Y - source.VY
		if y == 0 {
			y = f.random.jiggle()
		}

		d := math.Sqrt(x*x + y*y)
		d = (d - f.distance) / d * alpha * l.strength
		x *= d
		y *= d

		target.VX -= x * l.bias
		target.VY -= y * l.bias
		source.VX += x * (1 - l.bias)
		source.VY += y * (1 - l.bias)
	}
}

// chargeForce is an all-pairs many-body force. A negative strength repels.
type chargeForce struct {
	strength     float64
	distanceMin2 float64
	random       *lcg
}

func (f *chargeForce) apply(nodes []Node, alpha float64) {
	for i := range nodes {
		node := &nodes[i]

		for j := range nodes {
			if i == j {
				continue
			}

			x := nodes[j].X - node.X
			y := nodes[j].Y - node.Y
			l := x*x + y*y

			if x == 0 {
				x = f.random.jiggle()
				l += x * x
			}
			if y == 0 {
				y = f.random.jiggle()
				l += y * y
			}
			if l < f.distanceMin2 {
				l = math.Sqrt(f.distanceMin2 * l)
			}

			w := f.strength * alpha / l
			node.VX += x * w
			node.VY += y * w
		}
	}
}

// positionForce pulls every node towards a fixed coordinate on one axis.
type positionForce struct {
	axis     axis
	target   float64
	strength float64
}

type axis int

const (
	axisX axis = iota
	axisY
)

func (f *positionForce) apply(nodes []Node, alpha float64) {
	for i := range nodes {
		node := &nodes[i]

		if f.axis == axisX {
			node.VX += (f.target - node.X) * f.strength * alpha
		} else {
			node.VY += (f.target - node.Y) * f.strength * alpha
		}
	}
}
