package layout

import (
	"math"
)

// config holds the simulation parameters.
type config struct {
	alphaMin       float64
	alphaDecay     float64
	velocityDecay  float64
	chargeStrength float64
	distanceMin2   float64
	linkDistance   float64
	centerStrength float64
}

// Option configures a Simulation.
type Option func(*config)

func defaultConfig() config {
	return config{
		alphaMin:       0.001,
		alphaDecay:     1 - math.Pow(0.001, 1.0/300),
		velocityDecay:  0.4,
		chargeStrength: -30,
		distanceMin2:   1,
		linkDistance:   30,
		centerStrength: 0.1,
	}
}

// WithAlphaMin sets the energy below which the simulation is settled.
// Default: 0.001.
func WithAlphaMin(v float64) Option {
	return func(c *config) {
		c.alphaMin = v
	}
}

// WithAlphaDecay sets the per-tick cooling rate.
// Default: 1 - 0.001^(1/300), about 300 ticks from 1 to settled.
func WithAlphaDecay(v float64) Option {
	return func(c *config) {
		c.alphaDecay = v
	}
}

// WithVelocityDecay sets the fraction of velocity lost on every tick.
// Default: 0.4.
func WithVelocityDecay(v float64) Option {
	return func(c *config) {
		c.velocityDecay = v
	}
}

// WithChargeStrength sets the many-body strength. Negative values repel.
// Default: -30.
func WithChargeStrength(v float64) Option {
	return func(c *config) {
		c.chargeStrength = v
	}
}

// WithLinkDistance sets the rest length of links.
// Default: 30.
func WithLinkDistance(v float64) Option {
	return func(c *config) {
		c.linkDistance = v
	}
}

// WithCenterStrength sets the strength of the pull towards the canvas centre.
// Default: 0.1.
func WithCenterStrength(v float64) Option {
	return func(c *config) {
		c.centerStrength = v
	}
}
