package layout

import (
	"context"
	"time"

	"github.com/gabapcia/aethersight/internal/pkg/x/chflow"
)

// TickFunc receives the node positions after every tick.
type TickFunc func(positions []Point)

// Driver advances a Simulation on a fixed cadence.
type Driver struct {
	sim      *Simulation
	interval time.Duration
}

// NewDriver returns a driver ticking sim every interval. A non-positive
// interval defaults to one frame at 60 Hz.
func NewDriver(sim *Simulation, interval time.Duration) *Driver {
	if interval <= 0 {
		interval = time.Second / 60
	}

	return &Driver{
		sim:      sim,
		interval: interval,
	}
}

// Run ticks the simulation and calls onTick after every tick until ctx is
// done. Once the simulation settles Run idles, without ticking, until a drag
// or Reheat wakes it up again.
func (d *Driver) Run(ctx context.Context, onTick TickFunc) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		chflow.Drain(d.sim.Restarted())

		d.sim.Tick()
		onTick(d.sim.Positions())

		if !d.sim.Settled() {
			continue
		}

		if _, ok := chflow.Receive(ctx, d.sim.Restarted()); !ok {
			return nil
		}
	}
}
