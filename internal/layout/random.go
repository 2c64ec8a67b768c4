package layout

// lcg is a linear congruential generator producing values in [0, 1). The
// sequence is fixed so two simulations of the same graph evolve identically.
type lcg struct {
	state uint64
}

const (
	lcgA = 1664525
	lcgC = 1013904223
	lcgM = 4294967296
)

func newLCG() *lcg {
	return &lcg{state: 1}
}

func (r *lcg) next() float64 {
	r.state = (lcgA*r.state + lcgC) % lcgM
	return float64(r.state) / lcgM
}

// jiggle returns a tiny non-zero offset used to separate coincident nodes.
func (r *lcg) jiggle() float64 {
	return (r.next() - 0.5) * 1e-6
}
