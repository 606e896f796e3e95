package ising

import (
	"math"

	"github.com/pkg/errors"
)

// ErrNoSamples is returned when estimates are requested from an empty accumulator.
var ErrNoSamples = errors.New("ising: no magnetization samples collected")

// Magnetization returns |Σ spins| / N, the absolute mean spin per site.
func Magnetization(l *Lattice) float64 {
	return math.Abs(float64(l.Sum()) / float64(l.Len()))
}

// Accumulator keeps running sums of sampled magnetizations.
type Accumulator struct {
	Sum        float64
	SumSquares float64
	Samples    int
}

// Add records one magnetization sample.
func (a *Accumulator) Add(m float64) {
	a.Sum += m
	a.SumSquares += m * m
	a.Samples++
}

// Estimate reduces the samples to the mean magnetization and the
// fluctuation-dissipation susceptibility (N/T)(<m²> - <m>²) for a lattice of
// sites spins at temperature.
func (a *Accumulator) Estimate(sites int, temperature float64) (magnetization, susceptibility float64, err error) {
	if a.Samples == 0 {
		return 0, 0, ErrNoSamples
	}
	n := float64(a.Samples)
	magnetization = a.Sum / n
	variance := a.SumSquares/n - magnetization*magnetization
	if variance < 0 {
		// Rounding on a constant sample stream.
		variance = 0
	}
	susceptibility = (float64(sites) / temperature) * variance
	return magnetization, susceptibility, nil
}
