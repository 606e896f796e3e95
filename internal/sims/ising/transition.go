package ising

import (
	"math"

	"github.com/pkg/errors"
)

// ErrInvalidTemperature is returned for non-positive or non-finite temperatures.
var ErrInvalidTemperature = errors.New("ising: temperature must be positive and finite")

// EnergyChanges lists every ΔE a single flip can produce on the square lattice.
var EnergyChanges = [5]int{-8, -4, 0, 4, 8}

// TransitionTable holds Metropolis acceptance probabilities min(1, exp(-ΔE/T))
// for one temperature. It is immutable once built.
type TransitionTable struct {
	temperature float64
	accept      [5]float64
}

// NewTransitionTable precomputes the acceptance probabilities for temperature.
func NewTransitionTable(temperature float64) (*TransitionTable, error) {
	if !(temperature > 0) || math.IsInf(temperature, 1) {
		return nil, errors.Wrapf(ErrInvalidTemperature, "temperature %v", temperature)
	}
	t := &TransitionTable{temperature: temperature}
	for k, dE := range EnergyChanges {
		if dE == 0 {
			t.accept[k] = 1
			continue
		}
		t.accept[k] = math.Min(1, math.Exp(-float64(dE)/temperature))
	}
	return t, nil
}

// Temperature returns the temperature the table was built for.
func (t *TransitionTable) Temperature() float64 { return t.temperature }

// Accept returns the acceptance probability for energy change dE, which must
// be one of EnergyChanges.
func (t *TransitionTable) Accept(dE int) float64 {
	return t.accept[(dE+8)>>2]
}
