package ising

import (
	"github.com/pkg/errors"
)

// ErrInvalidProtocol is returned by Protocol.Validate.
var ErrInvalidProtocol = errors.New("ising: invalid protocol")

// Protocol fixes the sweep counts of a single run.
type Protocol struct {
	// InitialSteps sweeps are run and discarded before measuring.
	InitialSteps int `toml:"initial_steps"`
	// LaterSteps sweeps are run while sampling.
	LaterSteps int `toml:"later_steps"`
	// MagnCalcStep is the sampling cadence during the LaterSteps sweeps.
	MagnCalcStep int `toml:"magn_calc_step"`
}

// DefaultProtocol returns 30 000 equilibration sweeps followed by 200 000
// sampling sweeps observed every 100th sweep.
func DefaultProtocol() Protocol {
	return Protocol{InitialSteps: 30_000, LaterSteps: 200_000, MagnCalcStep: 100}
}

// Validate reports whether the sweep counts describe a runnable protocol.
func (p Protocol) Validate() error {
	switch {
	case p.InitialSteps < 0:
		return errors.Wrapf(ErrInvalidProtocol, "initial_steps %d < 0", p.InitialSteps)
	case p.LaterSteps <= 0:
		return errors.Wrapf(ErrInvalidProtocol, "later_steps %d <= 0", p.LaterSteps)
	case p.MagnCalcStep <= 0:
		return errors.Wrapf(ErrInvalidProtocol, "magn_calc_step %d <= 0", p.MagnCalcStep)
	}
	return nil
}

// Samples returns how many magnetization samples the protocol collects.
func (p Protocol) Samples() int {
	if p.LaterSteps <= 0 || p.MagnCalcStep <= 0 {
		return 0
	}
	return (p.LaterSteps + p.MagnCalcStep - 1) / p.MagnCalcStep
}

// Result holds the estimates for one (size, temperature) point.
type Result struct {
	Size           int
	Temperature    float64
	Magnetization  float64
	Susceptibility float64
}

// Run simulates one lattice of the given size at the temperature the table
// was built for: a random start, p.InitialSteps discarded sweeps, then
// p.LaterSteps sweeps sampling the magnetization after every sweep whose
// index is a multiple of p.MagnCalcStep.
func Run(size int, table *TransitionTable, p Protocol, src Source) (Result, error) {
	if table == nil {
		return Result{}, errors.New("ising: nil transition table")
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	lattice, err := NewLattice(size, src)
	if err != nil {
		return Result{}, err
	}

	for i := 0; i < p.InitialSteps; i++ {
		Sweep(lattice, table, src)
	}

	var acc Accumulator
	for i := 0; i < p.LaterSteps; i++ {
		Sweep(lattice, table, src)
		if i%p.MagnCalcStep == 0 {
			acc.Add(Magnetization(lattice))
		}
	}

	temperature := table.Temperature()
	m, chi, err := acc.Estimate(lattice.Len(), temperature)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Size:           size,
		Temperature:    temperature,
		Magnetization:  m,
		Susceptibility: chi,
	}, nil
}
