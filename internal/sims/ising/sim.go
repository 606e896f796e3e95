package ising

import (
	"strconv"

	"ising/internal/core"
	rngcore "ising/pkg/core"
)

const (
	minViewTemperature = 0.05
	maxViewTemperature = 10
)

// Sim runs a single lattice indefinitely, one or more sweeps per Step. It is
// the steppable counterpart of Run used by the live viewer.
type Sim struct {
	cfg     Config
	lattice *Lattice
	table   *TransitionTable
	rng     *rngcore.RNG
	display []uint8

	sweeps   int
	accepted int
}

// New returns a Sim for cfg. Invalid sizes and temperatures fall back to the
// defaults.
func New(cfg Config) *Sim {
	def := DefaultConfig()
	if cfg.Size <= 0 {
		cfg.Size = def.Size
	}
	if cfg.SweepsPerStep <= 0 {
		cfg.SweepsPerStep = 1
	}
	table, err := NewTransitionTable(cfg.Temperature)
	if err != nil {
		cfg.Temperature = def.Temperature
		table, _ = NewTransitionTable(cfg.Temperature)
	}
	s := &Sim{cfg: cfg, table: table, display: make([]uint8, cfg.Size*cfg.Size)}
	s.Reset(0)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "ising" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Size, H: s.cfg.Size} }

// Cells exposes the display buffer: 1 for spin up, 0 for spin down.
func (s *Sim) Cells() []uint8 { return s.display }

// Lattice exposes the live spins.
func (s *Sim) Lattice() *Lattice { return s.lattice }

// Reset draws a fresh random lattice. A zero seed reuses the configured one.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.rng = rngcore.NewRNG(seed)
	s.lattice, _ = NewLattice(s.cfg.Size, s.rng)
	s.sweeps = 0
	s.accepted = 0
	s.refreshDisplay()
}

// Step performs SweepsPerStep Metropolis sweeps.
func (s *Sim) Step() {
	for i := 0; i < s.cfg.SweepsPerStep; i++ {
		s.accepted += Sweep(s.lattice, s.table, s.rng)
		s.sweeps++
	}
	s.refreshDisplay()
}

func (s *Sim) refreshDisplay() {
	for i, spin := range s.lattice.spins {
		if spin > 0 {
			s.display[i] = 1
		} else {
			s.display[i] = 0
		}
	}
}

// Temperature returns the current temperature.
func (s *Sim) Temperature() float64 { return s.cfg.Temperature }

// Sweeps returns the number of sweeps since the last reset.
func (s *Sim) Sweeps() int { return s.sweeps }

// AcceptanceRate returns accepted flips per attempted flip since the last reset.
func (s *Sim) AcceptanceRate() float64 {
	if s.sweeps == 0 {
		return 0
	}
	return float64(s.accepted) / float64(s.sweeps*s.lattice.Len())
}

// Parameters reports the configuration and live observables.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				intParam("size", "Size", s.cfg.Size),
				floatParam("temp", "Temperature", s.cfg.Temperature),
				intParam("sweeps", "Sweeps", s.sweeps),
			},
		},
		{
			Name: "Observables",
			Params: []core.Parameter{
				floatParam("m", "Magnetization", Magnetization(s.lattice)),
				floatParam("accept", "Acceptance", s.AcceptanceRate()),
			},
		},
	}}
}

// ParameterControls exposes the temperature as the only adjustable value.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    "temp",
		Label:  "Temperature",
		Type:   core.ParamTypeFloat,
		Step:   0.05,
		Min:    minViewTemperature,
		HasMin: true,
		Max:    maxViewTemperature,
		HasMax: true,
	}}
}

// SetFloatParameter updates the temperature and rebuilds the transition table.
// The lattice is kept so the system relaxes from its current state.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	if key != "temp" {
		return false
	}
	table, err := NewTransitionTable(value)
	if err != nil {
		return false
	}
	s.cfg.Temperature = value
	s.table = table
	return true
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', 3, 64)}
}

func init() {
	core.Register("ising", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
