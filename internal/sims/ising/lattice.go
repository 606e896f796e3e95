package ising

import (
	"github.com/pkg/errors"

	"ising/internal/core"
)

// ErrInvalidSize is returned when a lattice side length is not positive.
var ErrInvalidSize = errors.New("ising: lattice size must be positive")

// Source is the random stream a run draws from. It is used by one goroutine
// at a time; concurrent runs need separate sources.
type Source interface {
	Bool() bool
	Bernoulli(p float64) bool
}

// Lattice is a size×size torus of ±1 spins stored row-major.
type Lattice struct {
	size      int
	spins     []int8
	neighbors [][4]int
}

// NewLattice returns a lattice whose spins are drawn independently and
// uniformly from {+1, -1}.
func NewLattice(size int, src Source) (*Lattice, error) {
	l, err := newLattice(size)
	if err != nil {
		return nil, err
	}
	for i := range l.spins {
		if src.Bool() {
			l.spins[i] = 1
		} else {
			l.spins[i] = -1
		}
	}
	return l, nil
}

// NewUniformLattice returns a lattice with every spin set to spin (+1 or -1).
func NewUniformLattice(size int, spin int8) (*Lattice, error) {
	if spin != 1 && spin != -1 {
		return nil, errors.Errorf("ising: spin must be +1 or -1, got %d", spin)
	}
	l, err := newLattice(size)
	if err != nil {
		return nil, err
	}
	for i := range l.spins {
		l.spins[i] = spin
	}
	return l, nil
}

func newLattice(size int) (*Lattice, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "size %d", size)
	}
	n := size * size
	l := &Lattice{size: size, spins: make([]int8, n), neighbors: make([][4]int, n)}
	for i := range l.neighbors {
		l.neighbors[i] = core.TorusNeighbors(i, size)
	}
	return l, nil
}

// Size returns the side length.
func (l *Lattice) Size() int { return l.size }

// Len returns the number of sites, size².
func (l *Lattice) Len() int { return len(l.spins) }

// Spins exposes the backing slice. Callers must only store +1 or -1.
func (l *Lattice) Spins() []int8 { return l.spins }

// Spin returns the spin at index i.
func (l *Lattice) Spin(i int) int8 { return l.spins[i] }

// Flip inverts the spin at index i.
func (l *Lattice) Flip(i int) { l.spins[i] = -l.spins[i] }

// Sum returns the total spin.
func (l *Lattice) Sum() int {
	total := 0
	for _, s := range l.spins {
		total += int(s)
	}
	return total
}

// NeighborSum returns the sum of the four periodic neighbours of site i.
func (l *Lattice) NeighborSum(i int) int {
	nb := &l.neighbors[i]
	return int(l.spins[nb[0]]) + int(l.spins[nb[1]]) + int(l.spins[nb[2]]) + int(l.spins[nb[3]])
}

// EnergyChange returns ΔE = 2·s·Σneighbours for flipping site i.
func (l *Lattice) EnergyChange(i int) int {
	return 2 * int(l.spins[i]) * l.NeighborSum(i)
}
