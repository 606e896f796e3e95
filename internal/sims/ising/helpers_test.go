package ising

// fixedSource compares every Bernoulli trial against the same uniform draw f
// and counts the trials.
type fixedSource struct {
	f     float64
	b     bool
	draws int
}

func (s *fixedSource) Bool() bool { return s.b }

func (s *fixedSource) Bernoulli(p float64) bool {
	s.draws++
	return s.f < p
}

func mustUniform(t interface{ Fatalf(string, ...any) }, size int, spin int8) *Lattice {
	l, err := NewUniformLattice(size, spin)
	if err != nil {
		t.Fatalf("uniform lattice: %v", err)
	}
	return l
}

func mustTable(t interface{ Fatalf(string, ...any) }, temperature float64) *TransitionTable {
	table, err := NewTransitionTable(temperature)
	if err != nil {
		t.Fatalf("transition table: %v", err)
	}
	return table
}
