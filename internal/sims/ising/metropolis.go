package ising

// Sweep attempts one Metropolis flip at every site in raster order and
// returns the number of accepted flips.
//
// Sites are visited 0..N-1 rather than picked at random, and each flip is
// written back immediately so later sites in the same sweep see it. Exactly
// one Bernoulli trial is drawn per site.
func Sweep(l *Lattice, table *TransitionTable, src Source) int {
	accepted := 0
	for i := range l.spins {
		if src.Bernoulli(table.Accept(l.EnergyChange(i))) {
			l.Flip(i)
			accepted++
		}
	}
	return accepted
}
