package ising

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	rngcore "ising/pkg/core"
)

func TestSweepOneDrawPerSite(t *testing.T) {
	l := mustUniform(t, 6, 1)
	src := &fixedSource{f: 0.999}
	Sweep(l, mustTable(t, 2), src)
	require.Equal(t, 36, src.draws)
}

func TestSweepAlignedLatticeFrozenAtLowTemperature(t *testing.T) {
	l := mustUniform(t, 5, -1)
	accepted := Sweep(l, mustTable(t, 0.01), &fixedSource{f: 0.5})
	require.Zero(t, accepted)
	require.Equal(t, -25, l.Sum())
}

func TestSweepAlwaysAcceptsWithZeroDraw(t *testing.T) {
	l := mustUniform(t, 3, 1)
	accepted := Sweep(l, mustTable(t, 1), &fixedSource{f: 0})
	require.Equal(t, 9, accepted)
	require.Equal(t, -9, l.Sum())
}

func TestSweepUpdatesInPlace(t *testing.T) {
	// At T=8 a draw of 0.5 accepts dE <= 4 (p=0.61) and rejects dE = 8
	// (p=0.37). Flipping site 0 first leaves every later site with dE = 8;
	// a double-buffered sweep would also flip the four neighbours of 0.
	l := mustUniform(t, 4, 1)
	l.Flip(0)
	accepted := Sweep(l, mustTable(t, 8), &fixedSource{f: 0.5})
	require.Equal(t, 1, accepted)
	require.Equal(t, 16, l.Sum())
}

func TestSweepRasterOrderCascade(t *testing.T) {
	// Same acceptance rule as above. With site 15 down, site 3 is the first
	// one visited that sees dE = 4 and flips; each new down spin then lowers
	// dE for the sites that follow it in the scan. Site 15 ends surrounded
	// by down spins and stays down.
	l := mustUniform(t, 4, 1)
	l.Flip(15)
	accepted := Sweep(l, mustTable(t, 8), &fixedSource{f: 0.5})
	require.Equal(t, 6, accepted)

	down := []int{3, 7, 11, 12, 13, 14, 15}
	for i := 0; i < 16; i++ {
		want := int8(1)
		if slices.Contains(down, i) {
			want = -1
		}
		require.Equal(t, want, l.Spin(i), "site %d", i)
	}
}

func TestSweepDeterministicWithSeed(t *testing.T) {
	table := mustTable(t, 2.3)
	run := func() []int8 {
		src := rngcore.NewRNG(2024)
		l, err := NewLattice(15, src)
		require.NoError(t, err)
		for i := 0; i < 50; i++ {
			Sweep(l, table, src)
		}
		return slices.Clone(l.Spins())
	}
	require.Equal(t, run(), run())
}
