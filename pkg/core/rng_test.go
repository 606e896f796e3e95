package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 256; i++ {
		require.Equal(t, a.Bernoulli(0.5), b.Bernoulli(0.5), "draw %d", i)
		require.Equal(t, a.Bool(), b.Bool(), "draw %d", i)
	}
}

func TestBernoulliBounds(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		require.True(t, r.Bernoulli(1))
		require.True(t, r.Bernoulli(1.5))
		require.False(t, r.Bernoulli(0))
		require.False(t, r.Bernoulli(-0.1))
	}
}

func TestBernoulliConsumesOneDraw(t *testing.T) {
	a := NewRNG(11)
	b := NewRNG(11)
	a.Bernoulli(1)
	b.Bernoulli(0.3)
	for i := 0; i < 64; i++ {
		require.Equal(t, a.Bool(), b.Bool(), "draw %d", i)
	}
}

func TestBernoulliFrequency(t *testing.T) {
	r := NewRNG(3)
	const draws = 100000
	hits := 0
	for i := 0; i < draws; i++ {
		if r.Bernoulli(0.25) {
			hits++
		}
	}
	require.InDelta(t, 0.25, float64(hits)/draws, 0.01)
}

func TestDeriveSeedDistinctStreams(t *testing.T) {
	seen := make(map[int64]int)
	for i := 0; i < 1024; i++ {
		s := DeriveSeed(1337, i)
		prev, dup := seen[s]
		require.False(t, dup, "index %d collides with %d", i, prev)
		seen[s] = i
	}
	require.Equal(t, DeriveSeed(1337, 5), DeriveSeed(1337, 5))
	require.NotEqual(t, DeriveSeed(1337, 5), DeriveSeed(1338, 5))
}
