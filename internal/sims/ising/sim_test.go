package ising

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"ising/internal/core"
)

func TestSimRegistered(t *testing.T) {
	factory, ok := core.Sims()["ising"]
	require.True(t, ok)
	sim := factory(map[string]string{"size": "12", "temp": "3.5", "seed": "9"})
	require.Equal(t, "ising", sim.Name())
	require.Equal(t, core.Size{W: 12, H: 12}, sim.Size())
	require.Len(t, sim.Cells(), 144)
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	cfg := FromMap(map[string]string{"size": "-4", "temp": "0", "sweeps": "x"})
	require.Equal(t, DefaultConfig(), cfg)

	cfg = FromMap(map[string]string{"size": "32", "temp": "1.5", "seed": "-7", "sweeps": "3"})
	require.Equal(t, Config{Size: 32, Temperature: 1.5, Seed: -7, SweepsPerStep: 3}, cfg)
}

func TestSimResetDeterministic(t *testing.T) {
	sim := New(Config{Size: 16, Temperature: 2, Seed: 4})
	initial := slices.Clone(sim.Cells())

	sim.Step()
	sim.Step()
	require.Equal(t, 2, sim.Sweeps())

	sim.Reset(0)
	require.Equal(t, initial, sim.Cells())
	require.Zero(t, sim.Sweeps())

	sim.Reset(77)
	other := slices.Clone(sim.Cells())
	sim.Reset(77)
	require.Equal(t, other, sim.Cells())
}

func TestSimCellsMirrorSpins(t *testing.T) {
	sim := New(Config{Size: 10, Temperature: 3, Seed: 1, SweepsPerStep: 2})
	sim.Step()
	require.Equal(t, 2, sim.Sweeps())
	for i, s := range sim.Lattice().Spins() {
		want := uint8(0)
		if s > 0 {
			want = 1
		}
		require.Equal(t, want, sim.Cells()[i])
	}
	rate := sim.AcceptanceRate()
	require.Greater(t, rate, 0.0)
	require.LessOrEqual(t, rate, 1.0)
}

func TestSimTemperatureControl(t *testing.T) {
	sim := New(Config{Size: 8, Temperature: 2, Seed: 1})
	controls := sim.ParameterControls()
	require.Len(t, controls, 1)
	require.Equal(t, "temp", controls[0].Key)

	require.True(t, sim.SetFloatParameter("temp", 4.5))
	require.Equal(t, 4.5, sim.Temperature())
	require.False(t, sim.SetFloatParameter("temp", -1))
	require.Equal(t, 4.5, sim.Temperature())
	require.False(t, sim.SetFloatParameter("size", 3))

	snap := sim.Parameters()
	require.Len(t, snap.Groups, 2)
	require.Equal(t, "4.500", snap.Groups[0].Params[1].Value)
}

func TestNewFallsBackOnInvalidConfig(t *testing.T) {
	sim := New(Config{Size: 0, Temperature: -2})
	def := DefaultConfig()
	require.Equal(t, core.Size{W: def.Size, H: def.Size}, sim.Size())
	require.Equal(t, def.Temperature, sim.Temperature())
}
