package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters of the live viewer.
type Config struct {
	Size        int
	Temperature float64
	Sweeps      int
	Scale       int
	TPS         int
	Seed        int64
	HUDWidth    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Size: 128, Temperature: 2.27, Sweeps: 1, Scale: 4, TPS: 30, Seed: 42, HUDWidth: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "lattice side length")
	fs.Float64Var(&c.Temperature, "temp", c.Temperature, "initial temperature")
	fs.IntVar(&c.Sweeps, "sweeps", c.Sweeps, "Metropolis sweeps per frame")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for lattice reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
}

// SimParams renders the lattice settings in the key/value form sim factories
// accept.
func (c *Config) SimParams() map[string]string {
	return map[string]string{
		"size":   strconv.Itoa(c.Size),
		"temp":   strconv.FormatFloat(c.Temperature, 'g', -1, 64),
		"seed":   strconv.FormatInt(c.Seed, 10),
		"sweeps": strconv.Itoa(c.Sweeps),
	}
}
