package ising

import "strconv"

// Config controls the live Ising simulation.
type Config struct {
	Size        int
	Temperature float64
	Seed        int64
	// SweepsPerStep is how many full sweeps one Step performs.
	SweepsPerStep int
}

// DefaultConfig returns the standard configuration, slightly below the
// critical temperature.
func DefaultConfig() Config {
	return Config{Size: 128, Temperature: 2.2, Seed: 1337, SweepsPerStep: 1}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["temp"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Temperature = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["sweeps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SweepsPerStep = parsed
		}
	}
	return c
}
