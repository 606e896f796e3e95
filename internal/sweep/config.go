package sweep

import (
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"ising/internal/sims/ising"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("sweep: invalid config")

// tempScale is the fixed-point factor temperatures are stepped with.
const tempScale = 100

// maxTemperature bounds temperatures and steps so their scaled values fit an int.
const maxTemperature = 1e6

// Config enumerates everything a sweep depends on.
type Config struct {
	Protocol     ising.Protocol `toml:"protocol"`
	LatticeSizes []int          `toml:"lattice_sizes"`
	TempMin      float64        `toml:"temp_min"`
	TempMax      float64        `toml:"temp_max"`
	TempStep     float64        `toml:"temp_step"`

	// Seed is the base seed every run's stream is derived from. The CLI
	// replaces zero with a clock-derived seed.
	Seed int64 `toml:"seed"`
	// Workers bounds the number of concurrent runs; <= 0 means NumCPU.
	Workers int `toml:"workers"`
}

// DefaultConfig returns the standard grid: sizes 6, 15, 40 and 70 over
// temperatures 1.00 to 4.95 in steps of 0.05.
func DefaultConfig() Config {
	return Config{
		Protocol:     ising.DefaultProtocol(),
		LatticeSizes: []int{6, 15, 40, 70},
		TempMin:      1.0,
		TempMax:      5.0,
		TempStep:     0.05,
	}
}

// LoadFile decodes a TOML file over the defaults. Keys missing from the file
// keep their default values.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.Wrapf(ErrInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Validate reports whether the config describes a non-empty grid.
func (c Config) Validate() error {
	if err := c.Protocol.Validate(); err != nil {
		return errors.WithStack(fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	if len(c.LatticeSizes) == 0 {
		return errors.Wrap(ErrInvalidConfig, "no lattice sizes")
	}
	for _, size := range c.LatticeSizes {
		if size <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "lattice size %d <= 0", size)
		}
	}
	for _, v := range []float64{c.TempMin, c.TempMax, c.TempStep} {
		if !inTemperatureRange(v) {
			return errors.Wrapf(ErrInvalidConfig, "temperature value %v outside (0, %v]", v, maxTemperature)
		}
	}
	if !(c.TempMin < c.TempMax) {
		return errors.Wrapf(ErrInvalidConfig, "temp_min %v >= temp_max %v", c.TempMin, c.TempMax)
	}
	if math.Round(c.TempStep*tempScale) < 1 {
		return errors.Wrapf(ErrInvalidConfig, "temp_step %v must be at least %v", c.TempStep, 1.0/tempScale)
	}
	if len(c.Temperatures()) == 0 {
		return errors.Wrapf(ErrInvalidConfig, "no temperatures in [%v, %v) at %v resolution", c.TempMin, c.TempMax, 1.0/tempScale)
	}
	return nil
}

func inTemperatureRange(v float64) bool {
	return v > 0 && v <= maxTemperature
}

// WorkerCount returns the effective concurrency.
func (c Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// Temperatures returns the half-open range [min, max) stepped by step. The
// bounds are scaled to hundredths and rounded so the values do not drift with
// repeated float addition.
func Temperatures(min, max, step float64) []float64 {
	for _, v := range []float64{min, max, step} {
		if math.IsNaN(v) || math.Abs(v) > maxTemperature {
			return nil
		}
	}
	lo := int(math.Round(min * tempScale))
	hi := int(math.Round(max * tempScale))
	inc := int(math.Round(step * tempScale))
	if inc <= 0 || lo >= hi {
		return nil
	}
	temps := make([]float64, 0, (hi-lo+inc-1)/inc)
	for x := lo; x < hi; x += inc {
		temps = append(temps, float64(x)/tempScale)
	}
	return temps
}

// Temperatures returns the configured temperature grid.
func (c Config) Temperatures() []float64 {
	return Temperatures(c.TempMin, c.TempMax, c.TempStep)
}

// Point is one (size, temperature) combination of the grid.
type Point struct {
	// Index is the position in enumeration order; it selects the run's
	// random stream.
	Index       int
	Size        int
	Temperature float64
	Table       *ising.TransitionTable
}

// Points enumerates sizes × temperatures, sizes outermost.
func (c Config) Points() ([]Point, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	temps := c.Temperatures()
	tables := make([]*ising.TransitionTable, len(temps))
	for i, t := range temps {
		table, err := ising.NewTransitionTable(t)
		if err != nil {
			return nil, err
		}
		tables[i] = table
	}

	points := make([]Point, 0, len(c.LatticeSizes)*len(temps))
	for _, size := range c.LatticeSizes {
		for i, t := range temps {
			points = append(points, Point{
				Index:       len(points),
				Size:        size,
				Temperature: t,
				Table:       tables[i],
			})
		}
	}
	return points, nil
}
