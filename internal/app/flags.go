package app

import (
	"flag"
	"strconv"
	"time"
)

// Config represents the command-line parameters for the drivers.
type Config struct {
	Sim       string
	Width     int
	Height    int
	Scale     int
	TPS       int
	Seed      int64
	FullRange bool
	HUDWidth  int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Width: 200, Height: 200, Scale: 5, TPS: 20, HUDWidth: 160}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel size of a cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 picks one from the clock)")
	fs.BoolVar(&c.FullRange, "full-range", c.FullRange, "seed the last row and column too")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the statistics panel in pixels (0 hides it)")
}

// SimOptions converts the grid settings into the key/value form accepted by
// sim factories.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":          strconv.Itoa(c.Width),
		"h":          strconv.Itoa(c.Height),
		"full_range": strconv.FormatBool(c.FullRange),
	}
}

// ResolveSeed returns the configured seed, or one derived from the clock
// when none was given.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
