package life

import "strconv"

// Config controls the Life simulation dimensions and seeding.
type Config struct {
	Width  int
	Height int

	// FullRange seeds the last row and column too.
	FullRange bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 200, Height: 200}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["full_range"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.FullRange = parsed
		}
	}
	return c
}
