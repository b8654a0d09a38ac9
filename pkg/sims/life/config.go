package life

import (
	"strconv"

	"nd-life/internal/core"
)

// Config holds parameters for the N-dimensional Life simulation.
type Config struct {
	Dims int
	Rule Rule

	// Width and Height size the random 2D seed used by Reset.
	Width  int
	Height int
	Seed   int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Dims: 3, Rule: Conway, Width: 8, Height: 8, Seed: 42}
}

// FromMap populates a Config from a string map. Unparsable or out of range
// values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["dims"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed <= core.MaxDims {
			c.Dims = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := ParseRule(v); err == nil {
			c.Rule = parsed
		}
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
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
