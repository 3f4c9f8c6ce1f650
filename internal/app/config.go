package app

import (
	"flag"
	"fmt"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Size    int
	Density int
	FPS     int
	Scale   int
	TPS     int
	Seed    int64
	Pattern string
	HUD     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Size: 75, Density: 3, FPS: 10, Scale: 10, TPS: 60, Seed: 42, HUD: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "side length of the toroidal grid")
	fs.IntVar(&c.Density, "density", c.Density, "random seed sparsity; each cell is live with probability 1/(density+1)")
	fs.IntVar(&c.FPS, "fps", c.FPS, "generations per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern file to load instead of a random seed ('#' marks live cells)")
	fs.IntVar(&c.HUD, "hud", c.HUD, "width of the statistics panel in pixels (0 hides it)")
}

// FromMap populates a Config from a string map. Invalid entries keep their
// defaults.
func FromMap(cfg map[string]string) *Config {
	c := NewConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["fps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.FPS = parsed
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["hud"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.HUD = parsed
		}
	}
	return c
}

// Validate reports values that flags can set but the host cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Size <= 0:
		return fmt.Errorf("size must be positive, got %d", c.Size)
	case c.Density < 0:
		return fmt.Errorf("density must not be negative, got %d", c.Density)
	case c.FPS <= 0:
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	case c.Scale <= 0:
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	case c.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}
