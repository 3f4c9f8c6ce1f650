package app

import (
	"flag"
	"testing"
)

func TestFromMapDefaults(t *testing.T) {
	c := FromMap(nil)
	if *c != *NewConfig() {
		t.Fatalf("FromMap(nil) = %+v", c)
	}
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"size":    "40",
		"density": "0",
		"fps":     "25",
		"seed":    "-9",
		"pattern": "glider.txt",
		"scale":   "nope",
		"tps":     "-1",
	})
	if c.Size != 40 || c.Density != 0 || c.FPS != 25 || c.Seed != -9 || c.Pattern != "glider.txt" {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.Scale != 10 || c.TPS != 60 {
		t.Fatalf("invalid entries should keep defaults: %+v", c)
	}
}

func TestBind(t *testing.T) {
	c := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse([]string{"-size", "30", "-density", "5", "-pattern", "p.txt"}); err != nil {
		t.Fatal(err)
	}
	if c.Size != 30 || c.Density != 5 || c.Pattern != "p.txt" || c.FPS != 10 {
		t.Fatalf("flags not bound: %+v", c)
	}
}

func TestValidate(t *testing.T) {
	for _, mutate := range []func(*Config){
		func(c *Config) { c.Size = 0 },
		func(c *Config) { c.Density = -1 },
		func(c *Config) { c.FPS = 0 },
		func(c *Config) { c.Scale = -2 },
		func(c *Config) { c.TPS = 0 },
	} {
		c := NewConfig()
		mutate(c)
		if err := c.Validate(); err == nil {
			t.Fatalf("config %+v accepted", c)
		}
	}
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
}
