package app

import (
	"fmt"
	"log"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/life"
)

// Session is the host-side state wrapped around an engine: generation
// cadence, pause state, the random source and the on-screen cell scale.
type Session struct {
	engine  *life.Engine
	cadence *core.FixedStep
	rng     *core.RNG

	seed     int64
	rate     int
	scale    int
	paused   bool
	tickOnce bool
}

// NewSession builds the engine described by cfg and seeds it, either from
// cfg.Pattern or randomly. A pattern that cannot be read is logged and the
// session falls back to a random seed.
func NewSession(cfg *Config) (*Session, error) {
	return newSession(cfg, time.Now)
}

func newSession(cfg *Config, now func() time.Time) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	engine, err := life.New(cfg.Size, cfg.Density)
	if err != nil {
		return nil, fmt.Errorf("app: create engine: %w", err)
	}
	s := &Session{
		engine:  engine,
		cadence: core.NewFixedStepWithClock(cfg.FPS, now),
		rate:    cfg.FPS,
		scale:   cfg.Scale,
	}
	if cfg.Pattern != "" {
		if err := s.Load(cfg.Pattern); err == nil {
			return s, nil
		}
	}
	s.Reseed(cfg.Seed)
	return s, nil
}

// Engine exposes the simulation for read access by renderers.
func (s *Session) Engine() *life.Engine { return s.engine }

// Scale returns the current pixels-per-cell factor.
func (s *Session) Scale() int { return s.scale }

// Seed returns the seed of the last random pattern.
func (s *Session) Seed() int64 { return s.seed }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// TogglePause suspends or resumes automatic stepping.
func (s *Session) TogglePause() { s.paused = !s.paused }

// Resume restarts automatic stepping.
func (s *Session) Resume() { s.paused = false }

// StepOnce requests a single generation on the next Tick, even when paused.
func (s *Session) StepOnce() { s.tickOnce = true }

// Rate returns the number of generations per second.
func (s *Session) Rate() int { return s.rate }

// SetRate changes the number of generations per second, clamped to
// [1, MaxRate].
func (s *Session) SetRate(fps int) {
	s.rate = rateControl.Clamp(fps)
	s.cadence.SetTPS(s.rate)
}

// Tick advances the engine when a single step was requested or when running
// and the generation interval has elapsed. It reports whether a generation
// was computed.
func (s *Session) Tick() bool {
	if s.tickOnce {
		s.tickOnce = false
		s.engine.Step()
		return true
	}
	if s.paused || !s.cadence.ShouldStep() {
		return false
	}
	s.engine.Step()
	return true
}

// Reseed replaces the population with a random pattern drawn from seed and
// records it as the restore point.
func (s *Session) Reseed(seed int64) {
	s.seed = seed
	s.rng = core.NewRNG(seed)
	s.engine.SeedRandom(s.rng)
	s.engine.Snapshot()
}

// Randomize reseeds from the wall clock.
func (s *Session) Randomize() { s.Reseed(time.Now().UnixNano()) }

// Reset returns to the last seeded or loaded pattern.
func (s *Session) Reset() { s.engine.Restore() }

// Load replaces the population with the pattern file at path and records it
// as the restore point. On failure the population is unchanged.
func (s *Session) Load(path string) error {
	if err := s.engine.LoadPatternFile(path); err != nil {
		log.Printf("load pattern: %v", err)
		return err
	}
	s.engine.Snapshot()
	return nil
}

// Center fits the cell scale to a view of viewW x viewH pixels, using the
// longer side, and moves the population to the middle of the grid.
func (s *Session) Center(viewW, viewH int) {
	size := s.engine.MapSize()
	span := viewH
	if viewW > viewH {
		span = viewW
	}
	if scale := span / size; scale > 0 {
		s.scale = scale
	} else {
		s.scale = 1
	}
	s.engine.Center()
}

// ToggleAt flips the cell under the pixel position (px, py). Positions
// outside the grid are ignored.
func (s *Session) ToggleAt(px, py int) bool {
	if px < 0 || py < 0 {
		return false
	}
	x, y := px/s.scale, py/s.scale
	size := s.engine.MapSize()
	if x >= size || y >= size {
		return false
	}
	s.engine.Toggle(life.Coord{X: x, Y: y})
	return true
}
