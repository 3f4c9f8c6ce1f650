//go:build ebiten

package app

import (
	"torus-life/internal/render"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	theme   render.Theme
	light   bool

	viewW, viewH int
}

// New constructs a Game for the provided session.
func New(session *Session, hudWidth int) *Game {
	engine := session.Engine()
	return &Game{
		session: session,
		painter: render.NewGridPainter(engine.MapSize()),
		hud:     ui.NewHUD(session, hudWidth),
		theme:   render.LightTheme,
		light:   true,
	}
}

// Update handles per-frame input and advances the simulation on its cadence.
func (g *Game) Update() error {
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.Center(g.gridView())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		s.SetRate(s.Rate() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		s.SetRate(s.Rate() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.light = !g.light
		g.theme = render.DarkTheme
		if g.light {
			g.theme = render.LightTheme
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.ToggleAt(ebiten.CursorPosition())
	}

	g.hud.Update(g.gridWidth())
	s.Tick()
	return nil
}

// Draw renders the current population and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Engine(), g.theme, g.session.Scale())
	g.hud.Draw(screen, g.gridWidth(), g.session.Scale())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewW, g.viewH = outsideWidth, outsideHeight
	size := g.session.Engine().MapSize() * g.session.Scale()
	return size + g.hud.Width(), size
}

func (g *Game) gridWidth() int {
	return g.session.Engine().MapSize() * g.session.Scale()
}

func (g *Game) gridView() (int, int) {
	w := g.viewW - g.hud.Width()
	if w <= 0 || g.viewH <= 0 {
		return g.gridWidth(), g.gridWidth()
	}
	return w, g.viewH
}
