package window

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridpong/internal/game"
)

// keyMap pairs each key the game reacts to with its core key id, in a
// fixed order so same-frame presses resolve deterministically.
var keyMap = []struct {
	eb ebiten.Key
	k  game.Key
}{
	{ebiten.KeyArrowUp, game.KeyUp},
	{ebiten.KeyArrowDown, game.KeyDown},
	{ebiten.KeyArrowLeft, game.KeyLeft},
	{ebiten.KeyArrowRight, game.KeyRight},
	{ebiten.KeyW, game.KeyW},
	{ebiten.KeyS, game.KeyS},
}

// App adapts the game to ebiten's run loop.
type App struct {
	game  game.Game
	cfg   game.Config
	clock *game.Clock
}

func New(g game.Game, cfg game.Config) *App {
	return &App{game: g, cfg: cfg, clock: game.NewClock(cfg.TickRate)}
}

// Update forwards fresh key presses first, then runs however many fixed
// simulation ticks have come due since the last frame. Key events never
// land mid-tick.
func (a *App) Update() error {
	for _, m := range keyMap {
		if inpututil.IsKeyJustPressed(m.eb) {
			a.game.KeyDown(m.k)
		}
	}
	a.game.Update(a.clock.Ticks(time.Now()))
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(game.ColorBackground)
	a.game.Draw(canvas{screen: screen, cell: a.cfg.CellSize})
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.WindowSize()
}

// canvas fills one cell-sized pixel rect per draw request.
type canvas struct {
	screen *ebiten.Image
	cell   int
}

func (c canvas) FillCell(p game.Position, clr color.RGBA) {
	ebitenutil.DrawRect(
		c.screen,
		float64(int(p.X)*c.cell),
		float64(int(p.Y)*c.cell),
		float64(c.cell),
		float64(c.cell),
		clr,
	)
}
