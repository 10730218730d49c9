package terminal

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"
	"time"

	"gridpong/internal/ansii"
	"gridpong/internal/game"
)

const targetFps = 60

// Run drives the game in the current terminal until the player quits. The
// stdin reader runs on its own goroutine; everything it produces is
// applied here at the select point, strictly between simulation ticks, so
// the game state itself only ever mutates on this goroutine.
func Run(g game.Game, cfg game.Config) error {
	// Cells are drawn two characters wide, so the board needs twice its
	// width in columns.
	tw, th := ansii.GetTermSize()
	if tw < int(cfg.GridWidth)*2 || th < int(cfg.GridHeight) {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", tw, th, cfg.GridWidth*2, cfg.GridHeight)
	}

	prev, err := ansii.MakeTermRaw()
	if err != nil {
		return fmt.Errorf("failed to make terminal raw: %w", err)
	}
	defer ansii.RestoreTerm(prev)

	os.Stdout.WriteString(string(ansii.Screen.HideCursor))
	defer os.Stdout.WriteString(string(ansii.Screen.ShowCursor))

	input := make(chan game.Key, 16)
	quit := make(chan struct{})

	// Input handler
	go func() {
		buf := make([]byte, 16)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				slog.Debug("stdin closed, quitting", "error", err)
				close(quit)
				return
			}
			keys, stop := ParseKeys(buf[:n])
			for _, k := range keys {
				input <- k
			}
			if stop {
				close(quit)
				return
			}
		}
	}()

	clock := game.NewClock(cfg.TickRate)
	frames := time.NewTicker(time.Second / targetFps)
	defer frames.Stop()

	for {
		select {
		case k := <-input:
			g.KeyDown(k)
		case now := <-frames.C:
			g.Update(clock.Ticks(now))
			draw(g)
		case <-quit:
			os.Stdout.WriteString(string(ansii.Screen.ClearScreen))
			return nil
		}
	}
}

// canvas batches one frame of cell fills into a single write. Cells are
// two characters wide so they come out roughly square.
type canvas struct {
	builder *strings.Builder
}

func (c canvas) FillCell(p game.Position, clr color.RGBA) {
	c.builder.WriteString(string(ansii.Screen.PlaceCursor(int(p.X)*2+1, int(p.Y)+1)))
	c.builder.WriteString(string(ansii.Truecolor(clr)))
	c.builder.WriteString("  ")
	c.builder.WriteString(string(ansii.Styles.Reset))
}

func draw(g game.Game) {
	var builder = strings.Builder{}
	builder.WriteString(string(ansii.Screen.ClearScreen))
	g.Draw(canvas{builder: &builder})
	os.Stdout.WriteString(builder.String())
}
