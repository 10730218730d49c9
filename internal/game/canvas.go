package game

import "image/color"

// Canvas is the drawing surface a frontend hands to Draw. Implementations
// decide what a cell is on their side: a 32x32 pixel rectangle in the
// window, a two-character block in the terminal.
type Canvas interface {
	FillCell(p Position, c color.RGBA)
}

// Game is the host-loop contract. A frontend drives exactly these three
// hooks: zero or more whole simulation ticks per frame, a read-only draw
// pass, and discrete key-down events applied between ticks.
type Game interface {
	Update(ticks int)
	Draw(c Canvas)
	KeyDown(k Key)
}

var (
	ColorPaddle     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorBall       = color.RGBA{B: 0xff, A: 0xff}
	ColorBackground = color.RGBA{A: 0xff}
)
