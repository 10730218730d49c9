package game

import "golang.org/x/exp/rand"

// Position is a single cell on the board. Both coordinates stay inside the
// board's bounds at all times; every move goes through Board.Move, which
// wraps instead of clamping.
type Position struct {
	X int16
	Y int16
}

// Board is the playing field, a toroidal grid: moving off one edge comes
// back in on the opposite edge.
type Board struct {
	Width  int16
	Height int16
}

// Move returns the cell one step from p in direction dir. Coordinates wrap
// with a Euclidean modulus, so stepping left from x=0 lands on x=Width-1
// and stepping up from y=0 lands on y=Height-1. DirNone returns p
// unchanged.
func (b Board) Move(p Position, dir Direction) Position {
	switch dir {
	case DirUp:
		return Position{X: p.X, Y: wrap(p.Y-1, b.Height)}
	case DirDown:
		return Position{X: p.X, Y: wrap(p.Y+1, b.Height)}
	case DirLeft:
		return Position{X: wrap(p.X-1, b.Width), Y: p.Y}
	case DirRight:
		return Position{X: wrap(p.X+1, b.Width), Y: p.Y}
	}
	return p
}

// RandomPosition draws a uniform cell with x in [0, Width) and y in
// [0, Height), both upper bounds exclusive.
func (b Board) RandomPosition(rng *rand.Rand) Position {
	return Position{
		X: int16(rng.Intn(int(b.Width))),
		Y: int16(rng.Intn(int(b.Height))),
	}
}

// wrap reduces v modulo max into [0, max). Go's % keeps the sign of the
// dividend, so a negative v needs one correction step.
func wrap(v, max int16) int16 {
	v %= max
	if v < 0 {
		v += max
	}
	return v
}
