package game

import "github.com/gammazero/deque"

// Segment is one cell of a paddle's body.
type Segment struct {
	Pos Position
}

// Paddle is a vertical bar of segments plus the direction its player has
// queued up. The body is ordered front to back; every update pushes a
// fresh segment on one end and pops the other, so the length never
// changes.
type Paddle struct {
	body  deque.Deque[Segment]
	dir   Direction
	board Board
}

// NewPaddle builds a paddle whose front segment sits at pos and whose body
// extends upward from it, ys pos.Y, pos.Y-1, ... front to back. The
// subtraction is raw, not wrapped; callers place paddles far enough from
// the top edge for the body to stay on the board (the stock layout starts
// at Height/2).
func NewPaddle(board Board, pos Position, length int) *Paddle {
	p := &Paddle{board: board}
	for i := 0; i < length; i++ {
		p.body.PushBack(Segment{Pos: Position{X: pos.X, Y: pos.Y - int16(i)}})
	}
	return p
}

// SetDir stores the direction the next Update consumes. Another key press
// before that update simply replaces it.
func (p *Paddle) SetDir(d Direction) { p.dir = d }

func (p *Paddle) Dir() Direction { return p.dir }

// Update shifts the whole bar one cell when a vertical move is pending,
// then clears it: one key press moves the paddle exactly once, no matter
// how long the key is held. Up anchors on the back segment, Down on the
// front; for a contiguous body either way nets out to a one-cell vertical
// translation. Left, Right and None do nothing.
func (p *Paddle) Update() {
	if p.dir == DirUp {
		back := p.body.Back()
		p.body.PushBack(Segment{Pos: p.board.Move(back.Pos, p.dir)})
		p.body.PopFront()
		p.dir = DirNone
	}
	if p.dir == DirDown {
		front := p.body.Front()
		p.body.PushFront(Segment{Pos: p.board.Move(front.Pos, p.dir)})
		p.body.PopBack()
		p.dir = DirNone
	}
}

// MeetsBall reports whether any body segment occupies the ball's cell.
func (p *Paddle) MeetsBall(b *Ball) bool {
	for i := 0; i < p.body.Len(); i++ {
		if p.body.At(i).Pos == b.Pos {
			return true
		}
	}
	return false
}

// Segments returns the body cells front to back.
func (p *Paddle) Segments() []Position {
	out := make([]Position, p.body.Len())
	for i := range out {
		out[i] = p.body.At(i).Pos
	}
	return out
}

// Draw emits one cell per segment. Segments never overlap, so order does
// not matter.
func (p *Paddle) Draw(c Canvas) {
	for i := 0; i < p.body.Len(); i++ {
		c.FillCell(p.body.At(i).Pos, ColorPaddle)
	}
}
