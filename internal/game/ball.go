package game

// Ball is the one moving piece: a cell plus its direction of travel.
type Ball struct {
	Pos   Position
	Dir   Direction
	board Board
}

// NewBall places the ball at pos, heading left.
func NewBall(board Board, pos Position) *Ball {
	return &Ball{Pos: pos, Dir: DirLeft, board: board}
}

// Update advances the ball one cell, then bounces it off each paddle in
// turn: landing on a paddle cell inverts the direction and takes one more
// step out. The checks run sequentially, paddle 1 first; if both paddles
// cover the ball in the same tick it inverts twice, ending up with its
// original direction and an extra step taken.
func (b *Ball) Update(p1, p2 *Paddle) {
	b.Pos = b.board.Move(b.Pos, b.Dir)

	if p1.MeetsBall(b) {
		b.Dir = b.Dir.Inverse()
		b.Pos = b.board.Move(b.Pos, b.Dir)
	}
	if p2.MeetsBall(b) {
		b.Dir = b.Dir.Inverse()
		b.Pos = b.board.Move(b.Pos, b.Dir)
	}
}

func (b *Ball) Draw(c Canvas) {
	c.FillCell(b.Pos, ColorBall)
}
