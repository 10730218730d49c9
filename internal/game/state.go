package game

import (
	"golang.org/x/exp/rand"
)

// State is the whole game: two paddles, the ball, and the per-tick
// ordering between them. It is the one implementation of the Game
// interface.
type State struct {
	Paddle1 *Paddle
	Paddle2 *Paddle
	Ball    *Ball

	// gameover is reserved for a future lose rule. Nothing sets it yet,
	// but a set flag freezes the simulation.
	gameover bool

	board Board
	rng   *rand.Rand
}

var _ Game = (*State)(nil)

// NewState builds the stock layout: paddle 1 on the left column, paddle 2
// on the right, both centered, and the ball at a random cell heading left.
// cfg.Seed feeds the RNG; the default zero seed gives the same ball
// placement every run, matching the original game's zero-initialized seed.
func NewState(cfg Config) *State {
	board := cfg.Board()
	rng := rand.New(rand.NewSource(cfg.Seed))
	mid := cfg.GridHeight / 2

	return &State{
		Paddle1: NewPaddle(board, Position{X: 0, Y: mid}, cfg.PaddleLen),
		Paddle2: NewPaddle(board, Position{X: cfg.GridWidth - 1, Y: mid}, cfg.PaddleLen),
		Ball:    NewBall(board, board.RandomPosition(rng)),
		board:   board,
		rng:     rng,
	}
}

// Update runs the simulation forward by the given number of whole ticks.
// Within a tick the paddles move first, then the ball, so a paddle's
// same-tick motion decides whether it blocks the ball this tick.
func (s *State) Update(ticks int) {
	for i := 0; i < ticks; i++ {
		if s.gameover {
			return
		}
		s.Paddle1.Update()
		s.Paddle2.Update()
		s.Ball.Update(s.Paddle1, s.Paddle2)
	}
}

// KeyDown routes a key press to the paddle it controls. The press lands on
// that paddle's pending direction and takes effect on the next tick;
// repeated presses before then overwrite each other.
func (s *State) KeyDown(k Key) {
	player, ok := PlayerForKey(k)
	if !ok {
		return
	}
	dir, ok := DirectionForKey(k)
	if !ok {
		return
	}

	switch player {
	case 1:
		s.Paddle1.SetDir(dir)
	case 2:
		s.Paddle2.SetDir(dir)
	}
}

// Draw renders paddle 1, paddle 2, then the ball. The pass only reads
// state.
func (s *State) Draw(c Canvas) {
	s.Paddle1.Draw(c)
	s.Paddle2.Draw(c)
	s.Ball.Draw(c)
}
