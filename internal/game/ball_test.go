package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// farPaddle is a paddle nowhere near the test ball paths.
func farPaddle(t *testing.T) *Paddle {
	t.Helper()
	return NewPaddle(testBoard, Position{X: 15, Y: 18}, 5)
}

func TestNewBallHeadsLeft(t *testing.T) {
	b := NewBall(testBoard, Position{X: 5, Y: 5})
	assert.Equal(t, DirLeft, b.Dir)
}

func TestBallMovesOneCellPerTick(t *testing.T) {
	b := NewBall(testBoard, Position{X: 5, Y: 5})

	b.Update(farPaddle(t), farPaddle(t))
	assert.Equal(t, Position{X: 4, Y: 5}, b.Pos)
	assert.Equal(t, DirLeft, b.Dir)
}

func TestBallBouncesOffPaddle1(t *testing.T) {
	p1 := NewPaddle(testBoard, Position{X: 0, Y: 10}, 5)
	p2 := farPaddle(t)
	b := NewBall(testBoard, Position{X: 1, Y: 8})

	b.Update(p1, p2)

	// Moved into (0,8), met the paddle, inverted, stepped back out.
	assert.Equal(t, DirRight, b.Dir)
	assert.Equal(t, Position{X: 1, Y: 8}, b.Pos)
	assert.False(t, p1.MeetsBall(b), "ball must not end inside the paddle")
}

func TestBallBouncesOffPaddle2(t *testing.T) {
	p1 := farPaddle(t)
	p2 := NewPaddle(testBoard, Position{X: 29, Y: 10}, 5)
	b := NewBall(testBoard, Position{X: 28, Y: 8})
	b.Dir = DirRight

	b.Update(p1, p2)

	assert.Equal(t, DirLeft, b.Dir)
	assert.Equal(t, Position{X: 28, Y: 8}, b.Pos)
}

func TestBallDoubleBounceSameTick(t *testing.T) {
	// Adjacent paddles straddling the ball's path: the paddle 1 bounce
	// lands the ball inside paddle 2, which bounces it again. Two
	// inversions cancel out and the ball takes one extra step.
	p1 := NewPaddle(testBoard, Position{X: 1, Y: 10}, 5)
	p2 := NewPaddle(testBoard, Position{X: 2, Y: 10}, 5)
	b := NewBall(testBoard, Position{X: 2, Y: 8})

	b.Update(p1, p2)

	assert.Equal(t, DirLeft, b.Dir)
	assert.Equal(t, Position{X: 1, Y: 8}, b.Pos)
}

func TestBallWrapsAroundBoard(t *testing.T) {
	b := NewBall(testBoard, Position{X: 0, Y: 5})

	b.Update(farPaddle(t), farPaddle(t))
	assert.Equal(t, Position{X: 29, Y: 5}, b.Pos)
}
