package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInverseIsInvolutive(t *testing.T) {
	for _, d := range []Direction{DirNone, DirUp, DirDown, DirLeft, DirRight} {
		assert.Equal(t, d, d.Inverse().Inverse(), "double inverse of %s", d)
	}
}

func TestInverseMapping(t *testing.T) {
	assert.Equal(t, DirNone, DirNone.Inverse())
	assert.Equal(t, DirDown, DirUp.Inverse())
	assert.Equal(t, DirUp, DirDown.Inverse())
	assert.Equal(t, DirRight, DirLeft.Inverse())
	assert.Equal(t, DirLeft, DirRight.Inverse())
}

func TestDirectionForKey(t *testing.T) {
	cases := []struct {
		key Key
		dir Direction
		ok  bool
	}{
		{KeyUp, DirUp, true},
		{KeyDown, DirDown, true},
		{KeyW, DirUp, true},
		{KeyS, DirDown, true},
		{KeyLeft, DirLeft, true},
		{KeyRight, DirRight, true},
		{Key(99), DirNone, false},
	}

	for _, c := range cases {
		dir, ok := DirectionForKey(c.key)
		assert.Equal(t, c.ok, ok, "mapping presence for key %d", c.key)
		assert.Equal(t, c.dir, dir, "direction for key %d", c.key)
	}
}

func TestPlayerForKey(t *testing.T) {
	cases := []struct {
		key    Key
		player int
		ok     bool
	}{
		{KeyUp, 2, true},
		{KeyDown, 2, true},
		{KeyLeft, 2, true},
		{KeyRight, 2, true},
		{KeyW, 1, true},
		{KeyS, 1, true},
		{Key(99), 0, false},
	}

	for _, c := range cases {
		player, ok := PlayerForKey(c.key)
		assert.Equal(t, c.ok, ok, "mapping presence for key %d", c.key)
		assert.Equal(t, c.player, player, "player for key %d", c.key)
	}
}
