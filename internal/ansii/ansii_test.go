package ansii

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceCursorRowColumnOrder(t *testing.T) {
	assert.Equal(t, ANSI("\033[5;3H"), Screen.PlaceCursor(3, 5))
}

func TestTruecolor(t *testing.T) {
	assert.Equal(t, ANSI("\033[48;2;255;0;0m"), Truecolor(color.RGBA{R: 255, A: 255}))
	assert.Equal(t, ANSI("\033[48;2;0;0;255m"), Truecolor(color.RGBA{B: 255, A: 255}))
}
