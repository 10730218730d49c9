package ansii

import (
	"fmt"
	"image/color"
	"os"

	"golang.org/x/term"
)

type ANSI string

const (
	reset       ANSI = "\033[0m"
	clearScreen ANSI = "\033[2J"
	hideCursor  ANSI = "\033[?25l"
	showCursor  ANSI = "\033[?25h"
)

type style struct {
	Reset ANSI
}

type screen struct {
	ClearScreen ANSI
	HideCursor  ANSI
	ShowCursor  ANSI
}

func GetTermSize() (width int, height int) {
	var fd int = int(os.Stdout.Fd())
	width, height, err := term.GetSize(fd)
	if err != nil {
		fmt.Println(string(Screen.ClearScreen) + "Fatal: error getting terminal size.")
		os.Exit(1)
	}
	return width, height
}

func MakeTermRaw() (*term.State, error) {
	var fd int = int(os.Stdout.Fd())
	return term.MakeRaw(fd)
}

func RestoreTerm(prev *term.State) error {
	var fd int = int(os.Stdout.Fd())
	return term.Restore(fd, prev)
}

// PlaceCursor moves the cursor to the 1-based terminal cell (X, Y).
func (s screen) PlaceCursor(X, Y int) ANSI {
	return ANSI(fmt.Sprintf("\033[%d;%dH", Y, X))
}

// Truecolor returns the 24-bit background color escape for c. Painting a
// colored background behind spaces reads as a solid block on any truecolor
// terminal.
func Truecolor(c color.RGBA) ANSI {
	return ANSI(fmt.Sprintf("\033[48;2;%d;%d;%dm", c.R, c.G, c.B))
}

var (
	Styles = style{Reset: reset}
	Screen = screen{ClearScreen: clearScreen, HideCursor: hideCursor, ShowCursor: showCursor}
)
