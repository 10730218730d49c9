package game

// Direction is one of the four grid directions, or no direction at all.
// DirNone doubles as "no pending move" on a paddle.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// Inverse returns the opposite direction. DirNone is its own inverse, so
// the mapping is a total involution.
func (d Direction) Inverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Key identifies one of the physical keys the game reacts to. Frontends
// translate their own key codes into these before handing them to the core.
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyS
)

// DirectionForKey maps a key to the movement it requests. The second
// return value is false for keys with no mapping.
func DirectionForKey(k Key) (Direction, bool) {
	switch k {
	case KeyUp, KeyW:
		return DirUp, true
	case KeyDown, KeyS:
		return DirDown, true
	case KeyLeft:
		return DirLeft, true
	case KeyRight:
		return DirRight, true
	}
	return DirNone, false
}

// PlayerForKey maps a key to the player it controls: W and S drive
// player 1, the arrow keys drive player 2.
func PlayerForKey(k Key) (int, bool) {
	switch k {
	case KeyW, KeyS:
		return 1, true
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		return 2, true
	}
	return 0, false
}
