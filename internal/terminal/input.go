package terminal

import "gridpong/internal/game"

// ParseKeys converts a raw stdin chunk into the game keys it contains.
// With the terminal in raw mode a read returns plain bytes, with arrow
// keys arriving as three-byte ESC [ A..D sequences. quit is true for 'q'
// or ctrl-c; keys already parsed from the same chunk are still returned.
func ParseKeys(buf []byte) (keys []game.Key, quit bool) {
	for i := 0; i < len(buf); i++ {
		switch buf[i] {
		case 'w', 'W':
			keys = append(keys, game.KeyW)
		case 's', 'S':
			keys = append(keys, game.KeyS)
		case 'q', 'Q', 3:
			return keys, true
		case 27:
			if i+2 < len(buf) && buf[i+1] == '[' {
				switch buf[i+2] {
				case 'A':
					keys = append(keys, game.KeyUp)
				case 'B':
					keys = append(keys, game.KeyDown)
				case 'C':
					keys = append(keys, game.KeyRight)
				case 'D':
					keys = append(keys, game.KeyLeft)
				}
				i += 2
			}
		}
	}
	return keys, false
}
