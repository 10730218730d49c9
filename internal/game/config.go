package game

// Config is the immutable game geometry and timing, built once at startup
// and passed to everything that needs it. Nothing mutates it afterwards.
type Config struct {
	GridWidth  int16
	GridHeight int16
	CellSize   int // pixel size of one grid cell in the windowed frontend
	TickRate   int // simulation ticks per second
	PaddleLen  int
	Seed       uint64
}

// DefaultConfig returns the stock 30x20 board with 32px cells at 23 ticks
// per second. Seed 0 reproduces the fixed ball placement the game shipped
// with; set a nonzero seed for variety.
func DefaultConfig() Config {
	return Config{
		GridWidth:  30,
		GridHeight: 20,
		CellSize:   32,
		TickRate:   23,
		PaddleLen:  5,
		Seed:       0,
	}
}

func (c Config) Board() Board {
	return Board{Width: c.GridWidth, Height: c.GridHeight}
}

// WindowSize is the pixel size of the whole board.
func (c Config) WindowSize() (w, h int) {
	return int(c.GridWidth) * c.CellSize, int(c.GridHeight) * c.CellSize
}
