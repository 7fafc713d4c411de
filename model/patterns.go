package model

// Pattern is a small rectangle of cell states, indexed [row][column].
type Pattern [][]bool

var (
	// Glider travels one cell diagonally every four generations.
	Glider = Pattern{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	// Blinker is a horizontal period-2 oscillator.
	Blinker = Pattern{
		{true, true, true},
	}
	// Block is the 2x2 still life.
	Block = Pattern{
		{true, true},
		{true, true},
	}
)

var patterns = map[string]Pattern{
	"glider":  Glider,
	"blinker": Blinker,
	"block":   Block,
}

// PatternByName looks up one of the built-in patterns.
func PatternByName(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// Place switches on the live cells of p with its top-left corner at
// (startX, startY), wrapping around the grid edges. Cells that are already on
// are left untouched.
func (g *Grid) Place(p Pattern, startX, startY int) {
	for dy, row := range p {
		for dx, alive := range row {
			if !alive {
				continue
			}
			x := ((startX+dx)%g.width + g.width) % g.width
			y := ((startY+dy)%g.height + g.height) % g.height
			if !g.CellState(x, y) {
				g.SetCell(x, y)
			}
		}
	}
}
