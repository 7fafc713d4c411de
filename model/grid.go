package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-cellmap/rules"
	"github.com/sheikhrachel/go-cellmap/utils"
)

// ErrInvalidDimensions is returned by NewGrid for an empty grid.
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// CellDrawer receives a notification for every cell that flips during a
// generation advance.
type CellDrawer interface {
	DrawCell(x, y int, on bool)
}

// CellDrawerFunc adapts an ordinary function to a CellDrawer.
type CellDrawerFunc func(x, y int, on bool)

// DrawCell calls f(x, y, on).
func (f CellDrawerFunc) DrawCell(x, y int, on bool) { f(x, y, on) }

// RandomSource supplies uniform integers in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// Grid is a toroidal Life board that keeps every cell's live-neighbour count
// up to date as cells are set and cleared.
//
// Invariant: for each cell, Neighbors() equals the number of its eight
// toroidal neighbour positions whose state bit is set. On grids narrower or
// shorter than three cells a position may refer to the same cell more than
// once, and it is counted once per position.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	width  int
	height int
	cells  []Cell

	// snapshot holds the grid as it was at the start of the current
	// Advance; transitions are decided from it only.
	snapshot []Cell
	flips    flipPool
}

// NewGrid creates a new grid with the specified dimensions, all cells off
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d", width, height)
	}
	return &Grid{
		width:    width,
		height:   height,
		cells:    make([]Cell, width*height),
		snapshot: make([]Cell, width*height),
		flips:    newFlipPool(),
	}, nil
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// Clear switches every cell off
func (g *Grid) Clear() {
	clear(g.cells)
	clear(g.snapshot)
}

func (g *Grid) index(op string, x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(errors.Errorf("[Grid.%s] coordinate (%d,%d) outside %dx%d grid", op, x, y, g.width, g.height))
	}
	return y*g.width + x
}

// neighbors returns the indices of the eight toroidal neighbours of (x, y).
func (g *Grid) neighbors(x, y int) [8]int {
	w := g.width
	xl := (x + w - 1) % w
	xr := (x + 1) % w
	above := ((y + g.height - 1) % g.height) * w
	row := y * w
	below := ((y + 1) % g.height) * w
	return [8]int{
		above + xl, above + x, above + xr,
		row + xl, row + xr,
		below + xl, below + x, below + xr,
	}
}

// SetCell switches the cell at (x, y) on and bumps the count of each of its
// neighbours. The cell must be off.
func (g *Grid) SetCell(x, y int) {
	i := g.index("SetCell", x, y)
	if g.cells[i].On() {
		panic(errors.Errorf("[Grid.SetCell] cell (%d,%d) is already on", x, y))
	}
	g.cells[i] |= cellOn
	for _, n := range g.neighbors(x, y) {
		g.cells[n] += countUnit
	}
}

// ClearCell switches the cell at (x, y) off and drops the count of each of
// its neighbours. The cell must be on.
func (g *Grid) ClearCell(x, y int) {
	i := g.index("ClearCell", x, y)
	if !g.cells[i].On() {
		panic(errors.Errorf("[Grid.ClearCell] cell (%d,%d) is already off", x, y))
	}
	g.cells[i] &^= cellOn
	for _, n := range g.neighbors(x, y) {
		g.cells[n] -= countUnit
	}
}

// CellState returns the state of a cell
func (g *Grid) CellState(x, y int) bool {
	return g.cells[g.index("CellState", x, y)].On()
}

// Neighbors returns the stored live-neighbour count of a cell
func (g *Grid) Neighbors(x, y int) int {
	return g.cells[g.index("Neighbors", x, y)].Neighbors()
}

// Population returns the total number of living cells
func (g *Grid) Population() (count int) {
	for _, c := range g.cells {
		if c.On() {
			count++
		}
	}
	return
}

// Hash returns an MD5 hash of the cell states, ignoring neighbour counts
func (g *Grid) Hash() string {
	h := md5.New()
	row := make([]byte, g.width)
	for y := range g.height {
		for x := range g.width {
			row[x] = byte(g.cells[y*g.width+x] & cellOn)
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Init seeds about half of the grid with live cells drawn from seed.
func (g *Grid) Init(seed int64) {
	g.InitFrom(utils.NewRNG(seed))
}

// InitFrom sets width*height/2 distinct cells on, picking coordinates
// uniformly from src and retrying whenever the pick is already on. Cells that
// are on beforehand are left alone and do not count towards the target.
func (g *Grid) InitFrom(src RandomSource) {
	remaining := g.width * g.height / 2
	if free := len(g.cells) - g.Population(); remaining > free {
		remaining = free
	}
	for remaining > 0 {
		x, y := src.IntN(g.width), src.IntN(g.height)
		if g.cells[y*g.width+x].On() {
			continue
		}
		g.SetCell(x, y)
		remaining--
	}
}

// Advance moves the grid forward one generation and returns how many cells
// flipped. Every transition is decided from a snapshot taken on entry, so
// the result is the same as updating all cells at once. d, if non-nil, is told
// about each flip in row-major order.
func (g *Grid) Advance(d CellDrawer) int {
	copy(g.snapshot, g.cells)

	changed := 0
	for i, c := range g.snapshot {
		// off with no live neighbours: nothing can happen
		if c == 0 {
			continue
		}
		if rules.Flips(c.Neighbors(), c.On()) {
			g.flip(i, d)
			changed++
		}
	}
	return changed
}

// AdvanceParallel is Advance with the scan split into row bands across
// workers goroutines. Workers only read the snapshot and record which cells
// flip; the flips are then applied band by band on the calling goroutine, so
// results and notification order match Advance exactly.
func (g *Grid) AdvanceParallel(workers int, d CellDrawer) int {
	if workers <= 1 || g.height < 2 {
		return g.Advance(d)
	}
	copy(g.snapshot, g.cells)

	var (
		eg          errgroup.Group
		rowsPerBand = (g.height + workers - 1) / workers // Ceiling division
		bands       = make([]*[]int, 0, workers)
	)
	for start := 0; start < g.height; start += rowsPerBand {
		var (
			end   = min(start+rowsPerBand, g.height)
			flips = g.flips.Get()
		)
		bands = append(bands, flips)

		eg.Go(func() (err error) {
			*flips, err = g.collectFlips(start, end, *flips)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		panic(errors.Wrap(err, "[Grid.AdvanceParallel] snapshot scan failed"))
	}

	changed := 0
	for _, flips := range bands {
		for _, i := range *flips {
			g.flip(i, d)
		}
		changed += len(*flips)
		g.flips.Put(flips)
	}
	return changed
}

// collectFlips appends the indices of snapshot cells in rows [start, end)
// that change state this generation. It fails on a cell whose stored count
// no eight-neighbour cell can have.
func (g *Grid) collectFlips(start, end int, dst []int) ([]int, error) {
	for i := start * g.width; i < end*g.width; i++ {
		c := g.snapshot[i]
		if c == 0 {
			continue
		}
		if n := c.Neighbors(); n > maxNeighbors {
			return dst, errors.Errorf("cell (%d,%d) stores %d neighbours", i%g.width, i/g.width, n)
		}
		if rules.Flips(c.Neighbors(), c.On()) {
			dst = append(dst, i)
		}
	}
	return dst, nil
}

// flip applies the transition already decided for cell i. A cell flips at
// most once per generation, so its live state still equals the snapshot's.
func (g *Grid) flip(i int, d CellDrawer) {
	x, y := i%g.width, i/g.width
	on := !g.snapshot[i].On()
	if on {
		g.SetCell(x, y)
	} else {
		g.ClearCell(x, y)
	}
	if d != nil {
		d.DrawCell(x, y, on)
	}
}
