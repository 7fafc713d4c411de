package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer draws the grid as text. It keeps its own frame of cell
// states, updated only by flip notifications, so a redraw never reads the
// grid itself.
type TerminalRenderer struct {
	width, height int
	frame         []bool
	out           io.Writer
}

// NewTerminalRenderer returns a renderer for a width x height grid writing to
// stdout.
func NewTerminalRenderer(width, height int) *TerminalRenderer {
	return &TerminalRenderer{
		width:  width,
		height: height,
		frame:  make([]bool, width*height),
		out:    os.Stdout,
	}
}

// DrawCell records a cell's new state in the frame.
func (r *TerminalRenderer) DrawCell(x, y int, on bool) {
	r.frame[y*r.width+x] = on
}

// Sync copies every cell state from g, e.g. right after seeding.
func (r *TerminalRenderer) Sync(g *Grid) {
	for y := range r.height {
		for x := range r.width {
			r.frame[y*r.width+x] = g.CellState(x, y)
		}
	}
}

// Display renders the frame to the terminal
func (r *TerminalRenderer) Display() error {
	w := bufio.NewWriter(r.out)
	for y := range r.height {
		for x := range r.width {
			if r.frame[y*r.width+x] {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
