package model

// Cell is the packed per-cell record.
//
//	bit 0     on/off state
//	bits 1-4  number of live neighbours, 0..8
//	bits 5-7  always zero
//
// A zero Cell is off with no live neighbours and can never change in the
// next generation, which lets the generation scan skip it outright.
type Cell uint8

const (
	cellOn     Cell = 0x01
	countShift      = 1
	countMask  Cell = 0x1E
	countUnit  Cell = 1 << countShift

	maxNeighbors = 8
)

// On reports the cell's state bit.
func (c Cell) On() bool { return c&cellOn != 0 }

// Neighbors decodes the live-neighbour count.
func (c Cell) Neighbors() int { return int((c & countMask) >> countShift) }
