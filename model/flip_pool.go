package model

import "sync"

// flipPool recycles the per-band index buffers used by AdvanceParallel so a
// long run does not allocate a fresh set every generation.
type flipPool struct {
	pool *sync.Pool
}

func newFlipPool() flipPool {
	return flipPool{
		pool: &sync.Pool{
			New: func() interface{} {
				buf := make([]int, 0, 64)
				return &buf
			},
		},
	}
}

// Get retrieves an empty buffer from the pool
func (p flipPool) Get() *[]int {
	return p.pool.Get().(*[]int)
}

// Put returns a buffer to the pool, truncating it first
func (p flipPool) Put(buf *[]int) {
	*buf = (*buf)[:0]
	p.pool.Put(buf)
}
