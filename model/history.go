package model

// historySize is how many recent grid hashes are kept for cycle detection.
const historySize = 5

// History remembers the hashes of recent generations so the driver can tell
// when the grid has settled into a still life or a short cycle.
type History struct {
	hashes []string
}

// Update adds a hash to history and maintains size
func (h *History) Update(hash string) {
	h.hashes = append(h.hashes, hash)

	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether hash matches one of the last three recorded
// generations, i.e. the grid is static or cycling with period <= 3.
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}
	for _, prev := range h.hashes[len(h.hashes)-3:] {
		if prev == hash {
			return true
		}
	}
	return false
}

// Reset forgets all recorded hashes
func (h *History) Reset() {
	h.hashes = nil
}
