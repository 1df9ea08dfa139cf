package model

const historySize = 5

// History stores recent grid hashes for cycle detection
type History struct {
	hashes []string
}

// Record adds a hash to the history, keeping only the most recent entries
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)

	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset drops every recorded hash
func (h *History) Reset() {
	h.hashes = h.hashes[:0]
}

// IsStagnant checks whether hash repeats one of the last three recorded states,
// which covers still lifes and oscillators of period two and three.
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}

	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == hash {
			return true
		}
	}

	return false
}
