package internal

import (
	"github.com/google/uuid"
)

// NewShortUuid returns the first n characters of a fresh uuid, the
// length the game and player ids are shown with on screen.
func NewShortUuid(n int) string {
	id := uuid.NewString()
	if n <= 0 || n > len(id) {
		return id
	}
	return id[:n]
}
