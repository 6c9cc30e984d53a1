package battleship

import "math/rand"

// Source supplies uniformly distributed integers in the inclusive range
// [lo, hi]. It drives both fleet placement and computer targeting.
type Source interface {
	IntN(lo, hi int) int
}

type RandSource struct {
	r *rand.Rand
}

var _ Source = (*RandSource)(nil)

func NewRandSource(seed int64) *RandSource {
	return &RandSource{r: rand.New(rand.NewSource(seed))}
}

func (rs *RandSource) IntN(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rs.r.Intn(hi-lo+1)
}
