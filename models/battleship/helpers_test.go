package battleship_test

import (
	"io"

	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

// scriptedTargeter fires at a fixed list of coordinates, then fails with
// io.EOF.
type scriptedTargeter struct {
	targets []mb.Coordinates
	calls   int
}

func newScriptedTargeter(targets ...mb.Coordinates) *scriptedTargeter {
	return &scriptedTargeter{targets: targets}
}

func (st *scriptedTargeter) Target(_ *mb.Grid) (mb.Coordinates, error) {
	if st.calls >= len(st.targets) {
		return mb.Coordinates{}, io.EOF
	}
	target := st.targets[st.calls]
	st.calls++
	return target, nil
}

// errTargeter returns err on every call.
type errTargeter struct {
	err   error
	calls int
}

func (et *errTargeter) Target(_ *mb.Grid) (mb.Coordinates, error) {
	et.calls++
	return mb.Coordinates{}, et.err
}

// scriptedReader hands out 1-indexed pairs, then io.EOF.
type scriptedReader struct {
	pairs [][2]int
	next  int
}

func (sr *scriptedReader) ReadCoordinates() (int, int, error) {
	if sr.next >= len(sr.pairs) {
		return 0, 0, io.EOF
	}
	pair := sr.pairs[sr.next]
	sr.next++
	return pair[0], pair[1], nil
}

// sweepReader walks every cell of the grid row by row.
func sweepReader() *scriptedReader {
	pairs := make([][2]int, 0, mb.GridSize*mb.GridSize)
	for y := 1; y <= mb.GridSize; y++ {
		for x := 1; x <= mb.GridSize; x++ {
			pairs = append(pairs, [2]int{x, y})
		}
	}
	return &scriptedReader{pairs: pairs}
}

// stuckSource answers lo for the first n calls, then defers to inner.
type stuckSource struct {
	n     int
	calls int
	inner mb.Source
}

func (ss *stuckSource) IntN(lo, hi int) int {
	ss.calls++
	if ss.calls <= ss.n {
		return lo
	}
	return ss.inner.IntN(lo, hi)
}

type recordingReporter struct {
	mb.NopReporter
	rounds   int
	resolved []mb.ShotResult
	rejected []error
	winner   mb.Side
}

func (rr *recordingReporter) RoundStarted(*mb.Game) {
	rr.rounds++
}

func (rr *recordingReporter) ShotResolved(_ *mb.Player, _ mb.Coordinates, result mb.ShotResult) {
	rr.resolved = append(rr.resolved, result)
}

func (rr *recordingReporter) ShotRejected(_ *mb.Player, _ mb.Coordinates, err error) {
	rr.rejected = append(rr.rejected, err)
}

func (rr *recordingReporter) GameOver(_ *mb.Game, winner mb.Side) {
	rr.winner = winner
}

func c(x, y int) mb.Coordinates {
	return mb.NewCoordinates(x, y)
}

func mustGrid(hidden bool, ships ...*mb.Ship) *mb.Grid {
	grid := mb.NewGrid(hidden)
	for _, ship := range ships {
		if err := grid.AddShip(ship); err != nil {
			panic(err)
		}
	}
	return grid
}
