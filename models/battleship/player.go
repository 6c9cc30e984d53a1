package battleship

import (
	"github.com/saeidalz13/battleship-solo/internal"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type Side uint8

const (
	SideNone Side = iota
	SideUser
	SideComputer
)

func (s Side) String() string {
	switch s {
	case SideUser:
		return "User"
	case SideComputer:
		return "Computer"
	default:
		return "None"
	}
}

func (s Side) Opponent() Side {
	switch s {
	case SideUser:
		return SideComputer
	case SideComputer:
		return SideUser
	default:
		return SideNone
	}
}

// Targeter picks the next coordinate to fire at. A Targeter error that
// wraps cerr.ErrInvalidPosition asks for another pick; any other error
// ends the move.
type Targeter interface {
	Target(enemy *Grid) (Coordinates, error)
}

// InputReader supplies a human move as two 1-indexed integers.
type InputReader interface {
	ReadCoordinates() (x, y int, err error)
}

type AiTargeter struct {
	src Source
}

var _ Targeter = (*AiTargeter)(nil)

func NewAiTargeter(src Source) *AiTargeter {
	return &AiTargeter{src: src}
}

func (at *AiTargeter) Target(_ *Grid) (Coordinates, error) {
	x := at.src.IntN(0, GridSize-1)
	y := at.src.IntN(0, GridSize-1)
	return NewCoordinates(x, y), nil
}

type HumanTargeter struct {
	reader InputReader
}

var _ Targeter = (*HumanTargeter)(nil)

func NewHumanTargeter(reader InputReader) *HumanTargeter {
	return &HumanTargeter{reader: reader}
}

func (ht *HumanTargeter) Target(_ *Grid) (Coordinates, error) {
	x, y, err := ht.reader.ReadCoordinates()
	if err != nil {
		return Coordinates{}, err
	}
	return NewCoordinates(x-1, y-1), nil
}

type ShotResult struct {
	Hit  bool
	Sunk bool
}

// Turn summarizes one Move.
type Turn struct {
	Shots          int
	Hits           int
	Sunk           int
	Retries        int
	FleetDestroyed bool
}

type Player struct {
	uuid      string
	side      Side
	grid      *Grid
	enemyGrid *Grid
	targeter  Targeter
	reporter  Reporter
}

func NewPlayer(side Side, grid, enemyGrid *Grid, targeter Targeter) *Player {
	return &Player{
		uuid:      internal.NewShortUuid(10),
		side:      side,
		grid:      grid,
		enemyGrid: enemyGrid,
		targeter:  targeter,
		reporter:  NopReporter{},
	}
}

func (p *Player) Uuid() string {
	return p.uuid
}

func (p *Player) Side() Side {
	return p.side
}

func (p *Player) Grid() *Grid {
	return p.grid
}

func (p *Player) EnemyGrid() *Grid {
	return p.enemyGrid
}

func (p *Player) IsLoser() bool {
	return p.grid.AliveCount() == 0
}

func (p *Player) SetReporter(reporter Reporter) {
	if reporter == nil {
		reporter = NopReporter{}
	}
	p.reporter = reporter
}

// Move plays one turn against the enemy grid. Rejected targets are picked
// again, a hit earns another shot, and the turn ends on a miss or as soon
// as the enemy fleet is gone.
func (p *Player) Move() (Turn, error) {
	var turn Turn

	for p.enemyGrid.AliveCount() > 0 {
		target, err := p.targeter.Target(p.enemyGrid)
		if err == nil {
			var hit bool
			hit, err = p.enemyGrid.Shot(target)
			if err == nil {
				turn.Shots++
				result := p.recordShot(&turn, target, hit)
				p.reporter.ShotResolved(p, target, result)

				if !hit {
					break
				}
				continue
			}
		}

		if !cerr.IsRetryable(err) {
			return turn, err
		}
		turn.Retries++
		p.reporter.ShotRejected(p, target, err)
	}

	turn.FleetDestroyed = p.enemyGrid.AliveCount() == 0
	return turn, nil
}

func (p *Player) recordShot(turn *Turn, target Coordinates, hit bool) ShotResult {
	result := ShotResult{Hit: hit}
	if !hit {
		return result
	}

	turn.Hits++
	if ship, prs := p.enemyGrid.ShipAt(target); prs && ship.IsSunk() {
		turn.Sunk++
		result.Sunk = true
	}
	return result
}
