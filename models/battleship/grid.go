package battleship

import (
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

// MaxShips is the fleet capacity of a grid.
const MaxShips = 6

type PositionState uint8

const (
	PositionStateEmpty PositionState = iota
	PositionStateShip
	PositionStateHit
	PositionStateMiss
)

// Glyph is the character a renderer draws for the state.
func (ps PositionState) Glyph() rune {
	switch ps {
	case PositionStateShip:
		return '■'
	case PositionStateHit:
		return 'X'
	case PositionStateMiss:
		return '.'
	default:
		return '~'
	}
}

func (ps PositionState) String() string {
	switch ps {
	case PositionStateShip:
		return "ship"
	case PositionStateHit:
		return "hit"
	case PositionStateMiss:
		return "miss"
	default:
		return "empty"
	}
}

// Grid is one side's board. Cell states are never stored: they are derived
// from the placed ships and the set of coordinates already shot at.
type Grid struct {
	hidden     bool
	ships      []*Ship
	shots      map[Coordinates]struct{}
	aliveCount int
}

// NewGrid creates an empty grid. A hidden grid belongs to the opponent and
// never reveals ship cells through DisplayState.
func NewGrid(hidden bool) *Grid {
	return &Grid{
		hidden: hidden,
		ships:  make([]*Ship, 0, MaxShips),
		shots:  make(map[Coordinates]struct{}, GridSize*GridSize),
	}
}

func (g *Grid) Hidden() bool {
	return g.hidden
}

func (g *Grid) AliveCount() int {
	return g.aliveCount
}

// Ships returns the fleet, sunk ships included.
func (g *Grid) Ships() []*Ship {
	ships := make([]*Ship, len(g.ships))
	copy(ships, g.ships)
	return ships
}

func (g *Grid) ShipAt(c Coordinates) (*Ship, bool) {
	for _, ship := range g.ships {
		if ship.Contains(c) {
			return ship, true
		}
	}
	return nil, false
}

func (g *Grid) AddShip(ship *Ship) error {
	if ship == nil || ship.length < 1 {
		return cerr.ErrEmptyShip
	}
	if len(g.ships) >= MaxShips {
		return cerr.ErrCapacityExceeded
	}

	for _, placed := range g.ships {
		if placed.Equal(ship) {
			return cerr.ErrDuplicateShip
		}
	}

	for _, cell := range ship.body {
		for _, placed := range g.ships {
			if placed.touches(cell) {
				return cerr.ErrShipOverlap(cell.X, cell.Y)
			}
		}
		if cell.Out() {
			return cerr.ErrShipOutOfBounds(cell.X, cell.Y)
		}
	}

	g.ships = append(g.ships, ship)
	g.aliveCount++
	return nil
}

// Shot resolves an attack on c and reports whether it hit a ship.
func (g *Grid) Shot(c Coordinates) (bool, error) {
	if c.Out() {
		return false, cerr.ErrShotOutOfBounds(c.X, c.Y)
	}
	if g.isShot(c) {
		return false, cerr.ErrPositionAlreadyShot(c.X, c.Y)
	}

	g.shots[c] = struct{}{}

	ship, prs := g.ShipAt(c)
	if !prs {
		return false, nil
	}

	ship.GotHit()
	if ship.IsSunk() {
		g.aliveCount--
	}
	return true, nil
}

func (g *Grid) isShot(c Coordinates) bool {
	_, prs := g.shots[c]
	return prs
}

// PositionState is the true state of c regardless of the hidden flag.
func (g *Grid) PositionState(c Coordinates) PositionState {
	_, occupied := g.ShipAt(c)

	switch {
	case g.isShot(c) && occupied:
		return PositionStateHit
	case g.isShot(c):
		return PositionStateMiss
	case occupied:
		return PositionStateShip
	default:
		return PositionStateEmpty
	}
}

// DisplayState is what a renderer may show for c: ship cells of a hidden
// grid read as empty until they are hit.
func (g *Grid) DisplayState(c Coordinates) PositionState {
	state := g.PositionState(c)
	if g.hidden && state == PositionStateShip {
		return PositionStateEmpty
	}
	return state
}
