package battleship

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota + 1
	OrientationVertical
)

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// unit returns the step between two consecutive body cells.
func (o Orientation) unit() (int, int) {
	if o == OrientationVertical {
		return 0, 1
	}
	return 1, 0
}

type Ship struct {
	length      int
	anchor      Coordinates
	orientation Orientation
	lives       int
	body        []Coordinates
}

// NewShip lays out a ship from its anchor along orientation. Whether it
// fits on a grid is decided by Grid.AddShip.
func NewShip(length int, anchor Coordinates, orientation Orientation) *Ship {
	dx, dy := orientation.unit()
	body := make([]Coordinates, 0, length)
	for i := 0; i < length; i++ {
		body = append(body, anchor.Add(i*dx, i*dy))
	}

	return &Ship{
		length:      length,
		anchor:      anchor,
		orientation: orientation,
		lives:       length,
		body:        body,
	}
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Anchor() Coordinates {
	return sh.anchor
}

func (sh *Ship) Orientation() Orientation {
	return sh.orientation
}

func (sh *Ship) Lives() int {
	return sh.lives
}

// Body returns a copy of the ship cells, bow first.
func (sh *Ship) Body() []Coordinates {
	body := make([]Coordinates, len(sh.body))
	copy(body, sh.body)
	return body
}

func (sh *Ship) Contains(c Coordinates) bool {
	for _, cell := range sh.body {
		if cell == c {
			return true
		}
	}
	return false
}

// Equal compares placement only; lives are ignored.
func (sh *Ship) Equal(other *Ship) bool {
	if other == nil {
		return false
	}
	return sh.length == other.length && sh.anchor == other.anchor && sh.orientation == other.orientation
}

func (sh *Ship) GotHit() {
	if sh.lives > 0 {
		sh.lives--
	}
}

func (sh *Ship) IsSunk() bool {
	return sh.lives == 0
}

// Contour returns the one cell halo around the ship: both flanks of every
// body cell plus a three cell cap at the bow and at the stern. Cells may
// lie outside the grid.
func (sh *Ship) Contour() []Coordinates {
	if len(sh.body) == 0 {
		return nil
	}

	dx, dy := sh.orientation.unit()
	// perpendicular step
	px, py := dy, dx

	contour := make([]Coordinates, 0, 2*len(sh.body)+6)
	for _, cell := range sh.body {
		contour = append(contour, cell.Add(px, py), cell.Add(-px, -py))
	}

	bow := sh.body[0].Add(-dx, -dy)
	stern := sh.body[len(sh.body)-1].Add(dx, dy)
	for _, end := range []Coordinates{bow, stern} {
		contour = append(contour, end.Add(-px, -py), end, end.Add(px, py))
	}

	return contour
}

// touches reports whether c lies on the ship or inside its contour.
func (sh *Ship) touches(c Coordinates) bool {
	if sh.Contains(c) {
		return true
	}
	for _, cell := range sh.Contour() {
		if cell == c {
			return true
		}
	}
	return false
}
