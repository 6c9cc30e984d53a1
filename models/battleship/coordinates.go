package battleship

import "fmt"

// GridSize is the side of both square grids.
const GridSize = 6

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

// Out reports whether c falls outside the game grid.
func (c Coordinates) Out() bool {
	return c.X < 0 || c.X >= GridSize || c.Y < 0 || c.Y >= GridSize
}

func (c Coordinates) Add(dx, dy int) Coordinates {
	return Coordinates{X: c.X + dx, Y: c.Y + dy}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("{%d, %d}", c.X, c.Y)
}
