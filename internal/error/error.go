package error

import (
	"errors"
	"fmt"
)

// Root kinds. Every placement or shot failure wraps exactly one of them.
var (
	ErrOutOfBounds     = errors.New("position is out of game grid bound")
	ErrInvalidPosition = errors.New("invalid position")
)

var (
	ErrCapacityExceeded  = fmt.Errorf("%w: fleet capacity exceeded", ErrInvalidPosition)
	ErrEmptyShip         = fmt.Errorf("%w: ship has no body", ErrInvalidPosition)
	ErrDuplicateShip     = fmt.Errorf("%w: ship is already on the grid", ErrInvalidPosition)
	ErrOverlapOrAdjacent = fmt.Errorf("%w: ship overlaps or touches another ship", ErrInvalidPosition)
	ErrAlreadyTargeted   = fmt.Errorf("%w: position was already shot", ErrInvalidPosition)
	ErrMalformedInput    = fmt.Errorf("%w: malformed coordinates", ErrInvalidPosition)
)

// ErrQuit is returned by input readers when the user asks to leave.
var ErrQuit = errors.New("player quit the game")

func ErrShipOutOfBounds(x, y int) error {
	return fmt.Errorf("%w, ship cell\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrShotOutOfBounds(x, y int) error {
	return fmt.Errorf("%w, shot\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrShipOverlap(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrOverlapOrAdjacent, x, y)
}

func ErrPositionAlreadyShot(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrAlreadyTargeted, x, y)
}

func ErrInvalidInput(input string) error {
	return fmt.Errorf("%w:\t%q", ErrMalformedInput, input)
}

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrGameIsNil(gameUuid string) error {
	return fmt.Errorf("game with this uuid is nil, uuid: %s", gameUuid)
}

// IsRetryable reports whether err is one of the two recoverable kinds a
// player answers by picking another target.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrOutOfBounds) || errors.Is(err, ErrInvalidPosition)
}
