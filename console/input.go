package console

import (
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

// parseCoordinates turns "x y" into two 1-indexed integers. Range checks
// are left to the grid, which reports them as out of bounds.
func parseCoordinates(input string) (int, int, error) {
	input = strings.TrimSpace(input)
	if isQuit(input) {
		return 0, 0, cerr.ErrQuit
	}

	fields := strings.Fields(input)
	if len(fields) != 2 {
		return 0, 0, cerr.ErrInvalidInput(input)
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, cerr.ErrInvalidInput(input)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, cerr.ErrInvalidInput(input)
	}

	return x, y, nil
}

func isQuit(input string) bool {
	switch strings.ToLower(input) {
	case "q", "quit":
		return true
	}
	return false
}

func isYes(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}
	return false
}
