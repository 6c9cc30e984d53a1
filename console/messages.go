package console

import (
	"errors"
	"fmt"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

var greeting = []string{
	"Welcome aboard, captain!",
	"",
	"  Both fleets hold one 3-deck ship, two 2-deck ships and three boats.",
	"  Fire by typing the column and the row separated by a space, e.g. \"3 5\".",
	"  Columns and rows are numbered 1 to 6. A hit earns another shot.",
	"  Type \"q\" to leave the game.",
	"",
	"  ~ water   ■ ship   X hit   . miss",
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, cerr.ErrMalformedInput):
		return fmt.Sprintf("Type two numbers from 1 to %d separated by a space.", mb.GridSize)
	case errors.Is(err, cerr.ErrOutOfBounds):
		return fmt.Sprintf("That shot is off the grid, use 1 to %d.", mb.GridSize)
	case errors.Is(err, cerr.ErrAlreadyTargeted):
		return "You already fired there."
	default:
		return err.Error()
	}
}

func shotMessage(p *mb.Player, target mb.Coordinates, result mb.ShotResult) string {
	who := "You fire"
	if p.Side() == mb.SideComputer {
		who = "Computer fires"
	}

	outcome := "miss."
	switch {
	case result.Sunk:
		outcome = "hit and sunk!"
	case result.Hit:
		outcome = "hit!"
	}

	return fmt.Sprintf("%s at %d %d: %s", who, target.X+1, target.Y+1, outcome)
}

func winnerMessage(winner mb.Side) string {
	return fmt.Sprintf("Winner: %s", winner)
}

func scoreMessage(score mb.Score) string {
	return fmt.Sprintf("Score\tyou: %d\tcomputer: %d", score.User, score.Computer)
}
