package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

const barWidth = 80

// TextUI plays the game on a line based terminal: boards are printed with
// fmt and moves are read one line at a time.
type TextUI struct {
	scanner *bufio.Scanner
	out     io.Writer
}

var _ Frontend = (*TextUI)(nil)

func NewTextUI(in io.Reader, out io.Writer) *TextUI {
	return &TextUI{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (t *TextUI) readLine() (string, error) {
	if t.scanner.Scan() {
		return t.scanner.Text(), nil
	}
	if err := t.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (t *TextUI) Greet() {
	fmt.Fprintln(t.out, strings.Repeat("-", barWidth))
	for _, line := range greeting {
		fmt.Fprintln(t.out, line)
	}
	fmt.Fprintln(t.out, strings.Repeat("-", barWidth))
}

func (t *TextUI) ReadCoordinates() (int, int, error) {
	fmt.Fprintln(t.out, "Enter the shot coordinates separated by a space:")
	line, err := t.readLine()
	if err != nil {
		return 0, 0, err
	}
	return parseCoordinates(line)
}

func (t *TextUI) AskRematch(score mb.Score) (bool, error) {
	fmt.Fprintln(t.out, scoreMessage(score))
	fmt.Fprint(t.out, "Play again? (y/n): ")
	line, err := t.readLine()
	if err != nil {
		return false, err
	}
	return isYes(line), nil
}

func (t *TextUI) RoundStarted(g *mb.Game) {
	t.printBoards(g)
}

func (t *TextUI) ShotResolved(p *mb.Player, target mb.Coordinates, result mb.ShotResult) {
	// GameOver prints the final boards itself
	if p.Side() == mb.SideUser && result.Hit && p.EnemyGrid().AliveCount() > 0 {
		RenderGrid(t.out, "Enemy waters", p.EnemyGrid())
	}
	fmt.Fprintln(t.out, shotMessage(p, target, result))
}

func (t *TextUI) ShotRejected(p *mb.Player, _ mb.Coordinates, err error) {
	// the computer just picks again
	if p.Side() != mb.SideUser {
		return
	}
	fmt.Fprintln(t.out, rejectionMessage(err))
}

func (t *TextUI) GameOver(g *mb.Game, winner mb.Side) {
	t.printBoards(g)
	fmt.Fprintln(t.out, winnerMessage(winner))
}

func (t *TextUI) Close() error {
	return nil
}

func (t *TextUI) printBoards(g *mb.Game) {
	RenderGrid(t.out, "Your fleet", g.UserGrid())
	RenderGrid(t.out, "Enemy waters", g.AiGrid())
}

// RenderGrid writes grid framed by bars, with 1-indexed column numbers
// across the top and row numbers down the left side.
func RenderGrid(w io.Writer, title string, grid *mb.Grid) {
	var builder strings.Builder

	builder.WriteString(strings.Repeat("=", barWidth))
	builder.WriteByte('\n')
	if title != "" {
		builder.WriteString(title)
		builder.WriteByte('\n')
	}

	builder.WriteString("  | ")
	for x := 0; x < mb.GridSize; x++ {
		builder.WriteString(strconv.Itoa(x + 1))
		builder.WriteString(" | ")
	}
	builder.WriteByte('\n')

	for y := 0; y < mb.GridSize; y++ {
		builder.WriteString(strconv.Itoa(y + 1))
		builder.WriteString(" | ")
		for x := 0; x < mb.GridSize; x++ {
			builder.WriteRune(grid.DisplayState(mb.NewCoordinates(x, y)).Glyph())
			builder.WriteString(" | ")
		}
		builder.WriteByte('\n')
	}

	builder.WriteString(strings.Repeat("=", barWidth))
	builder.WriteByte('\n')

	fmt.Fprint(w, builder.String())
}
