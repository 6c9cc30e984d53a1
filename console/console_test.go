package console

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

// sweepInput fires at every cell row by row, then answers the rematch.
func sweepInput(rematch string) string {
	var builder strings.Builder
	for y := 1; y <= mb.GridSize; y++ {
		for x := 1; x <= mb.GridSize; x++ {
			fmt.Fprintf(&builder, "%d %d\n", x, y)
		}
	}
	builder.WriteString(rematch + "\n")
	return builder.String()
}

func TestNewConsoleOptions(t *testing.T) {
	c := NewConsole(WithStage(StageProd), WithUI(UIText), WithSeed(3))
	if c.stage != StageProd || c.ui != UIText || c.seed != 3 {
		t.Fatalf("options not applied: stage %s, ui %s, seed %d", c.stage, c.ui, c.seed)
	}
	if c.GameManager == nil {
		t.Fatal("expected a game manager")
	}

	invalid := []struct {
		name string
		opt  Option
	}{
		{name: "stage", opt: WithStage("staging")},
		{name: "ui", opt: WithUI("gui")},
		{name: "nil input", opt: WithInput(nil)},
		{name: "nil output", opt: WithOutput(nil)},
		{name: "nil screen", opt: WithScreen(nil)},
		{name: "nil frontend", opt: WithFrontend(nil)},
	}
	for _, test := range invalid {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected NewConsole to panic")
				}
			}()
			NewConsole(test.opt)
		})
	}
}

func TestConsoleRunFullGame(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(
		WithSeed(11),
		WithInput(strings.NewReader(sweepInput("n"))),
		WithOutput(&out),
	)

	if err := c.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	for _, expected := range []string{"Welcome aboard", "Your fleet", "Enemy waters", "Winner: ", "Play again?"} {
		if !strings.Contains(output, expected) {
			t.Fatalf("expected output to contain %q", expected)
		}
	}

	score := c.GameManager.Score()
	if score.User+score.Computer != 1 {
		t.Fatalf("expected exactly one finished game\tgot: %+v", score)
	}
}

// scriptedFrontend sweeps the enemy grid once per game and answers rematch
// prompts from a fixed list. Drawing is left to the embedded TextUI.
type scriptedFrontend struct {
	*TextUI
	answers  []bool
	prompts  int
	next     int
	closeErr error
}

func newScriptedFrontend(out io.Writer, answers ...bool) *scriptedFrontend {
	return &scriptedFrontend{TextUI: NewTextUI(strings.NewReader(""), out), answers: answers}
}

func (sf *scriptedFrontend) RoundStarted(g *mb.Game) {
	if g.Rounds() == 1 {
		sf.next = 0
	}
	sf.TextUI.RoundStarted(g)
}

func (sf *scriptedFrontend) ReadCoordinates() (int, int, error) {
	if sf.next >= mb.GridSize*mb.GridSize {
		return 0, 0, io.EOF
	}
	x, y := sf.next%mb.GridSize+1, sf.next/mb.GridSize+1
	sf.next++
	return x, y, nil
}

func (sf *scriptedFrontend) AskRematch(mb.Score) (bool, error) {
	sf.prompts++
	if sf.prompts > len(sf.answers) {
		return false, io.EOF
	}
	return sf.answers[sf.prompts-1], nil
}

func (sf *scriptedFrontend) Close() error {
	return sf.closeErr
}

func TestConsoleRunRematch(t *testing.T) {
	front := newScriptedFrontend(&bytes.Buffer{}, true, false)
	c := NewConsole(WithSeed(12), WithFrontend(front))

	if err := c.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if front.prompts != 2 {
		t.Fatalf("expected rematch prompts: %d\tgot: %d", 2, front.prompts)
	}
	score := c.GameManager.Score()
	if score.User+score.Computer != 2 {
		t.Fatalf("expected two finished games\tgot: %+v", score)
	}
}

func TestConsoleRunLogsCloseError(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	front := newScriptedFrontend(&bytes.Buffer{}, false)
	front.closeErr = errors.New("terminal gone")
	c := NewConsole(WithSeed(3), WithFrontend(front))

	if err := c.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(logs.String(), "terminal gone") {
		t.Fatalf("expected the close error to be logged\tgot:\n%s", logs.String())
	}
}

func TestConsoleRunQuit(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(
		WithSeed(1),
		WithInput(strings.NewReader("hello\n7 7\nq\n")),
		WithOutput(&out),
	)

	if err := c.Run(); err != nil {
		t.Fatalf("quitting must not be an error\tgot: %v", err)
	}

	output := out.String()
	for _, expected := range []string{"Type two numbers", "off the grid"} {
		if !strings.Contains(output, expected) {
			t.Fatalf("expected output to contain %q\tgot:\n%s", expected, output)
		}
	}
	if strings.Contains(output, "Winner: ") {
		t.Fatal("a quit game must not announce a winner")
	}
	if score := c.GameManager.Score(); score != (mb.Score{}) {
		t.Fatalf("expected no score\tgot: %+v", score)
	}
}

func TestConsoleRunEndOfInput(t *testing.T) {
	c := NewConsole(
		WithSeed(1),
		WithInput(strings.NewReader("1 1\n")),
		WithOutput(&bytes.Buffer{}),
	)
	if err := c.Run(); err != nil {
		t.Fatalf("running out of input must not be an error\tgot: %v", err)
	}
}

func TestConsoleScreenFrontend(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	c := NewConsole(WithScreen(sim))
	if c.ui != UIScreen {
		t.Fatalf("expected ui: %s\tgot: %s", UIScreen, c.ui)
	}

	front, err := c.newFrontend()
	if err != nil {
		t.Fatal(err)
	}
	defer front.Close()

	if _, ok := front.(*ScreenUI); !ok {
		t.Fatalf("expected *ScreenUI\tgot: %T", front)
	}
}
