package console

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	UIText   = "text"
	UIScreen = "screen"
)

// Frontend is what a console session needs from a user interface: it draws
// game events, reads the user's shots and asks for rematches.
type Frontend interface {
	mb.Reporter
	mb.InputReader
	Greet()
	AskRematch(score mb.Score) (bool, error)
	Close() error
}

type Console struct {
	stage       string
	ui          string
	seed        int64
	in          io.Reader
	out         io.Writer
	screen      tcell.Screen
	front       Frontend
	GameManager *mb.BattleshipGameManager
}

type Option func(*Console) error

func NewConsole(optFuncs ...Option) *Console {
	console := Console{
		stage: StageDev,
		ui:    UIText,
		seed:  time.Now().UnixNano(),
		in:    os.Stdin,
		out:   os.Stdout,
	}
	for _, opt := range optFuncs {
		if err := opt(&console); err != nil {
			panic(err)
		}
	}

	console.GameManager = mb.NewBattleshipGameManager()
	return &console
}

func WithStage(stage string) Option {
	return func(c *Console) error {
		if stage != StageProd && stage != StageDev {
			return fmt.Errorf("invalid type of development stage: %s", stage)
		}
		c.stage = stage
		return nil
	}
}

func WithUI(ui string) Option {
	return func(c *Console) error {
		if ui != UIText && ui != UIScreen {
			return fmt.Errorf("invalid type of user interface: %s", ui)
		}
		c.ui = ui
		return nil
	}
}

func WithSeed(seed int64) Option {
	return func(c *Console) error {
		c.seed = seed
		return nil
	}
}

func WithInput(in io.Reader) Option {
	return func(c *Console) error {
		if in == nil {
			return errors.New("input reader is nil")
		}
		c.in = in
		return nil
	}
}

func WithOutput(out io.Writer) Option {
	return func(c *Console) error {
		if out == nil {
			return errors.New("output writer is nil")
		}
		c.out = out
		return nil
	}
}

// WithScreen plays on the given screen instead of opening the terminal.
// It implies the screen UI.
func WithScreen(screen tcell.Screen) Option {
	return func(c *Console) error {
		if screen == nil {
			return errors.New("screen is nil")
		}
		c.screen = screen
		c.ui = UIScreen
		return nil
	}
}

// WithFrontend plays through a ready made front end. It takes precedence
// over the ui setting.
func WithFrontend(front Frontend) Option {
	return func(c *Console) error {
		if front == nil {
			return errors.New("frontend is nil")
		}
		c.front = front
		return nil
	}
}

func (c *Console) newFrontend() (Frontend, error) {
	if c.front != nil {
		return c.front, nil
	}
	if c.ui == UIText {
		return NewTextUI(c.in, c.out), nil
	}

	screen := c.screen
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, err
		}
	}
	return NewScreenUI(screen)
}

// Run plays games until the user declines a rematch or quits. Quitting and
// running out of input are normal endings and return nil.
func (c *Console) Run() error {
	front, err := c.newFrontend()
	if err != nil {
		return err
	}
	defer func() {
		if err := front.Close(); err != nil {
			log.Println("failed to close the user interface:", err)
		}
	}()

	log.Printf("console session started\tstage: %s\tui: %s\tseed: %d\n", c.stage, c.ui, c.seed)
	src := mb.NewRandSource(c.seed)
	front.Greet()

sessionLoop:
	for {
		game := c.GameManager.CreateGame(src, front, front)
		log.Println("a new game created, uuid:", game.Uuid())
		if c.stage == StageDev {
			logFleet(game)
		}

		if _, err := game.Run(); err != nil {
			c.GameManager.TerminateGame(game.Uuid())
			if isSessionEnd(err) {
				log.Println("session ended by the user:", err)
				break sessionLoop
			}
			return err
		}

		if _, err := c.GameManager.FinishGame(game.Uuid()); err != nil {
			return err
		}

		again, err := front.AskRematch(c.GameManager.Score())
		if err != nil {
			if isSessionEnd(err) {
				break sessionLoop
			}
			return err
		}
		if !again {
			break sessionLoop
		}
		log.Println("rematch requested")
	}

	score := c.GameManager.Score()
	log.Printf("console session finished\tuser: %d\tcomputer: %d\n", score.User, score.Computer)
	return nil
}

func isSessionEnd(err error) bool {
	return errors.Is(err, cerr.ErrQuit) || errors.Is(err, io.EOF)
}

func logFleet(game *mb.Game) {
	for _, ship := range game.AiGrid().Ships() {
		log.Printf("game %s computer ship\tlength: %d\tanchor: %v\t%s\n",
			game.Uuid(), ship.Length(), ship.Anchor(), ship.Orientation())
	}
}
