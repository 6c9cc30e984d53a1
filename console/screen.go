package console

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	cerr "github.com/saeidalz13/battleship-solo/internal/error"
	mb "github.com/saeidalz13/battleship-solo/models/battleship"
)

const (
	maxStatusLines = 4
	maxInputLen    = 16
)

// cells are drawn two columns wide
const (
	cellWidth  = 2
	gridWidth  = 3 + mb.GridSize*cellWidth
	gridLeft   = 2
	gridTop    = 2
	gridGap    = 8
	statusTop  = gridTop + mb.GridSize + 3
	promptLine = statusTop + maxStatusLines + 1
	helpTop    = promptLine + 2
)

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleLabel   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWater   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleShip    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHit     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleMiss    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	stylePrompt  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// ScreenUI plays the game full screen on a tcell screen. Keys are
// collected into a prompt line; Enter submits, Esc or Ctrl-C quits.
type ScreenUI struct {
	screen  tcell.Screen
	game    *mb.Game
	greeted bool
	status  []string
	prompt  string
	input   []rune
}

var _ Frontend = (*ScreenUI)(nil)

// NewScreenUI takes ownership of screen and initializes it.
func NewScreenUI(screen tcell.Screen) (*ScreenUI, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(styleDefault)
	screen.HideCursor()
	screen.Clear()

	return &ScreenUI{
		screen: screen,
		status: make([]string, 0, maxStatusLines),
		input:  make([]rune, 0, maxInputLen),
	}, nil
}

func (s *ScreenUI) Greet() {
	s.greeted = true
	s.draw()
}

func (s *ScreenUI) ReadCoordinates() (int, int, error) {
	line, err := s.readLine("Fire at (x y): ")
	if err != nil {
		return 0, 0, err
	}
	return parseCoordinates(line)
}

func (s *ScreenUI) AskRematch(score mb.Score) (bool, error) {
	s.addStatus(scoreMessage(score))
	line, err := s.readLine("Play again? (y/n): ")
	if err != nil {
		return false, err
	}
	return isYes(line), nil
}

func (s *ScreenUI) RoundStarted(g *mb.Game) {
	s.game = g
	s.draw()
}

func (s *ScreenUI) ShotResolved(p *mb.Player, target mb.Coordinates, result mb.ShotResult) {
	s.addStatus(shotMessage(p, target, result))
	s.draw()
}

func (s *ScreenUI) ShotRejected(p *mb.Player, _ mb.Coordinates, err error) {
	if p.Side() != mb.SideUser {
		return
	}
	s.addStatus(rejectionMessage(err))
	s.draw()
}

func (s *ScreenUI) GameOver(g *mb.Game, winner mb.Side) {
	s.game = g
	s.addStatus(winnerMessage(winner))
	s.draw()
}

func (s *ScreenUI) Close() error {
	s.screen.Fini()
	return nil
}

// Status returns the message lines currently on screen, oldest first.
func (s *ScreenUI) Status() []string {
	status := make([]string, len(s.status))
	copy(status, s.status)
	return status
}

func (s *ScreenUI) addStatus(line string) {
	if len(s.status) == maxStatusLines {
		copy(s.status, s.status[1:])
		s.status = s.status[:maxStatusLines-1]
	}
	s.status = append(s.status, line)
}

func (s *ScreenUI) readLine(prompt string) (string, error) {
	s.prompt = prompt
	s.input = s.input[:0]
	s.draw()

	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			// screen finalized
			return "", io.EOF

		case *tcell.EventResize:
			s.screen.Sync()

		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", cerr.ErrQuit

			case tcell.KeyEnter:
				line := string(s.input)
				s.input = s.input[:0]
				s.prompt = ""
				s.draw()
				return line, nil

			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(s.input) > 0 {
					s.input = s.input[:len(s.input)-1]
				}

			case tcell.KeyRune:
				if len(s.input) < maxInputLen {
					s.input = append(s.input, ev.Rune())
				}
			}
		}
		s.draw()
	}
}

func (s *ScreenUI) draw() {
	s.screen.Clear()

	title := "BATTLESHIP"
	if s.game != nil {
		title = fmt.Sprintf("BATTLESHIP  game %s  round %d", s.game.Uuid(), s.game.Rounds())
	}
	s.drawText(gridLeft, 0, title, styleTitle)

	if s.game != nil {
		s.drawGrid(gridLeft, gridTop, "Your fleet", s.game.UserGrid())
		s.drawGrid(gridLeft+gridWidth+gridGap, gridTop, "Enemy waters", s.game.AiGrid())
	}

	for i, line := range s.status {
		s.drawText(gridLeft, statusTop+i, line, styleDefault)
	}

	if s.prompt != "" {
		s.drawText(gridLeft, promptLine, s.prompt+string(s.input), stylePrompt)
	}

	if s.greeted {
		for i, line := range greeting {
			s.drawText(gridLeft, helpTop+i, line, styleLabel)
		}
	}

	s.screen.Show()
}

func (s *ScreenUI) drawGrid(left, top int, title string, grid *mb.Grid) {
	s.drawText(left, top, title, styleTitle)

	for x := 0; x < mb.GridSize; x++ {
		s.drawText(left+3+x*cellWidth, top+1, fmt.Sprint(x+1), styleLabel)
	}

	for y := 0; y < mb.GridSize; y++ {
		row := top + 2 + y
		s.drawText(left, row, fmt.Sprint(y+1), styleLabel)
		for x := 0; x < mb.GridSize; x++ {
			state := grid.DisplayState(mb.NewCoordinates(x, y))
			s.screen.SetContent(left+3+x*cellWidth, row, state.Glyph(), nil, cellStyle(state))
		}
	}
}

func (s *ScreenUI) drawText(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func cellStyle(state mb.PositionState) tcell.Style {
	switch state {
	case mb.PositionStateShip:
		return styleShip
	case mb.PositionStateHit:
		return styleHit
	case mb.PositionStateMiss:
		return styleMiss
	default:
		return styleWater
	}
}
