package battleship

import (
	"log"

	"github.com/saeidalz13/battleship-solo/internal"
)

// Ships are placed in this order, longest first.
var FleetLengths = [MaxShips]int{3, 2, 2, 1, 1, 1}

// Placement attempts allowed before a half built board is thrown away.
const maxPlacementAttempts = 2000

// Reporter receives game events so a front end can draw them.
type Reporter interface {
	RoundStarted(g *Game)
	ShotResolved(p *Player, target Coordinates, result ShotResult)
	ShotRejected(p *Player, target Coordinates, err error)
	GameOver(g *Game, winner Side)
}

type NopReporter struct{}

var _ Reporter = NopReporter{}

func (NopReporter) RoundStarted(*Game)                            {}
func (NopReporter) ShotResolved(*Player, Coordinates, ShotResult) {}
func (NopReporter) ShotRejected(*Player, Coordinates, error)      {}
func (NopReporter) GameOver(*Game, Side)                          {}

type Game struct {
	uuid       string
	isFinished bool
	winner     Side
	rounds     int
	userGrid   *Grid
	aiGrid     *Grid
	user       *Player
	computer   *Player
	reporter   Reporter
}

// NewGame deals a random fleet to each side. src feeds both the placement
// and the computer's targeting; input supplies the user's shots.
func NewGame(src Source, input InputReader, reporter Reporter) *Game {
	userGrid := RandomGrid(src, false)
	aiGrid := RandomGrid(src, true)

	return NewGameWithGrids(userGrid, aiGrid, NewHumanTargeter(input), NewAiTargeter(src), reporter)
}

// NewGameWithGrids builds a game on prepared grids.
func NewGameWithGrids(userGrid, aiGrid *Grid, userTargeter, aiTargeter Targeter, reporter Reporter) *Game {
	if reporter == nil {
		reporter = NopReporter{}
	}

	game := &Game{
		uuid:     internal.NewShortUuid(6),
		userGrid: userGrid,
		aiGrid:   aiGrid,
		user:     NewPlayer(SideUser, userGrid, aiGrid, userTargeter),
		computer: NewPlayer(SideComputer, aiGrid, userGrid, aiTargeter),
		reporter: reporter,
	}
	game.user.SetReporter(reporter)
	game.computer.SetReporter(reporter)

	return game
}

// RandomGrid places the standard fleet at random. A failed placement is
// simply resampled; after maxPlacementAttempts the board starts over.
func RandomGrid(src Source, hidden bool) *Grid {
	var (
		grid     *Grid
		attempts int
	)

	for {
		if attempts >= maxPlacementAttempts {
			log.Printf("fleet placement stuck after %d attempts, restarting board\n", attempts)
			attempts = 0
		}
		if attempts == 0 {
			grid = NewGrid(hidden)
		}

		placed := len(grid.ships)
		if placed == MaxShips {
			return grid
		}

		length := FleetLengths[placed]
		anchor := NewCoordinates(src.IntN(0, GridSize-length), src.IntN(0, GridSize-length))
		orientation := Orientation(src.IntN(int(OrientationHorizontal), int(OrientationVertical)))

		// Any failure just means another sample.
		_ = grid.AddShip(NewShip(length, anchor, orientation))
		attempts++
	}
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) UserGrid() *Grid {
	return g.userGrid
}

func (g *Game) AiGrid() *Grid {
	return g.aiGrid
}

func (g *Game) User() *Player {
	return g.user
}

func (g *Game) Computer() *Player {
	return g.computer
}

// returns the players in the order they move.
func (g *Game) GetPlayers() []*Player {
	return []*Player{g.user, g.computer}
}

func (g *Game) Rounds() int {
	return g.rounds
}

func (g *Game) IsFinished() bool {
	return g.isFinished
}

func (g *Game) Winner() Side {
	return g.winner
}

// Run alternates the user and the computer, user first, until one fleet is
// destroyed, and returns the winning side. An error from a player's input
// aborts the game unfinished.
func (g *Game) Run() (Side, error) {
	for !g.isFinished {
		g.rounds++
		g.reporter.RoundStarted(g)

		for _, player := range g.GetPlayers() {
			turn, err := player.Move()
			if err != nil {
				log.Printf("game %s aborted in round %d: %v\n", g.uuid, g.rounds, err)
				return SideNone, err
			}
			log.Printf("game %s round %d\t%s: shots %d, hits %d, sunk %d, retries %d\n",
				g.uuid, g.rounds, player.side, turn.Shots, turn.Hits, turn.Sunk, turn.Retries)

			if player.enemyGrid.AliveCount() == 0 {
				g.finish(player.side)
				break
			}
		}
	}

	return g.winner, nil
}

func (g *Game) finish(winner Side) {
	g.isFinished = true
	g.winner = winner
	log.Printf("game %s finished after %d rounds, winner: %s\n", g.uuid, g.rounds, winner)
	g.reporter.GameOver(g, winner)
}
