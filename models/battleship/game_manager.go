package battleship

import (
	"fmt"
	"sync"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

type Score struct {
	User     int
	Computer int
}

type GameManager interface {
	CreateGame(src Source, input InputReader, reporter Reporter) *Game
	AddGame(game *Game)
	FetchGame(gameUuid string) (*Game, error)
	FinishGame(gameUuid string) (Side, error)
	TerminateGame(gameUuid string)
	Score() Score
}

// BattleshipGameManager keeps the games of one console session and the
// running score across rematches.
type BattleshipGameManager struct {
	games map[string]*Game
	score Score
	mu    sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager() *BattleshipGameManager {
	return &BattleshipGameManager{
		games: make(map[string]*Game, 4),
	}
}

func (bgm *BattleshipGameManager) CreateGame(src Source, input InputReader, reporter Reporter) *Game {
	game := NewGame(src, input, reporter)
	bgm.AddGame(game)
	return game
}

func (bgm *BattleshipGameManager) AddGame(game *Game) {
	bgm.mu.Lock()
	bgm.games[game.uuid] = game
	bgm.mu.Unlock()
}

func (bgm *BattleshipGameManager) FetchGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()

	game, prs := bgm.games[gameUuid]
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}
	if game == nil {
		return nil, cerr.ErrGameIsNil(gameUuid)
	}
	return game, nil
}

// FinishGame credits the winner of a finished game and drops the game.
// Lookup, scoring and removal happen under one lock so a game scores once.
func (bgm *BattleshipGameManager) FinishGame(gameUuid string) (Side, error) {
	bgm.mu.Lock()
	defer bgm.mu.Unlock()

	game, prs := bgm.games[gameUuid]
	if !prs {
		return SideNone, cerr.ErrGameNotExists(gameUuid)
	}
	if game == nil {
		return SideNone, cerr.ErrGameIsNil(gameUuid)
	}
	if !game.IsFinished() {
		return SideNone, fmt.Errorf("game is not finished yet, uuid: %s", gameUuid)
	}

	switch game.Winner() {
	case SideUser:
		bgm.score.User++
	case SideComputer:
		bgm.score.Computer++
	}
	delete(bgm.games, gameUuid)

	return game.Winner(), nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}

func (bgm *BattleshipGameManager) Score() Score {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()
	return bgm.score
}
