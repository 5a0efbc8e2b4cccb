package view

import (
	"github.com/rocketscienceinc/tictactoe-series/internal/entity"
	"github.com/rocketscienceinc/tictactoe-series/internal/tictactoe"
)

const (
	SwitchToComputer = "Switch to Computer"
	SwitchToPlayer2  = "Switch to Player 2"
)

type Player struct {
	Name string `json:"name"`
	Wins int    `json:"wins"`
}

// Game - everything the page renders: cells, highlight, texts, scores and input states.
type Game struct {
	Board         entity.Board `json:"board"`
	Turn          entity.Mark  `json:"turn"`
	Active        bool         `json:"active"`
	WinningLine   []int        `json:"winningLine"`
	Announcement  string       `json:"announcement"`
	ScoresVisible bool         `json:"scoresVisible"`
	Player1       Player       `json:"player1"`
	Player2       Player       `json:"player2"`

	Player1Input         string `json:"player1Input"`
	Player2Input         string `json:"player2Input"`
	Player2InputDisabled bool   `json:"player2InputDisabled"`
	OpponentButton       string `json:"opponentButton"`
	WithComputer         bool   `json:"withComputer"`
}

func New(game entity.Game) *Game {
	winningLine := []int{}
	if result := tictactoe.Evaluate(game.Board); result.Outcome == tictactoe.OutcomeWin {
		winningLine = result.Line[:]
	}

	opponentButton := SwitchToComputer
	if game.WithComputer {
		opponentButton = SwitchToPlayer2
	}

	return &Game{
		Board:         game.Board,
		Turn:          game.Turn,
		Active:        game.Active,
		WinningLine:   winningLine,
		Announcement:  game.Announcement,
		ScoresVisible: game.ScoresVisible,
		Player1: Player{
			Name: game.Player1DisplayName(),
			Wins: game.Player1Wins,
		},
		Player2: Player{
			Name: game.Player2DisplayName(),
			Wins: game.Player2Wins,
		},
		Player1Input:         game.Player1Name,
		Player2Input:         game.Player2Name,
		Player2InputDisabled: game.WithComputer,
		OpponentButton:       opponentButton,
		WithComputer:         game.WithComputer,
	}
}
