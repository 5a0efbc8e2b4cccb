package entity

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBoard = errors.New("invalid board")
	ErrInvalidTurn  = errors.New("invalid player turn")
	ErrInvalidScore = errors.New("invalid score")
)

// Snapshot - the persisted representation of a Game. Field names match the browser page's saved state.
type Snapshot struct {
	Board         Board  `json:"boardState"`
	CurrentPlayer Mark   `json:"currentPlayer"`
	Active        bool   `json:"gameActive"`
	Player1Wins   int    `json:"player1Wins"`
	Player2Wins   int    `json:"player2Wins"`
	WithComputer  bool   `json:"isComputerOpponent"`
	Player1Name   string `json:"player1Name"`
	Player2Name   string `json:"player2Name"`
}

func (that *Game) Snapshot() *Snapshot {
	return &Snapshot{
		Board:         that.Board,
		CurrentPlayer: that.Turn,
		Active:        that.Active,
		Player1Wins:   that.Player1Wins,
		Player2Wins:   that.Player2Wins,
		WithComputer:  that.WithComputer,
		Player1Name:   that.Player1Name,
		Player2Name:   that.Player2Name,
	}
}

// Game - rebuilds the full in-memory state from a snapshot.
// A restored game always shows the scores, and the announcement is re-derived from the series.
func (that *Snapshot) Game() *Game {
	game := &Game{
		Match: Match{
			Board:  that.Board,
			Turn:   that.CurrentPlayer,
			Active: that.Active,
		},
		Series: Series{
			Player1Wins: that.Player1Wins,
			Player2Wins: that.Player2Wins,
		},
		WithComputer:  that.WithComputer,
		Player1Name:   that.Player1Name,
		Player2Name:   that.Player2Name,
		ScoresVisible: true,
	}

	game.AnnounceSeriesWinner()

	return game
}

func (that *Snapshot) Validate() error {
	for i, cell := range that.Board {
		if cell != EmptyCell && !cell.IsPlayer() {
			return fmt.Errorf("%w: cell %d holds %q", ErrInvalidBoard, i, cell)
		}
	}

	if !that.CurrentPlayer.IsPlayer() {
		return fmt.Errorf("%w: %q", ErrInvalidTurn, that.CurrentPlayer)
	}

	if that.Player1Wins < 0 || that.Player2Wins < 0 {
		return fmt.Errorf("%w: %d/%d", ErrInvalidScore, that.Player1Wins, that.Player2Wins)
	}

	return nil
}

func (that *Snapshot) Series() Series {
	return Series{
		Player1Wins: that.Player1Wins,
		Player2Wins: that.Player2Wins,
	}
}
