package view

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/tictactoe-series/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Fresh game", func(t *testing.T) {
		// When: rendering a new game
		actual := New(*entity.NewGame())

		// Then: nothing is highlighted and the defaults are shown
		assert.Equal(t, []int{}, actual.WinningLine)
		assert.Equal(t, Player{Name: "Player 1"}, actual.Player1)
		assert.Equal(t, Player{Name: "Player 2"}, actual.Player2)
		assert.Equal(t, SwitchToComputer, actual.OpponentButton)
		assert.False(t, actual.Player2InputDisabled)
		assert.False(t, actual.ScoresVisible)
		assert.True(t, actual.Active)
	})

	t.Run("Won match against the computer", func(t *testing.T) {
		// Given: the computer completed the middle row
		game := *entity.NewGame()
		game.Board = entity.Board{entity.PlayerX, entity.PlayerX, "", entity.PlayerO, entity.PlayerO, entity.PlayerO, entity.PlayerX, "", ""}
		game.Active = false
		game.WithComputer = true
		game.Player2Name = "Bob"
		game.Player2Wins = 1
		game.ScoresVisible = true

		// When: rendering it
		actual := New(game)

		// Then: the line is highlighted and player 2 is the computer
		assert.Equal(t, []int{3, 4, 5}, actual.WinningLine)
		assert.Equal(t, Player{Name: entity.ComputerName, Wins: 1}, actual.Player2)
		assert.Equal(t, "Bob", actual.Player2Input)
		assert.True(t, actual.Player2InputDisabled)
		assert.Equal(t, SwitchToPlayer2, actual.OpponentButton)
	})

	t.Run("JSON layout", func(t *testing.T) {
		raw, err := json.Marshal(New(*entity.NewGame()))
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"board": ["", "", "", "", "", "", "", "", ""],
			"turn": "X",
			"active": true,
			"winningLine": [],
			"announcement": "",
			"scoresVisible": false,
			"player1": {"name": "Player 1", "wins": 0},
			"player2": {"name": "Player 2", "wins": 0},
			"player1Input": "",
			"player2Input": "",
			"player2InputDisabled": false,
			"opponentButton": "Switch to Computer",
			"withComputer": false
		}`, string(raw))
	})
}
