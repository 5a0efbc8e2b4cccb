package tictactoe

import "github.com/rocketscienceinc/tictactoe-series/internal/entity"

// Reset - starts a fresh match. A full reset also ends the series: counters, names and score display are cleared.
func Reset(game entity.Game, full bool) entity.Game {
	game.Match = entity.NewMatch()
	game.Announcement = ""

	if full {
		game.Series = entity.Series{}
		game.Player1Name = ""
		game.Player2Name = ""
		game.ScoresVisible = false
	}

	return game
}

// ToggleOpponent - switches player 2 between a human and the computer. Series counters are kept.
func ToggleOpponent(game entity.Game) entity.Game {
	game.WithComputer = !game.WithComputer
	game.ScoresVisible = true

	return game
}

// Rename - stores both display names as typed, empty meaning "use the default".
func Rename(game entity.Game, player1, player2 string) entity.Game {
	game.Player1Name = player1
	game.Player2Name = player2

	return game
}
