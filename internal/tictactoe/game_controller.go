package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-series/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-series/internal/entity"
)

// ApplyMove - places mark on cell and advances the match and the series.
// On an ignored move the returned game equals the given one.
func ApplyMove(game entity.Game, cell int, mark entity.Mark) (entity.Game, Result, error) {
	if err := validateMove(&game, mark, cell); err != nil {
		return game, Result{}, err
	}

	game.Board[cell] = mark
	game.Turn = mark.Opponent()

	result := Evaluate(game.Board)
	updateGameStatus(&game, result)

	return game, result, nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, mark entity.Mark, cell int) error {
	if cell < 0 || cell >= len(game.Board) {
		return apperror.ErrInvalidCell
	}

	if !game.Active {
		return apperror.ErrGameFinished
	}

	if game.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if game.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - applies a terminal result to the match and the series counters.
func updateGameStatus(game *entity.Game, result Result) {
	switch result.Outcome {
	case OutcomeWin:
		game.Active = false

		if result.Winner == entity.PlayerX {
			game.Player1Wins++
		} else {
			game.Player2Wins++
		}

		game.ScoresVisible = true
		game.AnnounceSeriesWinner()
	case OutcomeDraw:
		game.Active = false
	case OutcomeNone:
	}
}
