package service

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-series/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-series/internal/entity"
)

type BotService interface {
	ChooseMove(board entity.Board) (int, error)
}

type botService struct {
	rnd *rand.Rand
}

// NewBotService - creates the random opponent. A nil rnd falls back to the global source.
func NewBotService(rnd *rand.Rand) BotService {
	return &botService{rnd: rnd}
}

// ChooseMove - picks one empty cell uniformly at random. No lookahead.
func (that *botService) ChooseMove(board entity.Board) (int, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return -1, apperror.ErrNoAvailableMoves
	}

	return availableCells[that.intN(len(availableCells))], nil
}

func (that *botService) intN(n int) int {
	if that.rnd == nil {
		return rand.IntN(n) //nolint: gosec // it's ok
	}
	return that.rnd.IntN(n)
}
