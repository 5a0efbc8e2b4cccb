package service

import (
	"math/rand/v2"
	"testing"

	"github.com/rocketscienceinc/tictactoe-series/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-series/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestBotService_ChooseMove(t *testing.T) {
	t.Run("Single empty cell", func(t *testing.T) {
		// Given: a board with only cell 5 free
		board := entity.Board{x, o, x, o, x, e, o, x, o}
		bot := NewBotService(nil)

		for range 20 {
			// When: the bot chooses a move
			cell, err := bot.ChooseMove(board)

			// Then: it always picks that cell
			require.NoError(t, err)
			assert.Equal(t, 5, cell)
		}
	})

	t.Run("Full board", func(t *testing.T) {
		// Given: a board with no free cell
		board := entity.Board{x, o, x, x, o, o, o, x, x}
		bot := NewBotService(nil)

		// When: the bot chooses a move
		cell, err := bot.ChooseMove(board)

		// Then: ErrNoAvailableMoves is returned
		require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
		assert.Equal(t, -1, cell)
	})

	t.Run("Only empty cells are chosen", func(t *testing.T) {
		// Given: a board with cells 1, 4 and 8 free
		board := entity.Board{x, e, o, x, e, o, x, o, e}
		bot := NewBotService(rand.New(rand.NewPCG(1, 2)))

		seen := make(map[int]int)
		for range 300 {
			cell, err := bot.ChooseMove(board)
			require.NoError(t, err)
			seen[cell]++
		}

		// Then: every free cell is picked and nothing else
		assert.Len(t, seen, 3)
		for _, cell := range []int{1, 4, 8} {
			assert.Positive(t, seen[cell], "cell %d", cell)
		}
	})

	t.Run("Seeded source is deterministic", func(t *testing.T) {
		board := entity.Board{}

		first := NewBotService(rand.New(rand.NewPCG(7, 7)))
		second := NewBotService(rand.New(rand.NewPCG(7, 7)))

		for range 10 {
			a, err := first.ChooseMove(board)
			require.NoError(t, err)
			b, err := second.ChooseMove(board)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		}
	})
}
