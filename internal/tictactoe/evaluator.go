package tictactoe

import "github.com/rocketscienceinc/tictactoe-series/internal/entity"

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	default:
		return "none"
	}
}

// WinCombos - rows, then columns, then diagonals. Evaluate relies on this order.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Result - outcome of a board. Winner and Line are set only for OutcomeWin.
type Result struct {
	Outcome Outcome
	Winner  entity.Mark
	Line    [3]int
}

func (that Result) IsTerminal() bool {
	return that.Outcome != OutcomeNone
}

// Evaluate - checks the board for a completed line, then for a draw.
func Evaluate(board entity.Board) Result {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return Result{Outcome: OutcomeWin, Winner: a, Line: combo}
		}
	}

	if board.IsFull() {
		return Result{Outcome: OutcomeDraw}
	}

	return Result{Outcome: OutcomeNone}
}
