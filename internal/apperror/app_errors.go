package apperror

import "errors"

// Ignored-input conditions. None of them is fatal: callers drop the input and keep the state.
var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrComputerTurn     = errors.New("it's the computer's turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrNoAvailableMoves = errors.New("no available moves")
)

// IsIgnoredMove reports whether err means a move was rejected and the state left untouched.
func IsIgnoredMove(err error) bool {
	return errors.Is(err, ErrGameFinished) ||
		errors.Is(err, ErrNotYourTurn) ||
		errors.Is(err, ErrComputerTurn) ||
		errors.Is(err, ErrCellOccupied) ||
		errors.Is(err, ErrInvalidCell)
}
