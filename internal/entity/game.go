package entity

import "fmt"

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// WinningScore - number of match wins that ends a series.
const WinningScore = 3

const (
	DefaultPlayer1Name = "Player 1"
	DefaultPlayer2Name = "Player 2"
	ComputerName       = "Computer"
)

// Board - nine cells in row-major order.
type Board [9]Mark

// Match - one play-through of the grid. Active is the only terminal flag.
type Match struct {
	Board  Board `json:"board"`
	Turn   Mark  `json:"turn"`
	Active bool  `json:"active"`
}

type Series struct {
	Player1Wins int `json:"player1_wins"`
	Player2Wins int `json:"player2_wins"`
}

// Game - everything the controller owns: the match, the series, the opponent mode and both names.
type Game struct {
	Match
	Series

	WithComputer bool   `json:"with_computer"`
	Player1Name  string `json:"player1_name"`
	Player2Name  string `json:"player2_name"`

	Announcement  string `json:"announcement,omitempty"`
	ScoresVisible bool   `json:"scores_visible"`
}

func NewMatch() Match {
	return Match{
		Board:  Board{},
		Turn:   PlayerX,
		Active: true,
	}
}

func NewGame() *Game {
	return &Game{Match: NewMatch()}
}

func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells - indices of all unoccupied cells in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, len(that))
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that *Game) Player1DisplayName() string {
	if that.Player1Name == "" {
		return DefaultPlayer1Name
	}
	return that.Player1Name
}

func (that *Game) Player2DisplayName() string {
	if that.WithComputer {
		return ComputerName
	}

	if that.Player2Name == "" {
		return DefaultPlayer2Name
	}
	return that.Player2Name
}

// DisplayName - name shown for the player holding mark.
func (that *Game) DisplayName(mark Mark) string {
	if mark == PlayerO {
		return that.Player2DisplayName()
	}
	return that.Player1DisplayName()
}

// IsComputerTurn - true when the computer must move next and human input is blocked.
func (that *Game) IsComputerTurn() bool {
	return that.WithComputer && that.Active && that.Turn == PlayerO
}

// SeriesOver - true once either side has reached WinningScore.
func (that Series) SeriesOver() bool {
	return that.Player1Wins >= WinningScore || that.Player2Wins >= WinningScore
}

// SeriesWinner - mark of the side that reached WinningScore, player 1 first.
func (that Series) SeriesWinner() (Mark, bool) {
	switch {
	case that.Player1Wins >= WinningScore:
		return PlayerX, true
	case that.Player2Wins >= WinningScore:
		return PlayerO, true
	default:
		return EmptyCell, false
	}
}

// AnnounceSeriesWinner - sets the terminal announcement if the series is over.
func (that *Game) AnnounceSeriesWinner() bool {
	winner, ok := that.SeriesWinner()
	if !ok {
		return false
	}

	that.Announcement = fmt.Sprintf("%s wins the game!!!", that.DisplayName(winner))
	that.Active = false

	return true
}
