package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-series/transport/view"
)

const (
	actionState    = "game:state"
	actionTurn     = "game:turn"
	actionReset    = "game:reset"
	actionOpponent = "game:opponent"
	actionNames    = "game:names"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type TurnPayload struct {
	Cell *int `json:"cell"`
}

type NamesPayload struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

func newStateMessage(game *view.Game) (Message, error) {
	payload, err := json.Marshal(game)
	if err != nil {
		return Message{}, fmt.Errorf("failed to marshal game: %w", err)
	}

	return Message{Action: actionState, Payload: payload}, nil
}

func newErrorMessage(action, reason string) Message {
	payload, _ := json.Marshal(ErrorPayload{Error: reason})

	return Message{Action: action, Payload: payload}
}
