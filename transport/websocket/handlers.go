package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-series/internal/apperror"
)

var ErrCellRequired = errors.New("cell is required")

func (that *Server) handleState(_ context.Context, _ *Message, client *client) error {
	return client.sendState(that.gameManager.State())
}

// handleTurn - the new state reaches the page through the subscription; ignored moves produce nothing.
func (that *Server) handleTurn(ctx context.Context, message *Message, _ *client) error {
	var payload TurnPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.Cell == nil {
		return ErrCellRequired
	}

	if _, err := that.gameManager.Play(ctx, *payload.Cell); err != nil && !apperror.IsIgnoredMove(err) {
		return fmt.Errorf("failed to play cell %d: %w", *payload.Cell, err)
	}

	return nil
}

func (that *Server) handleReset(ctx context.Context, _ *Message, _ *client) error {
	that.gameManager.PressReset(ctx)
	return nil
}

func (that *Server) handleOpponent(ctx context.Context, _ *Message, _ *client) error {
	that.gameManager.ToggleOpponent(ctx)
	return nil
}

func (that *Server) handleNames(ctx context.Context, message *Message, _ *client) error {
	var payload NamesPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	that.gameManager.Rename(ctx, payload.Player1, payload.Player2)

	return nil
}
