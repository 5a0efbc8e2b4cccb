package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-series/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-series/internal/entity"
	"github.com/rocketscienceinc/tictactoe-series/transport/view"
)

// maxBodySize matches the largest websocket message the page may send.
const maxBodySize = 4096

type Handlers interface {
	GetGame(w http.ResponseWriter, r *http.Request)
	PlayCell(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
	ToggleOpponent(w http.ResponseWriter, r *http.Request)
	Rename(w http.ResponseWriter, r *http.Request)
}

type gameManager interface {
	State() entity.Game
	Play(ctx context.Context, cell int) (entity.Game, error)
	PressReset(ctx context.Context) entity.Game
	ToggleOpponent(ctx context.Context) entity.Game
	Rename(ctx context.Context, player1, player2 string) entity.Game
}

type renameRequest struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

type handlers struct {
	logger      *slog.Logger
	gameManager gameManager
}

func NewHandlers(logger *slog.Logger, gameManager gameManager) Handlers {
	return &handlers{
		logger:      logger.With("component", "rest"),
		gameManager: gameManager,
	}
}

func (that *handlers) GetGame(w http.ResponseWriter, _ *http.Request) {
	that.writeGame(w, that.gameManager.State())
}

// PlayCell - an ignored move is not a client error: the page simply re-renders the unchanged game.
func (that *handlers) PlayCell(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "PlayCell")

	cell, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "cell index must be an integer", http.StatusBadRequest)
		return
	}

	game, err := that.gameManager.Play(r.Context(), cell)
	if err != nil && !apperror.IsIgnoredMove(err) {
		log.Error("failed to play cell", "cell", cell, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeGame(w, game)
}

func (that *handlers) Reset(w http.ResponseWriter, r *http.Request) {
	that.writeGame(w, that.gameManager.PressReset(r.Context()))
}

func (that *handlers) ToggleOpponent(w http.ResponseWriter, r *http.Request) {
	that.writeGame(w, that.gameManager.ToggleOpponent(r.Context()))
}

func (that *handlers) Rename(w http.ResponseWriter, r *http.Request) {
	var request renameRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&request); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}

		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	that.writeGame(w, that.gameManager.Rename(r.Context(), request.Player1, request.Player2))
}

func (that *handlers) writeGame(w http.ResponseWriter, game entity.Game) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(view.New(game)); err != nil {
		that.logger.Error("failed to write game", "error", err)
	}
}
