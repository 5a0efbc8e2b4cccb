package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-series/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-series/internal/entity"
	"github.com/rocketscienceinc/tictactoe-series/internal/repository"
	"github.com/rocketscienceinc/tictactoe-series/internal/tictactoe"
)

// persistTimeout bounds the save issued by a computer move, which has no caller context.
const persistTimeout = 5 * time.Second

type snapshotRepo interface {
	Save(ctx context.Context, snapshot *entity.Snapshot) error
	Load(ctx context.Context) (*entity.Snapshot, error)
}

type botService interface {
	ChooseMove(board entity.Board) (int, error)
}

// GameManager - owns the single game. Every mutation is saved and published before the call returns.
type GameManager struct {
	logger *slog.Logger

	snapshotRepo  snapshotRepo
	botService    botService
	computerDelay time.Duration

	mu   sync.Mutex
	game entity.Game

	// computerGen invalidates a scheduled computer move that already left the timer queue.
	computerMove *time.Timer
	computerGen  uint64

	subscribers  map[uint64]chan entity.Game
	subscriberID uint64
	closed       bool
}

func NewGameManager(logger *slog.Logger, snapshotRepo snapshotRepo, botService botService, computerDelay time.Duration) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		snapshotRepo:  snapshotRepo,
		botService:    botService,
		computerDelay: computerDelay,

		game:        *entity.NewGame(),
		subscribers: make(map[uint64]chan entity.Game),
	}
}

// Restore - replaces the in-memory game with the saved one. Missing or broken state keeps the defaults.
func (that *GameManager) Restore(ctx context.Context) entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "Restore")

	snapshot, err := that.snapshotRepo.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrSnapshotNotFound):
		log.Info("no saved game, starting fresh")
	case err != nil:
		log.Warn("could not restore saved game, starting fresh", "error", err)
	default:
		that.game = *snapshot.Game()
		log.Info("game restored",
			"player1Wins", that.game.Player1Wins,
			"player2Wins", that.game.Player2Wins,
			"withComputer", that.game.WithComputer,
		)
	}

	that.publish()
	that.scheduleComputerMove()

	return that.game
}

func (that *GameManager) State() entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game
}

// Play - applies a human move for the player to move.
// Ignored moves return the unchanged game together with an apperror sentinel.
func (that *GameManager) Play(ctx context.Context, cell int) (entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "Play", "cell", cell)

	if that.game.IsComputerTurn() {
		log.Debug("move ignored", "error", apperror.ErrComputerTurn)
		return that.game, apperror.ErrComputerTurn
	}

	game, result, err := tictactoe.ApplyMove(that.game, cell, that.game.Turn)
	if err != nil {
		log.Debug("move ignored", "error", err)
		return that.game, err
	}

	that.game = game
	that.commit(ctx, log, result)

	if !result.IsTerminal() {
		that.scheduleComputerMove()
	}

	return that.game, nil
}

// Reset - starts a new match, and a new series when full is set. A pending computer move is dropped.
func (that *GameManager) Reset(ctx context.Context, full bool) entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.reset(ctx, full)

	return that.game
}

// PressReset - the reset button: a full reset once the series is over, otherwise a new match.
func (that *GameManager) PressReset(ctx context.Context) entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.reset(ctx, that.game.SeriesOver())

	return that.game
}

func (that *GameManager) reset(ctx context.Context, full bool) {
	that.cancelComputerMove()

	that.game = tictactoe.Reset(that.game, full)
	that.commit(ctx, that.logger.With("method", "Reset", "full", full), tictactoe.Result{})
}

// ToggleOpponent - switches player 2 between a human and the computer.
func (that *GameManager) ToggleOpponent(ctx context.Context) entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.cancelComputerMove()

	that.game = tictactoe.ToggleOpponent(that.game)
	that.commit(ctx, that.logger.With("method", "ToggleOpponent", "withComputer", that.game.WithComputer), tictactoe.Result{})

	that.scheduleComputerMove()

	return that.game
}

func (that *GameManager) Rename(ctx context.Context, player1, player2 string) entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.game = tictactoe.Rename(that.game, player1, player2)
	that.commit(ctx, that.logger.With("method", "Rename"), tictactoe.Result{})

	return that.game
}

// Subscribe - returns a channel that receives the current game and then every change.
// A slow reader only sees the latest state.
func (that *GameManager) Subscribe() (<-chan entity.Game, func()) {
	that.mu.Lock()
	defer that.mu.Unlock()

	updates := make(chan entity.Game, 1)
	if that.closed {
		close(updates)
		return updates, func() {}
	}

	id := that.subscriberID
	that.subscriberID++

	that.subscribers[id] = updates
	updates <- that.game

	return updates, func() {
		that.mu.Lock()
		defer that.mu.Unlock()

		if ch, ok := that.subscribers[id]; ok {
			delete(that.subscribers, id)
			close(ch)
		}
	}
}

// Close - stops a pending computer move and ends all subscriptions.
func (that *GameManager) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.closed = true
	that.cancelComputerMove()

	for id, ch := range that.subscribers {
		delete(that.subscribers, id)
		close(ch)
	}
}

// commit - write-through: saves the full snapshot, then publishes the new state. A failed save is logged only.
func (that *GameManager) commit(ctx context.Context, log *slog.Logger, result tictactoe.Result) {
	if err := that.snapshotRepo.Save(ctx, that.game.Snapshot()); err != nil {
		log.Error("failed to save snapshot", "error", err)
	}

	if result.IsTerminal() {
		log.Info("match finished",
			"outcome", result.Outcome.String(),
			"winner", result.Winner,
			"player1Wins", that.game.Player1Wins,
			"player2Wins", that.game.Player2Wins,
		)
	}

	if that.game.Announcement != "" && result.Outcome == tictactoe.OutcomeWin {
		log.Info("series finished", "announcement", that.game.Announcement)
	}

	that.publish()
}

func (that *GameManager) publish() {
	for _, ch := range that.subscribers {
		select {
		case ch <- that.game:
		default:
			// drop the stale state the reader has not picked up yet
			select {
			case <-ch:
			default:
			}
			ch <- that.game
		}
	}
}

func (that *GameManager) scheduleComputerMove() {
	that.cancelComputerMove()

	if that.closed || !that.game.IsComputerTurn() {
		return
	}

	gen := that.computerGen
	that.computerMove = time.AfterFunc(that.computerDelay, func() {
		that.playComputerMove(gen)
	})
}

func (that *GameManager) cancelComputerMove() {
	that.computerGen++

	if that.computerMove != nil {
		that.computerMove.Stop()
		that.computerMove = nil
	}
}

func (that *GameManager) playComputerMove(gen uint64) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if gen != that.computerGen || that.closed {
		return
	}
	that.computerMove = nil

	log := that.logger.With("method", "playComputerMove")

	if !that.game.IsComputerTurn() {
		return
	}

	cell, err := that.botService.ChooseMove(that.game.Board)
	if err != nil {
		log.Warn("computer could not move", "error", err)
		return
	}

	game, result, err := tictactoe.ApplyMove(that.game, cell, entity.PlayerO)
	if err != nil {
		log.Warn("computer move rejected", "cell", cell, "error", err)
		return
	}

	that.game = game

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	that.commit(ctx, log.With("cell", cell), result)
}
