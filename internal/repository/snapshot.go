package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-series/internal/entity"
	"github.com/rocketscienceinc/tictactoe-series/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-series/internal/tictactoe"
)

var (
	ErrSnapshotNotFound  = errors.New("snapshot not found")
	ErrMalformedSnapshot = errors.New("malformed snapshot")
	ErrActiveFinished    = errors.New("match marked active on a finished board")
)

type SnapshotRepository interface {
	Save(ctx context.Context, snapshot *entity.Snapshot) error
	Load(ctx context.Context) (*entity.Snapshot, error)
}

// dbSnapshot - stored layout, the one the browser page used plus gameActive.
// gameActive is optional so blobs written before it existed still load.
type dbSnapshot struct {
	BoardState         []entity.Mark `json:"boardState"`
	CurrentPlayer      entity.Mark   `json:"currentPlayer"`
	GameActive         *bool         `json:"gameActive,omitempty"`
	Player1Wins        int           `json:"player1Wins"`
	Player2Wins        int           `json:"player2Wins"`
	IsComputerOpponent bool          `json:"isComputerOpponent"`
	Player1Name        string        `json:"player1Name"`
	Player2Name        string        `json:"player2Name"`
}

func toDBSnapshot(snapshot *entity.Snapshot) *dbSnapshot {
	active := snapshot.Active

	return &dbSnapshot{
		BoardState:         snapshot.Board[:],
		CurrentPlayer:      snapshot.CurrentPlayer,
		GameActive:         &active,
		Player1Wins:        snapshot.Player1Wins,
		Player2Wins:        snapshot.Player2Wins,
		IsComputerOpponent: snapshot.WithComputer,
		Player1Name:        snapshot.Player1Name,
		Player2Name:        snapshot.Player2Name,
	}
}

func (that *dbSnapshot) toEntity() (*entity.Snapshot, error) {
	snapshot := &entity.Snapshot{
		CurrentPlayer: that.CurrentPlayer,
		Player1Wins:   that.Player1Wins,
		Player2Wins:   that.Player2Wins,
		WithComputer:  that.IsComputerOpponent,
		Player1Name:   that.Player1Name,
		Player2Name:   that.Player2Name,
	}

	if len(that.BoardState) != len(snapshot.Board) {
		return nil, fmt.Errorf("%w: %d cells", entity.ErrInvalidBoard, len(that.BoardState))
	}
	copy(snapshot.Board[:], that.BoardState)

	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	finished := tictactoe.Evaluate(snapshot.Board).IsTerminal()

	switch {
	case that.GameActive == nil:
		snapshot.Active = !finished && !snapshot.Series().SeriesOver()
	case *that.GameActive && finished:
		return nil, ErrActiveFinished
	default:
		snapshot.Active = *that.GameActive
	}

	return snapshot, nil
}

type kvSnapshot struct {
	store storage.KeyValue
	key   string
}

func NewSnapshotRepository(store storage.KeyValue, key string) SnapshotRepository {
	return &kvSnapshot{
		store: store,
		key:   key,
	}
}

func (that *kvSnapshot) Save(ctx context.Context, snapshot *entity.Snapshot) error {
	snapshotJSON, err := json.Marshal(toDBSnapshot(snapshot))
	if err != nil {
		return fmt.Errorf("could not marshal snapshot: %w", err)
	}

	if err = that.store.Set(ctx, that.key, string(snapshotJSON)); err != nil {
		return fmt.Errorf("failed to set snapshot: %w", err)
	}

	return nil
}

func (that *kvSnapshot) Load(ctx context.Context) (*entity.Snapshot, error) {
	response, err := that.store.Get(ctx, that.key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, ErrSnapshotNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var stored dbSnapshot
	if err = json.Unmarshal([]byte(response), &stored); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}

	snapshot, err := stored.toEntity()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}

	return snapshot, nil
}
