package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-series/internal/config"
)

var (
	ErrKeyNotFound     = errors.New("key not found")
	ErrUnknownDriver   = errors.New("unknown storage driver")
	ErrAddrNotFound    = errors.New("redis address string is empty")
	ErrPathNotProvided = errors.New("sqlite storage path is empty")
)

// KeyValue - a string store with last-writer-wins semantics.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// New - opens the store selected by conf.Storage.Driver.
func New(ctx context.Context, conf *config.Config) (KeyValue, error) {
	switch conf.Storage.Driver {
	case config.StorageMemory, "":
		return NewMemoryStorage(), nil
	case config.StorageRedis:
		addr := conf.Redis.GetRedisAddr()
		if addr == "" {
			return nil, ErrAddrNotFound
		}

		return NewRedisStorage(ctx, addr)
	case config.StorageSQLite:
		if conf.SQLiteStoragePath == "" {
			return nil, ErrPathNotProvided
		}

		return NewSQLiteStorage(ctx, conf.SQLiteStoragePath)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, conf.Storage.Driver)
	}
}
