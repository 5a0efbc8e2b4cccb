package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-series/internal/config"
	"github.com/rocketscienceinc/tictactoe-series/internal/repository"
	"github.com/rocketscienceinc/tictactoe-series/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-series/internal/service"
	"github.com/rocketscienceinc/tictactoe-series/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-series/transport/rest"
	"github.com/rocketscienceinc/tictactoe-series/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	kvStorage, err := storage.New(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not open %s storage: %w", conf.Storage.Driver, err)
	}

	defer func() {
		if err = kvStorage.Close(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	log.Info("Storage opened", "driver", conf.Storage.Driver, "key", conf.Storage.Key)

	snapshotRepo := repository.NewSnapshotRepository(kvStorage, conf.Storage.Key)
	botService := service.NewBotService(nil)

	gameManager := usecase.NewGameManager(logger, snapshotRepo, botService, conf.ComputerDelay)
	defer gameManager.Close()

	gameManager.Restore(ctx)

	handlers := rest.NewHandlers(logger, gameManager)
	socket := websocket.New(logger, gameManager)

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err = rest.Start(ctx, conf.HTTPPort, rest.NewRouter(handlers, socket)); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
