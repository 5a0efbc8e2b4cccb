package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-series/internal/entity"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	repliesSize    = 8
)

type gameManager interface {
	State() entity.Game
	Play(ctx context.Context, cell int) (entity.Game, error)
	PressReset(ctx context.Context) entity.Game
	ToggleOpponent(ctx context.Context) entity.Game
	Rename(ctx context.Context, player1, player2 string) entity.Game
	Subscribe() (<-chan entity.Game, func())
}

// Server - pushes the game view to every connected page and accepts the page's actions.
type Server struct {
	logger      *slog.Logger
	gameManager gameManager
	upgrader    websocket.Upgrader

	handlers map[string]func(ctx context.Context, message *Message, client *client) error
}

func New(logger *slog.Logger, gameManager gameManager) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameManager: gameManager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},

		handlers: make(map[string]func(context.Context, *Message, *client) error),
	}

	server.handlers[actionState] = server.handleState
	server.handlers[actionTurn] = server.handleTurn
	server.handlers[actionReset] = server.handleReset
	server.handlers[actionOpponent] = server.handleOpponent
	server.handlers[actionNames] = server.handleNames

	return server
}

// ServeHTTP - upgrades the connection and serves it until either side closes.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied with an HTTP error
		log.Warn("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	updates, unsubscribe := that.gameManager.Subscribe()
	defer unsubscribe()

	client := newClient(conn)
	go that.writeLoop(client, updates)

	that.readLoop(r.Context(), client)
	close(client.done)

	log.Info("WebSocket connection closed", "remote", conn.RemoteAddr().String())
}

// readLoop - dispatches incoming actions until the connection fails.
func (that *Server) readLoop(ctx context.Context, client *client) {
	log := that.logger.With("method", "readLoop")

	client.conn.SetReadLimit(maxMessageSize)
	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			client.send(newErrorMessage("", "malformed message"))
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			client.send(newErrorMessage(message.Action, "unknown action"))
			continue
		}

		if err = handler(ctx, &message, client); err != nil {
			log.Warn("error processing message", "action", message.Action, "error", err)
			client.send(newErrorMessage(message.Action, err.Error()))
		}
	}
}

// writeLoop - the only writer of the connection: state pushes, replies and pings.
func (that *Server) writeLoop(client *client, updates <-chan entity.Game) {
	log := that.logger.With("method", "writeLoop")

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	// a failed write must also stop the reader
	defer client.conn.Close()

	for {
		select {
		case game, ok := <-updates:
			if !ok {
				_ = client.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(writeWait))
				return
			}

			if err := client.writeState(game); err != nil {
				log.Warn("failed to push game", "error", err)
				return
			}
		case message := <-client.replies:
			if err := client.write(message); err != nil {
				log.Warn("failed to write reply", "error", err)
				return
			}
		case <-ticker.C:
			if err := client.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-client.done:
			return
		}
	}
}
