package websocket

import (
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-series/internal/entity"
	"github.com/rocketscienceinc/tictactoe-series/transport/view"
)

type client struct {
	conn    *websocket.Conn
	replies chan Message
	done    chan struct{}
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn:    conn,
		replies: make(chan Message, repliesSize),
		done:    make(chan struct{}),
	}
}

// send - queues a reply for the writer. Replies beyond the buffer are dropped.
func (that *client) send(message Message) {
	select {
	case that.replies <- message:
	default:
	}
}

func (that *client) sendState(game entity.Game) error {
	message, err := newStateMessage(view.New(game))
	if err != nil {
		return err
	}

	that.send(message)

	return nil
}

func (that *client) writeState(game entity.Game) error {
	message, err := newStateMessage(view.New(game))
	if err != nil {
		return err
	}

	return that.write(message)
}

func (that *client) write(message Message) error {
	if err := that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := that.conn.WriteJSON(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
