package ws

import (
	"context"
	"encoding/json"

	websocketdto "bookmycar/internal/booking-service/core/domain/websocket_dto"

	"github.com/gorilla/websocket"
)

type Client struct {
	ctx    context.Context
	conn   *websocket.Conn
	dis    *Dispatcher
	egress chan websocketdto.Event
	userId string
}

func NewClient(ctx context.Context, conn *websocket.Conn, dis *Dispatcher, userId string) *Client {
	return &Client{
		ctx:    ctx,
		conn:   conn,
		dis:    dis,
		egress: make(chan websocketdto.Event, 16),
		userId: userId,
	}
}

// ReadMessage drains the connection until it closes. Incoming frames are
// ignored except as liveness signals; the stream is push-only.
func (c *Client) ReadMessage() {
	defer c.dis.RemoveClient(c)

	c.conn.SetReadLimit(1024)

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.dis.log.Warn("websocket closed unexpectedly", "user_id", c.userId)
			}
			break
		}

		var req websocketdto.Event
		if err := json.Unmarshal(payload, &req); err != nil {
			c.dis.log.Warn("unreadable websocket frame dropped", "user_id", c.userId)
		}
	}
}

func (c *Client) WriteMessage() {
	for {
		select {
		case <-c.ctx.Done():
			c.conn.Close()
			return
		case event, ok := <-c.egress:
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}

			data, err := json.Marshal(event)
			if err != nil {
				c.dis.log.Error("failed to marshal websocket event", err, "user_id", c.userId)
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				c.dis.log.Warn("failed to write websocket message", "user_id", c.userId)
				return
			}
		}
	}
}
