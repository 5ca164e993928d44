package ws

import (
	"context"
	"net/http"
	"sync"

	"bookmycar/internal/mylogger"

	websocketdto "bookmycar/internal/booking-service/core/domain/websocket_dto"

	"github.com/gorilla/websocket"
)

// websocketUpgrader is used to upgrade incoming HTTP requests into a
// persistent websocket connection.
var websocketUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// ClientList is a map used to help manage a map of clients
type ClientList map[*Client]bool

type Dispatcher struct {
	clients ClientList
	sync.RWMutex
	log mylogger.Logger
}

func NewDispatcher(log mylogger.Logger) *Dispatcher {
	return &Dispatcher{
		clients: make(ClientList),
		log:     log,
	}
}

// WsHandler upgrades the request and registers the client under the
// authenticated user id.
func (d *Dispatcher) WsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := d.log.Action("wsHandler")

		userId := r.Header.Get("X-UserId")
		if userId == "" {
			userId = r.PathValue("user_id")
		}
		if userId == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		conn, err := websocketUpgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("cannot upgrade", err)
			return
		}

		// The request context ends with this handler; the hijacked
		// connection outlives it.
		client := NewClient(context.Background(), conn, d, userId)
		d.AddClient(client)
		go client.ReadMessage()
		go client.WriteMessage()

		log.Info("websocket client connected", "user_id", userId)
	}
}

// Notify pushes an event to every open connection of the given user. Slow
// consumers get the event dropped rather than blocking the caller.
func (d *Dispatcher) Notify(userID string, event websocketdto.Event) {
	d.RLock()
	defer d.RUnlock()

	for client := range d.clients {
		if client.userId != userID {
			continue
		}
		select {
		case client.egress <- event:
		default:
			d.log.Warn("websocket egress full, event dropped", "user_id", userID, "type", event.Type)
		}
	}
}

func (d *Dispatcher) AddClient(client *Client) {
	d.Lock()
	defer d.Unlock()

	d.clients[client] = true
}

func (d *Dispatcher) RemoveClient(client *Client) {
	d.Lock()
	defer d.Unlock()

	if _, ok := d.clients[client]; ok {
		client.conn.Close()
		delete(d.clients, client)
	}
}
