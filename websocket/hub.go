package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// The hub is the change-notification channel: when scheduling state
// changes for an account (instructor or student), every socket that
// account has open receives a refresh event and refetches. Delivery is
// at-least-once at best; a dropped event is corrected by the next
// manual refresh.

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// ChangeEvent tells a subscriber that state under a topic changed.
// Topics are account IDs; payloads carry no data, subscribers re-query.
type ChangeEvent struct {
	Type  string `json:"type"`
	Topic string `json:"topic"`
}

var clients = make(map[uuid.UUID][]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Notify = make(chan ChangeEvent, 64)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = append(clients[client.UserID], client.Conn)
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			dropClient(client.UserID, client.Conn)
		case event := <-Notify:
			topicID, err := uuid.Parse(event.Topic)
			if err != nil {
				log.Printf("Ignoring change event with bad topic %q: %v", event.Topic, err)
				continue
			}

			clientsMu.RLock()
			conns := append([]*websocket.Conn(nil), clients[topicID]...)
			clientsMu.RUnlock()

			for _, conn := range conns {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error pushing refresh to client %s: %v", topicID, err)
					conn.Close()
					dropClient(topicID, conn)
				}
			}
		}
	}
}

func dropClient(userID uuid.UUID, conn *websocket.Conn) {
	clientsMu.Lock()
	defer clientsMu.Unlock()
	conns := clients[userID]
	for i, c := range conns {
		if c == conn {
			clients[userID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(clients[userID]) == 0 {
		delete(clients, userID)
	}
}

// HubNotifier adapts the hub to the scheduling facade's Notifier
// contract. Emit never blocks the mutation path: if the hub is backed
// up the event is dropped, which subscribers tolerate.
type HubNotifier struct{}

func (HubNotifier) Emit(topic string) {
	select {
	case Notify <- ChangeEvent{Type: "refresh", Topic: topic}:
	default:
		log.Printf("Change notification dropped for topic %s", topic)
	}
}
