package service

import (
	"encoding/json"
	"log"
	"sync"

	"crit-server/models"

	"github.com/gofiber/websocket/v2"
)

// RelayConn is the subset of *websocket.Conn the relay needs.
type RelayConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// RelayService fans events out to the websocket subscribers of a board room.
// Delivery is best-effort: a failed write evicts that subscriber. Clients
// reconcile through the list endpoints on their own poll, so the relay never
// has to replay or order events.
type RelayService struct {
	rooms map[string]map[RelayConn]bool
	mu    sync.Mutex
}

func NewRelayService() *RelayService {
	return &RelayService{
		rooms: make(map[string]map[RelayConn]bool),
	}
}

func (s *RelayService) Subscribe(boardID string, conn RelayConn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rooms[boardID]; !exists {
		s.rooms[boardID] = make(map[RelayConn]bool)
	}
	s.rooms[boardID][conn] = true
	log.Printf("Client subscribed to board room: %s\n", boardID)
}

// Publish sends message to every subscriber of the board room, the sender
// included.
func (s *RelayService) Publish(boardID string, message []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if clients, exists := s.rooms[boardID]; exists {
		for client := range clients {
			if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Println("Error sending message:", err)
				client.Close()
				delete(clients, client)
			}
		}
	}
}

// SendTo writes one event to a single connection. It takes the same mutex as
// Publish so a connection never has two concurrent writers.
func (s *RelayService) SendTo(conn RelayConn, event models.LiveEvent) error {
	message, err := json.Marshal(event)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return conn.WriteMessage(websocket.TextMessage, message)
}

func (s *RelayService) PublishEvent(event models.LiveEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		log.Println("Error marshaling live event:", err)
		return
	}
	s.Publish(event.BoardID, message)
}

func (s *RelayService) RemoveClient(conn RelayConn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for boardID, clients := range s.rooms {
		if _, exists := clients[conn]; exists {
			delete(clients, conn)
			log.Printf("Client removed from board room: %s\n", boardID)

			if len(clients) == 0 {
				delete(s.rooms, boardID)
			}
		}
	}
}

// SubscriberCount reports the current size of a board room.
func (s *RelayService) SubscriberCount(boardID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms[boardID])
}
