package controllers

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"crit-server/models"
	service "crit-server/services"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// LiveCritController handles the Live Crit websocket: each connection joins
// the relay room of its board and can register a critic presence. The relay
// pushes comment.insert and critics.update events to the whole room; the
// authoritative state stays behind the REST list endpoints, which clients
// re-poll on a fixed interval.
type LiveCritController struct {
	criticService *service.CriticService
	relay         *service.RelayService
	critics       map[*websocket.Conn]liveConnInfo
	mu            sync.Mutex
}

type liveConnInfo struct {
	boardID  string
	criticID string
}

func NewLiveCritController(criticService *service.CriticService, relay *service.RelayService) *LiveCritController {
	return &LiveCritController{
		criticService: criticService,
		relay:         relay,
		critics:       make(map[*websocket.Conn]liveConnInfo),
	}
}

func (lc *LiveCritController) HandleLiveSocket(c *websocket.Conn) {
	boardID := c.Params("boardId")
	if boardID == "" {
		c.Close()
		return
	}
	log.Println("Live crit client connected, board:", boardID)

	lc.relay.Subscribe(boardID, c)

	defer func() {
		lc.mu.Lock()
		info, registered := lc.critics[c]
		delete(lc.critics, c)
		lc.mu.Unlock()

		lc.relay.RemoveClient(c)

		if registered {
			if err := lc.criticService.RemoveCritic(context.Background(), info.boardID, info.criticID); err != nil {
				log.Println("Failed to remove critic on disconnect:", err)
			}
			lc.broadcastCritics(info.boardID)
		}

		c.Close()
	}()

	for {
		_, msg, err := c.ReadMessage()
		if err != nil {
			log.Println("Read error:", err)
			break
		}

		var payload map[string]string
		if err := json.Unmarshal(msg, &payload); err != nil {
			log.Println("Unmarshal error:", err)
			continue
		}

		switch payload["action"] {
		case "addCritic":
			lc.handleAddCritic(c, boardID, payload)
		case "removeCritic":
			lc.handleRemoveCritic(boardID, payload)
		case "getCritics":
			lc.handleGetCritics(c, boardID)
		default:
			log.Println("Unknown action:", payload["action"])
		}
	}
}

func (lc *LiveCritController) handleAddCritic(c *websocket.Conn, boardID string, payload map[string]string) {
	critic := models.Critic{
		ID:    payload["id"],
		Name:  payload["name"],
		Color: payload["color"],
	}
	if critic.ID == "" {
		critic.ID = uuid.NewString()
	}

	if err := lc.criticService.AddCritic(context.Background(), boardID, critic); err != nil {
		log.Println("Failed to add critic:", err)
		return
	}

	lc.mu.Lock()
	lc.critics[c] = liveConnInfo{boardID: boardID, criticID: critic.ID}
	lc.mu.Unlock()

	lc.broadcastCritics(boardID)
}

func (lc *LiveCritController) handleRemoveCritic(boardID string, payload map[string]string) {
	if err := lc.criticService.RemoveCritic(context.Background(), boardID, payload["id"]); err != nil {
		log.Println("Failed to remove critic:", err)
		return
	}
	lc.broadcastCritics(boardID)
}

func (lc *LiveCritController) handleGetCritics(c *websocket.Conn, boardID string) {
	critics, err := lc.criticService.GetCritics(context.Background(), boardID)
	if err != nil {
		log.Println("Failed to get critics:", err)
		return
	}

	event := models.LiveEvent{
		Type:    models.EventCriticsUpdate,
		BoardID: boardID,
		Data:    critics,
	}
	if err := lc.relay.SendTo(c, event); err != nil {
		log.Println("Write error:", err)
	}
}

func (lc *LiveCritController) broadcastCritics(boardID string) {
	critics, err := lc.criticService.GetCritics(context.Background(), boardID)
	if err != nil {
		log.Println("Failed to get critics:", err)
		return
	}

	lc.relay.PublishEvent(models.LiveEvent{
		Type:    models.EventCriticsUpdate,
		BoardID: boardID,
		Data:    critics,
	})
}
