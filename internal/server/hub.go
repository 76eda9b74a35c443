package server

import (
	"encoding/json"
	"sync"

	"gobang/internal/game"
)

type Hub struct {
	mu               sync.Mutex
	clients          map[*Client]struct{}
	BroadcastHistory chan historyPayload
	BroadcastStatus  chan StatusResponse
	BroadcastUndo    chan undoPayload
	BroadcastReset   chan resetPayload
}

type Client struct {
	hub  *Hub
	send chan []byte
}

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func NewHub() *Hub {
	return &Hub{
		clients:          make(map[*Client]struct{}),
		BroadcastHistory: make(chan historyPayload, 32),
		BroadcastStatus:  make(chan StatusResponse, 32),
		BroadcastUndo:    make(chan undoPayload, 8),
		BroadcastReset:   make(chan resetPayload, 8),
	}
}

func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case payload := <-h.BroadcastHistory:
			h.broadcast(wsMessage{Type: "history", Payload: mustMarshal(payload)})
		case payload := <-h.BroadcastStatus:
			h.broadcast(wsMessage{Type: "status", Payload: mustMarshal(payload)})
		case payload := <-h.BroadcastUndo:
			h.broadcast(wsMessage{Type: "undo", Payload: mustMarshal(payload)})
		case payload := <-h.BroadcastReset:
			h.broadcast(wsMessage{Type: "reset", Payload: mustMarshal(payload)})
		}
	}
}

// NotifyHistory queues a single new history entry for connected clients.
func (h *Hub) NotifyHistory(entry game.HistoryEntry) {
	h.BroadcastHistory <- historyPayload{History: []historyEntryDTO{HistoryEntryToDTO(entry)}}
}

func (h *Hub) NotifyStatus(controller *GameController) {
	h.BroadcastStatus <- ControllerStatus(controller)
}

func (h *Hub) NotifyUndo(undone int, controller *GameController) {
	h.BroadcastUndo <- undoPayload{Undone: undone, History: historyToDTO(controller.History())}
}

func (h *Hub) NotifyReset(controller *GameController) {
	h.BroadcastReset <- ResetFromController(controller)
}

func (h *Hub) broadcast(msg wsMessage) {
	h.mu.Lock()
	for client := range h.clients {
		client.sendJSON(msg)
	}
	h.mu.Unlock()
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

func (h *Hub) HasClients() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients) > 0
}

func (c *Client) sendJSON(msg wsMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}
