package status

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// 개발용 - 모든 origin 허용
		return true
	},
}

// Event - 생성 상태 이벤트 (페이지의 상태 표시용)
type Event struct {
	Type      string `json:"type"` // generation_started, generation_completed, generation_failed
	RequestID string `json:"requestId"`
	Message   string `json:"message,omitempty"`
}

// 연결된 클라이언트 정보
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub - 접속한 페이지들에게 상태 이벤트 브로드캐스트
type Hub struct {
	clients map[*client]bool
	mutex   sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]bool),
	}
}

// HandleWebSocket - GET /ws
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, 16),
	}

	h.mutex.Lock()
	h.clients[c] = true
	clientCount := len(h.clients)
	h.mutex.Unlock()

	log.Printf("👤 Status client connected (Clients: %d)", clientCount)

	go c.writePump()
	go h.readPump(c)
}

// Broadcast - 모든 클라이언트에게 이벤트 전송
func (h *Hub) Broadcast(event Event) {
	messageBytes, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling event: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for c := range h.clients {
		select {
		case c.send <- messageBytes:
		default:
			close(c.send)
			delete(h.clients, c)
		}
	}
}

// ClientCount - 현재 연결된 클라이언트 수
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// removeClient - 클라이언트 제거
func (h *Hub) removeClient(c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, exists := h.clients[c]; exists {
		close(c.send)
		delete(h.clients, c)
		log.Printf("👋 Status client disconnected (Remaining: %d)", len(h.clients))
	}
}

// readPump - 클라이언트 메시지는 무시, 연결 종료 감지용
func (h *Hub) readPump(c *client) {
	defer func() {
		h.removeClient(c)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump - 클라이언트로 메시지 쓰기
func (c *client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
