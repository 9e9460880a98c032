package stockmeta

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"stocktag-server/modules/common/config"
	"stocktag-server/modules/common/status"
)

type Handler struct {
	service *Service
	hub     *status.Hub
}

func NewHandler(cfg *config.Config, hub *status.Hub) *Handler {
	return &Handler{
		service: NewService(cfg),
		hub:     hub,
	}
}

// HandleGenerate - POST /api/stockmeta/generate
// 업로드된 이미지로 스톡용 타이틀 + 키워드 생성
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	// OPTIONS 요청 처리
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	// POST만 허용
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Request 파싱
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [StockMeta] Invalid request: %v", err)
		json.NewEncoder(w).Encode(GenerateResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
		})
		return
	}

	requestID := uuid.New().String()

	log.Printf("🏷️  [StockMeta] Processing request %s: image=%d bytes", requestID, len(req.Image))
	h.notify(status.Event{Type: "generation_started", RequestID: requestID})

	response := h.service.Generate(r.Context(), &req)
	response.RequestID = requestID

	if response.Success {
		h.notify(status.Event{Type: "generation_completed", RequestID: requestID})
	} else {
		h.notify(status.Event{
			Type:      "generation_failed",
			RequestID: requestID,
			Message:   response.ErrorMessage,
		})
	}

	log.Printf("✅ [StockMeta] Response sent for %s: success=%v", requestID, response.Success)

	json.NewEncoder(w).Encode(response)
}

// notify - 상태 허브가 연결돼 있으면 이벤트 전송
func (h *Handler) notify(event status.Event) {
	if h.hub != nil {
		h.hub.Broadcast(event)
	}
}
