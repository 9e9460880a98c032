package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"stocktag-server/modules/common/config"
	"stocktag-server/modules/common/status"
	"stocktag-server/modules/stockmeta"
)

// CORS 헤더 추가
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// 헬스 체크 엔드포인트
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "stocktag-server",
	})
}

func main() {
	// 환경변수 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// 상태 허브 + 핸들러 초기화
	hub := status.NewHub()
	metaHandler := stockmeta.NewHandler(cfg, hub)

	// 라우터 설정
	r := mux.NewRouter()

	// CORS 미들웨어 적용
	r.Use(enableCORS)

	// 라우트 설정
	r.HandleFunc("/health", healthCheck).Methods("GET")
	r.HandleFunc("/ws", hub.HandleWebSocket)
	r.HandleFunc("/api/stockmeta/generate", metaHandler.HandleGenerate).Methods("POST", "OPTIONS")

	// 단일 페이지 정적 서빙
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))

	log.Printf("🚀 StockTag Server starting on port %s", cfg.Port)
	log.Printf("🏷️  Generate endpoint: http://localhost:%s/api/stockmeta/generate", cfg.Port)
	log.Printf("📡 Status WebSocket: ws://localhost:%s/ws", cfg.Port)
	log.Printf("❤️  Health check: http://localhost:%s/health", cfg.Port)

	// 서버 시작
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
