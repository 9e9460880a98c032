package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config 구조체 - 모든 환경변수를 담음
type Config struct {
	// Gemini API
	GeminiAPIKey string
	GeminiModel  string

	// Server
	Port      string
	StaticDir string
}

var globalConfig *Config

// LoadConfig - 환경변수 로드
func LoadConfig() (*Config, error) {
	// .env 파일 로드 (있으면)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables")
	}

	globalConfig = &Config{
		// Gemini API
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		// Server
		Port:      getEnv("PORT", "8080"),
		StaticDir: getEnv("STATIC_DIR", "web"),
	}

	// API 키는 부팅 필수 아님 - 생성 요청 시 설정 에러로 처리
	if globalConfig.GeminiAPIKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set, generation will fail until configured")
	}

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   Gemini: %s", globalConfig.GeminiModel)
	log.Printf("   Port: %s", globalConfig.Port)

	return globalConfig, nil
}

// GetConfig - 로드된 설정 가져오기
func GetConfig() *Config {
	if globalConfig == nil {
		log.Fatal("❌ Config not loaded. Call LoadConfig() first.")
	}
	return globalConfig
}

// getEnv - 환경변수 가져오기 (기본값 지원)
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
