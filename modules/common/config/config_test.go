package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("PORT", "")
	t.Setenv("STATIC_DIR", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("GeminiAPIKey = %q", cfg.GeminiAPIKey)
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("GeminiModel default = %q", cfg.GeminiModel)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port default = %q", cfg.Port)
	}
	if cfg.StaticDir != "web" {
		t.Errorf("StaticDir default = %q", cfg.StaticDir)
	}
}

func TestLoadConfigMissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	// 키가 없어도 부팅은 성공해야 함 - 생성 요청 시 설정 에러 처리
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig should not fail without API key: %v", err)
	}
	if cfg.GeminiAPIKey != "" {
		t.Errorf("GeminiAPIKey = %q, want empty", cfg.GeminiAPIKey)
	}

	if GetConfig() != cfg {
		t.Error("GetConfig should return the loaded config")
	}
}
