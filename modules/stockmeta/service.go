package stockmeta

import (
	"context"
	"fmt"
	"log"
	"strings"

	"stocktag-server/modules/common/config"
	"stocktag-server/modules/common/gemini"
)

const (
	titleFallback   = "Could not generate title."
	keywordFallback = "Could not generate keywords."

	// 업로드 파일 타입과 무관하게 항상 image/jpeg로 선언
	fixedMimeType = "image/jpeg"
)

// textGenerator - 테스트에서 가짜 클라이언트 주입용
type textGenerator interface {
	GenerateContent(ctx context.Context, prompt string, image *gemini.InlineImage) (string, error)
}

type Service struct {
	cfg    *config.Config
	client textGenerator
}

// NewService - 설정 주입으로 서비스 생성
func NewService(cfg *config.Config) *Service {
	return &Service{
		cfg:    cfg,
		client: gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel),
	}
}

// Generate - 이미지로부터 타이틀 + 키워드 생성
// 두 호출은 독립적 - 한쪽 실패가 다른 쪽을 막지 않음
func (s *Service) Generate(ctx context.Context, req *GenerateRequest) *GenerateResponse {
	// 이미지 검증 - 없으면 네트워크 호출 없이 즉시 실패
	data := stripDataURLPrefix(req.Image)
	if strings.TrimSpace(data) == "" {
		return &GenerateResponse{
			Success:      false,
			ErrorMessage: "No image uploaded. Please select an image first.",
		}
	}

	// API 키 검증 - 없으면 두 필드 모두 즉시 폴백
	if s.cfg.GeminiAPIKey == "" {
		return &GenerateResponse{
			Success:      false,
			Title:        titleFallback,
			Keywords:     keywordFallback,
			ErrorMessage: "GEMINI_API_KEY is not configured",
		}
	}

	image := &gemini.InlineImage{
		MimeType: fixedMimeType,
		Data:     data,
	}

	var failures []string

	// 타이틀 생성
	title := titleFallback
	if text, err := s.client.GenerateContent(ctx, titlePrompt, image); err != nil {
		log.Printf("❌ [StockMeta] Title generation failed: %v", err)
		failures = append(failures, fmt.Sprintf("title: %v", err))
	} else {
		title = strings.TrimSpace(text)
	}

	// 키워드 생성 - 타이틀 결과와 무관하게 항상 시도
	keywords := keywordFallback
	if text, err := s.client.GenerateContent(ctx, keywordPrompt, image); err != nil {
		log.Printf("❌ [StockMeta] Keyword generation failed: %v", err)
		failures = append(failures, fmt.Sprintf("keywords: %v", err))
	} else {
		keywords = NormalizeKeywords(text)
	}

	resp := &GenerateResponse{
		Success:  len(failures) == 0,
		Title:    title,
		Keywords: keywords,
	}
	if len(failures) > 0 {
		resp.ErrorMessage = strings.Join(failures, "; ")
	}

	return resp
}

// stripDataURLPrefix - data URL의 선언부 제거, base64 데이터만 남김
// "data:image/png;base64,AAAA" → "AAAA"
func stripDataURLPrefix(s string) string {
	if strings.HasPrefix(s, "data:") {
		if idx := strings.Index(s, ","); idx >= 0 {
			return s[idx+1:]
		}
	}
	return s
}
