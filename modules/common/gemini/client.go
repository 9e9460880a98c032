package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// InlineImage - 인라인 이미지 데이터 (base64, 선언된 MIME 타입)
type InlineImage struct {
	MimeType string
	Data     string
}

// Content - 요청/응답 공용 컨텐츠 구조체
type Content struct {
	Parts []Part `json:"parts"`
}

// Part - 텍스트 또는 인라인 이미지 파트
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData - base64 이미지 페이로드
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generateContentRequest struct {
	Contents []Content `json:"contents"`
}

type candidate struct {
	Content *Content `json:"content"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
	Error      *apiError   `json:"error"`
}

// Client - Gemini generateContent REST 클라이언트
// API 키는 쿼리 파라미터로 전달됨
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient - 클라이언트 생성 (키/모델은 설정에서 주입)
func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}
}

// GenerateContent - 프롬프트 + 이미지로 텍스트 생성
// 첫 번째 candidate의 첫 번째 part 텍스트를 반환
func (c *Client) GenerateContent(ctx context.Context, prompt string, image *InlineImage) (string, error) {
	parts := []Part{
		{Text: prompt},
	}
	if image != nil {
		parts = append(parts, Part{
			InlineData: &InlineData{
				MimeType: image.MimeType,
				Data:     image.Data,
			},
		})
	}

	reqBody := generateContentRequest{
		Contents: []Content{
			{Parts: parts},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var result generateContentResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err)
	}

	// API 에러 객체 우선 처리
	if result.Error != nil {
		log.Printf("❌ [Gemini] API error: %s (status: %s)", result.Error.Message, result.Error.Status)
		return "", fmt.Errorf("gemini API error: %s", result.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API returned status %d", resp.StatusCode)
	}

	// 응답에서 텍스트 추출
	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}

	return "", fmt.Errorf("no text candidates in gemini response")
}
