package stockmeta

// GenerateRequest - 메타데이터 생성 요청
// Image는 업로드된 이미지의 data URL (또는 순수 base64)
type GenerateRequest struct {
	Image string `json:"image"`
}

// GenerateResponse - 메타데이터 생성 응답
type GenerateResponse struct {
	Success      bool   `json:"success"`
	RequestID    string `json:"request_id,omitempty"`
	Title        string `json:"title"`
	Keywords     string `json:"keywords"`
	ErrorMessage string `json:"error_message,omitempty"`
}
