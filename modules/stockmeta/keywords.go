package stockmeta

import (
	"strings"
	"unicode"
)

// 스톡 플랫폼 키워드 상한
const maxKeywords = 45

// NormalizeKeywords - API 원문 텍스트를 키워드 표시 형식으로 정리
// 쉼표 분리 → 공백 트림 → 빈 항목/다단어 항목 제거 → 45개 제한 → ", " 조인
func NormalizeKeywords(raw string) string {
	pieces := strings.Split(raw, ",")
	keywords := make([]string, 0, maxKeywords)

	for _, piece := range pieces {
		word := strings.TrimSpace(piece)
		if word == "" {
			continue
		}
		// 한 단어만 허용 - 내부 공백이 있으면 제외
		if strings.ContainsFunc(word, unicode.IsSpace) {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == maxKeywords {
			break
		}
	}

	return strings.Join(keywords, ", ")
}
