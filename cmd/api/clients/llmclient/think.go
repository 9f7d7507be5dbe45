package llmclient

import (
	"regexp"
	"strings"
)

// 일부 모델(R1, Qwen 계열)은 내부 추론을 <think>...</think> 로 감싸서 내보낸다.
// 표시 전에 제거한다.
var (
	thinkSpanRe = regexp.MustCompile(`(?s)<think>.*?</think>`)
	// 닫히지 않은 채 잘린 응답도 처리한다.
	thinkOpenRe = regexp.MustCompile(`(?s)<think>.*$`)
)

// StripThinking removes <think>...</think> spans (closed or trailing
// unclosed) and trims surrounding whitespace.
func StripThinking(s string) string {
	s = thinkSpanRe.ReplaceAllString(s, "")
	s = thinkOpenRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
