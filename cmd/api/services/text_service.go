package services

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"unicode"

	"chat-relay/cmd/api/clients/llmclient"
	"chat-relay/cmd/internal/logger"
	"chat-relay/models"
)

const improvePrompt = `You are a writing assistant. Improve the following text: fix grammar and spelling, tighten wording, keep the original meaning and tone. Respond with ONLY the improved text, no commentary.`

const keywordPrompt = `Extract 2-4 search keywords from the user's question. Respond with ONLY a JSON array of strings, e.g. ["keyword one", "keyword two"]. No markdown, no commentary.`

// maxKeywords caps how many keywords a single question contributes.
const maxKeywords = 3

// TextService covers the improve-text and extract-keywords operations.
type TextService struct {
	llm *llmclient.Client
}

func NewTextService(llm *llmclient.Client) *TextService {
	return &TextService{llm: llm}
}

// ImproveText runs the text through the model with the improvement prompt and
// strips thinking spans from the result.
func (s *TextService) ImproveText(ctx context.Context, text, modelName string, settings models.APISettings) (string, error) {
	messages := []llmclient.ChatMessage{
		{Role: "system", Content: improvePrompt},
		{Role: "user", Content: text},
	}
	raw, err := s.llm.ChatCompletion(ctx, modelName, messages, settings)
	if err != nil {
		return "", err
	}
	return llmclient.StripThinking(raw), nil
}

// ExtractKeywords resolves the keywords used for Wikipedia augmentation.
// Hashtags in the question win over model extraction (user intent), order
// preserved, capped at three. Without hashtags a secondary model call asks
// for a JSON keyword array; any failure degrades to significant words from
// the question itself. This never returns an empty slice for non-empty input.
func (s *TextService) ExtractKeywords(ctx context.Context, text, modelName string, settings models.APISettings) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	if tags := ParseHashtags(text); len(tags) > 0 {
		return capKeywords(tags)
	}

	messages := []llmclient.ChatMessage{
		{Role: "system", Content: keywordPrompt},
		{Role: "user", Content: text},
	}
	raw, err := s.llm.ChatCompletion(ctx, modelName, messages, settings)
	if err != nil {
		logger.WarnWithFields("keyword extraction call failed, using fallback", logger.Fields{
			"error": err.Error(),
		})
		return capKeywords(fallbackKeywords(text))
	}

	keywords := parseKeywordList(llmclient.StripThinking(raw))
	if len(keywords) == 0 {
		keywords = fallbackKeywords(text)
	}
	return capKeywords(keywords)
}

var hashtagRe = regexp.MustCompile(`#[\p{L}\p{N}][\p{L}\p{N}_-]*`)

// ParseHashtags 는 질문에서 #키워드 토큰을 순서대로 수집한다.
// "#FL Studio" 처럼 뒤에 대문자로 시작하는 단어가 이어지면 같은 태그의
// 일부로 본다. (멀티 워드 해시태그)
func ParseHashtags(text string) []string {
	matches := hashtagRe.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	tags := make([]string, 0, len(matches))
	for _, loc := range matches {
		tag := text[loc[0]:loc[1]]
		rest := text[loc[1]:]
		// consume following capitalized words into the tag
		for {
			word, width := nextCapitalizedWord(rest)
			if word == "" {
				break
			}
			tag += " " + word
			rest = rest[width:]
		}
		tags = append(tags, tag)
	}
	return tags
}

func nextCapitalizedWord(s string) (string, int) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if i == 0 || i >= len(s) {
		return "", 0
	}
	runes := []rune(s[i:])
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return "", 0
	}
	j := 0
	for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsNumber(runes[j])) {
		j++
	}
	word := string(runes[:j])
	return word, i + len(word)
}

var bracketRe = regexp.MustCompile(`(?s)\[.*?\]`)

// parseKeywordList 는 모델 응답을 관대하게 파싱한다.
// JSON 배열 → 대괄호 추출 후 재시도 → 콤마/개행 분리 순서로 시도한다.
func parseKeywordList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		return normalizeKeywords(arr)
	}
	if bracket := bracketRe.FindString(raw); bracket != "" {
		if err := json.Unmarshal([]byte(bracket), &arr); err == nil {
			return normalizeKeywords(arr)
		}
	}

	split := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '\n' })
	return normalizeKeywords(split)
}

func normalizeKeywords(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, kw := range raw {
		kw = strings.Trim(strings.TrimSpace(kw), `"'`+"`")
		kw = strings.TrimSpace(strings.Trim(kw, "[]"))
		if kw == "" {
			continue
		}
		if !strings.HasPrefix(kw, "#") {
			kw = "#" + kw
		}
		out = append(out, kw)
	}
	return out
}

// fallbackKeywords picks the first significant words (length > 2) from the
// raw question when model extraction is unavailable.
func fallbackKeywords(text string) []string {
	var out []string
	for _, word := range strings.Fields(text) {
		word = strings.Trim(word, `.,!?;:"'()`)
		if len(word) > 2 {
			out = append(out, "#"+word)
		}
		if len(out) >= maxKeywords {
			break
		}
	}
	return out
}

func capKeywords(keywords []string) []string {
	if len(keywords) > maxKeywords {
		return keywords[:maxKeywords]
	}
	return keywords
}
