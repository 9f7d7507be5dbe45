package services

import (
	"context"

	"chat-relay/cmd/api/clients/wikiclient"
	"chat-relay/cmd/internal/logger"
	"chat-relay/models"
)

// AugmentService builds Wikipedia context for web-search-enabled turns.
type AugmentService struct {
	text        *TextService
	wiki        *wikiclient.Client
	resultLimit int
}

func NewAugmentService(text *TextService, wiki *wikiclient.Client, resultLimit int) *AugmentService {
	if resultLimit <= 0 {
		resultLimit = 6
	}
	return &AugmentService{text: text, wiki: wiki, resultLimit: resultLimit}
}

// BuildContext 는 질문에서 키워드를 뽑아 위키피디아를 검색하고, 모델 프롬프트에
// 붙일 포맷 문자열을 만든다. 어떤 단계가 실패해도 채팅 턴을 중단시키지 않는다.
// 키워드가 전혀 없으면 질문 원문을 단일 쿼리로 사용한다.
func (s *AugmentService) BuildContext(ctx context.Context, question, modelName string, settings models.APISettings) string {
	keywords := s.text.ExtractKeywords(ctx, question, modelName, settings)
	if len(keywords) == 0 {
		keywords = []string{question}
	}

	results := s.wiki.SearchKeywords(ctx, keywords, s.resultLimit)
	if len(results) == 0 {
		logger.DebugWithFields("wikipedia augmentation produced no results", logger.Fields{
			"keywords": keywords,
		})
		return ""
	}
	return wikiclient.FormatResultsForAI(results)
}
