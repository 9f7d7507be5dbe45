package wikiclient

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// minCitations 은 포맷 결과가 보장해야 하는 인용 줄 수의 하한이다.
// 이 포맷을 소비하는 모델 프롬프트 쪽의 요구사항이다.
const minCitations = 4

// FormatResultsForAI renders search results as numbered markdown blocks
// followed by a Citations section. When fewer than four results exist, the
// last citation line is duplicated with incremented indices until four lines
// are present.
func FormatResultsForAI(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Wikipedia search results:\n\n")
	for i, r := range results {
		b.WriteString(fmt.Sprintf("%d. [%s](%s)\n", i+1, r.Title, r.URL()))
		if r.Description != "" {
			b.WriteString(r.Description + "\n")
		}
		if excerpt := CleanExcerpt(r.Excerpt); excerpt != "" {
			b.WriteString(excerpt + "\n")
		}
		b.WriteString(fmt.Sprintf("[Read more](%s)\n\n", r.URL()))
	}

	b.WriteString("Citations:\n")
	for i, r := range results {
		b.WriteString(fmt.Sprintf("[%d]: [%s](%s)\n", i+1, r.Title, r.URL()))
	}
	last := results[len(results)-1]
	for i := len(results); i < minCitations; i++ {
		b.WriteString(fmt.Sprintf("[%d]: [%s](%s)\n", i+1, last.Title, last.URL()))
	}
	return b.String()
}

// CleanExcerpt strips the HTML markup (searchmatch spans and the like) that
// the search API embeds in excerpts, leaving plain text.
func CleanExcerpt(excerpt string) string {
	if excerpt == "" {
		return ""
	}
	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(excerpt))
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.Write(tokenizer.Text())
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
