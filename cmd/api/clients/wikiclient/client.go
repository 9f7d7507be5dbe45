package wikiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"chat-relay/cmd/api/httpclient"
	"chat-relay/cmd/internal/logger"
	"chat-relay/config"
)

const userAgent = "chat-relay/1.0 (context augmentation)"

// SearchResult is one Wikipedia search hit.
type SearchResult struct {
	ID          int    `json:"id"`
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Excerpt     string `json:"excerpt"`
}

// URL returns the canonical article link for the result.
func (r SearchResult) URL() string {
	return "https://en.wikipedia.org/wiki/" + url.PathEscape(r.Key)
}

type searchResponse struct {
	Pages []SearchResult `json:"pages"`
}

// Client searches Wikipedia's REST API for context augmentation.
type Client struct {
	base  *httpclient.BaseClient
	delay time.Duration
}

func New(cfg config.WikipediaConfig) *Client {
	httpClient := httpclient.New(httpclient.Config{Timeout: 15 * time.Second})
	return &Client{
		base:  httpclient.NewBaseClientWithClient(httpClient, cfg.BaseURL),
		delay: cfg.SearchDelay(),
	}
}

// Search issues one search request for a single query.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 5
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))

	req, err := c.base.NewRequest(ctx, http.MethodGet, "/search/page", params, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.base.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia search returned status %d", resp.StatusCode)
	}

	const maxBodySize = 2 * 1024 * 1024
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, err
	}
	var out searchResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return out.Pages, nil
}

// SearchKeywords 는 키워드마다 순차적으로 검색한다. 외부 레이트 리밋(429) 회피를
// 위해 매 검색 전에 고정 지연을 두며, 의도적으로 병렬화하지 않는다.
// 개별 키워드 실패는 건너뛰고 부분 결과로 계속한다. 결과는 문서 id 기준으로
// 첫 등장만 남기고 중복을 제거한 뒤 totalLimit 으로 자른다.
func (c *Client) SearchKeywords(ctx context.Context, keywords []string, totalLimit int) []SearchResult {
	if len(keywords) == 0 || totalLimit <= 0 {
		return nil
	}
	perKeyword := (totalLimit + len(keywords) - 1) / len(keywords)

	seen := make(map[int]bool)
	var merged []SearchResult
	for _, kw := range keywords {
		query := strings.TrimSpace(strings.TrimPrefix(kw, "#"))
		if query == "" {
			continue
		}

		if c.delay > 0 {
			timer := time.NewTimer(c.delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return dedupTruncate(merged, seen, totalLimit)
			case <-timer.C:
			}
		}

		results, err := c.Search(ctx, query, perKeyword)
		if err != nil {
			logger.WarnWithFields("wikipedia keyword search failed", logger.Fields{
				"keyword": kw,
				"error":   err.Error(),
			})
			continue
		}
		merged = append(merged, results...)
	}
	return dedupTruncate(merged, seen, totalLimit)
}

func dedupTruncate(results []SearchResult, seen map[int]bool, limit int) []SearchResult {
	out := make([]SearchResult, 0, limit)
	for _, r := range results {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		out = append(out, r)
		if len(out) >= limit {
			break
		}
	}
	return out
}
