// Package fatsecret is the client side of the food-search proxy.
package fatsecret

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Food is one search result in catalog-template shape.
type Food struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Kcal     float64 `json:"kcal"`
	ProteinG float64 `json:"protein"`
	CarbsG   float64 `json:"carbs"`
	FatG     float64 `json:"fat"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Search queries the proxy for foods matching the free-text query.
// Blank queries short-circuit to an empty result without a request.
// Failures are returned for the caller to degrade on; a food-logging
// flow must never crash on a search error.
func (c *Client) Search(ctx context.Context, query string) ([]Food, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	searchURL := fmt.Sprintf("%s/api/fatsecret-search?q=%s", base, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("search failed with status %d", resp.StatusCode)
	}
	var parsed struct {
		Foods []Food `json:"foods"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return parsed.Foods, nil
}
