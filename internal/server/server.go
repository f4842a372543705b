// Package server hosts the food-search proxy that keeps the FatSecret
// credentials off client devices.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Artemoon13/health-os/internal/provider/fatsecret"
)

const (
	defaultTokenURL  = "https://oauth.fatsecret.com/connect/token"
	defaultSearchURL = "https://platform.fatsecret.com/rest/server.api"
)

type Server struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	SearchURL    string
	HTTPClient   *http.Client
	Log          *zap.SugaredLogger
}

// Router builds the gin engine with the search route mounted.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/api/fatsecret-search", s.handleSearch)
	return r
}

func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}

func (s *Server) client() *http.Client {
	if s.HTTPClient != nil {
		return s.HTTPClient
	}
	return &http.Client{Timeout: 15 * time.Second}
}

func (s *Server) handleSearch(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query parameter q"})
		return
	}
	if s.ClientID == "" || s.ClientSecret == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "FatSecret not configured"})
		return
	}

	token, err := s.fetchToken(c)
	if err != nil {
		s.Log.Warnf("fatsecret auth failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "FatSecret auth failed"})
		return
	}

	foods, err := s.search(c, token, q)
	if err != nil {
		s.Log.Warnf("fatsecret search failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "FatSecret search failed"})
		return
	}

	c.Header("Cache-Control", "s-maxage=120, stale-while-revalidate=60")
	c.JSON(http.StatusOK, gin.H{"foods": foods})
}

func (s *Server) fetchToken(c *gin.Context) (string, error) {
	tokenURL := s.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}
	form := url.Values{"grant_type": {"client_credentials"}, "scope": {"basic"}}
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.ClientID, s.ClientSecret)

	resp, err := s.client().Do(req)
	if err != nil {
		return "", fmt.Errorf("execute token request: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("token request failed with status %d", resp.StatusCode)
	}
	var parsed struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if parsed.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}
	return parsed.AccessToken, nil
}

func (s *Server) search(c *gin.Context, token, query string) ([]fatsecret.Food, error) {
	searchURL := s.SearchURL
	if searchURL == "" {
		searchURL = defaultSearchURL
	}
	params := url.Values{
		"method":            {"foods.search"},
		"search_expression": {query},
		"format":            {"json"},
		"max_results":       {"20"},
	}
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute search request: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("search request failed with status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	items := parsed.Foods.Food.items
	out := make([]fatsecret.Food, 0, len(items))
	for _, f := range items {
		parsed := parseDescription(f.FoodDescription)
		name := f.FoodName
		if f.BrandName != "" {
			name = fmt.Sprintf("%s (%s)", f.FoodName, f.BrandName)
		}
		out = append(out, fatsecret.Food{
			ID:       f.FoodID,
			Name:     name,
			Kcal:     parsed.Kcal,
			ProteinG: parsed.ProteinG,
			CarbsG:   parsed.CarbsG,
			FatG:     parsed.FatG,
		})
	}
	return out, nil
}

type searchResponse struct {
	Foods struct {
		Food foodList `json:"food"`
	} `json:"foods"`
}

type upstreamFood struct {
	FoodID          string `json:"food_id"`
	FoodName        string `json:"food_name"`
	FoodDescription string `json:"food_description"`
	BrandName       string `json:"brand_name"`
}

// foodList tolerates FatSecret returning either a single object or an
// array for the "food" field.
type foodList struct {
	items []upstreamFood
}

func (l *foodList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		l.items = nil
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		return json.Unmarshal(data, &l.items)
	}
	var single upstreamFood
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	l.items = []upstreamFood{single}
	return nil
}
