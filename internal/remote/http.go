package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPStore talks to a state-sync REST backend. One resource per user:
// GET returns the current day's payload, PUT replaces it.
type HTTPStore struct {
	BaseURL    string
	Token      string
	DeviceID   string
	HTTPClient *http.Client
}

func (c *HTTPStore) client() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 12 * time.Second}
}

func (c *HTTPStore) stateURL(userID string) string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	return fmt.Sprintf("%s/v1/users/%s/state", base, userID)
}

func (c *HTTPStore) authorize(req *http.Request) {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	if c.DeviceID != "" {
		req.Header.Set("X-Device-ID", c.DeviceID)
	}
}

func (c *HTTPStore) Pull(ctx context.Context, userID string) (*Payload, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user id is required")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.stateURL(userID), nil)
	if err != nil {
		return nil, fmt.Errorf("create pull request: %w", err)
	}
	c.authorize(req)

	resp, err := c.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute pull request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read pull response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		// Nothing stored yet for this user.
		return &Payload{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("pull failed with status %d", resp.StatusCode)
	}
	var p Payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decode pull response: %w", err)
	}
	if len(p.WeightLog) > weightHistoryLimit {
		p.WeightLog = p.WeightLog[len(p.WeightLog)-weightHistoryLimit:]
	}
	return &p, nil
}

func (c *HTTPStore) Push(ctx context.Context, userID string, p Payload) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("user id is required")
	}
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode push payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.stateURL(userID), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.client().Do(req)
	if err != nil {
		return fmt.Errorf("execute push request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("push failed with status %d", resp.StatusCode)
	}
	return nil
}

var _ Store = (*HTTPStore)(nil)
