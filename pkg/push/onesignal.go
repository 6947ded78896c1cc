package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://onesignal.com/api/v1"

// Client sends push notifications through the OneSignal REST API.
type Client struct {
	AppId   string
	RestKey string
	BaseURL string
	Client  *http.Client
}

func NewClient(appId, restKey string) *Client {
	return &Client{
		AppId:   appId,
		RestKey: restKey,
		BaseURL: defaultBaseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type notificationRequest struct {
	AppId            string            `json:"app_id"`
	IncludePlayerIds []string          `json:"include_player_ids"`
	Contents         map[string]string `json:"contents"`
	Headings         map[string]string `json:"headings,omitempty"`
	URL              string            `json:"url,omitempty"`
}

// Notification is a single push to one or more player ids.
type Notification struct {
	PlayerIds []string
	Heading   string
	Content   string
	URL       string
}

func (c *Client) Send(ctx context.Context, n Notification) error {
	payload := notificationRequest{
		AppId:            c.AppId,
		IncludePlayerIds: n.PlayerIds,
		Contents:         map[string]string{"en": n.Content},
		URL:              n.URL,
	}
	if n.Heading != "" {
		payload.Headings = map[string]string{"en": n.Heading}
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/notifications", bytes.NewBuffer(payloadBytes))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.RestKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("onesignal request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("onesignal error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	return nil
}
