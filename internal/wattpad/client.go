package wattpad

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// API constants
const (
	DefaultBaseURL = "https://www.wattpad.com"

	// Some Wattpad endpoints answer bot user agents with 403, so requests
	// identify as a desktop browser.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/139.0.0.0 Safari/537.36"

	// Metadata lookups are small JSON responses; anything slower than this
	// is treated as a failure.
	MetadataTimeout = 15 * time.Second
)

// Client talks to the Wattpad metadata API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a metadata client for the given base URL. An empty
// baseURL selects the production API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: MetadataTimeout},
	}
}

// StoryGroupID resolves a story part (chapter) id to the id of the story it
// belongs to. A missing groupId in the response is an error: the caller
// treats it the same as any other lookup failure.
func (c *Client) StoryGroupID(ctx context.Context, partID string) (string, error) {
	var payload struct {
		GroupID json.Number `json:"groupId"`
	}

	url := fmt.Sprintf("%s/api/v3/story_parts/%s?fields=groupId", c.baseURL, partID)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return "", fmt.Errorf("story part lookup failed: %w", err)
	}

	if payload.GroupID.String() == "" {
		return "", fmt.Errorf("story part %s has no groupId", partID)
	}
	return payload.GroupID.String(), nil
}

// StoryTitle fetches the title of a story. Callers use this for filename
// construction only; failures are expected to be non-fatal.
func (c *Client) StoryTitle(ctx context.Context, storyID string) (string, error) {
	var payload struct {
		Title string `json:"title"`
	}

	url := fmt.Sprintf("%s/api/v3/stories/%s?fields=title", c.baseURL, storyID)
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return "", fmt.Errorf("story title lookup failed: %w", err)
	}

	if payload.Title == "" {
		return "", fmt.Errorf("story %s has no title", storyID)
	}
	return payload.Title, nil
}

// getJSON performs one GET request and decodes the JSON response into out
func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
