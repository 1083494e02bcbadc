package convert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/wpget/wp-downloader/internal/model"
)

// Backend constants
const (
	DefaultBackendURL = "https://wp-mini-epub.shuttleapp.rs"

	GeneratePath = "/generate-epub"
)

// BackendError is a failure reported by the conversion backend
type BackendError struct {
	StatusCode int
	Message    string
}

// Error returns the user-facing message for the failure
func (e *BackendError) Error() string {
	return e.Message
}

// Result is a finished conversion: the book contents and its filename
type Result struct {
	Filename string
	Data     []byte
}

// Client posts conversion requests to the backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a conversion client for the given backend base URL. An
// empty baseURL selects the default backend.
//
// The client deliberately has no timeout: generating a long story takes as
// long as it takes, and the UI keeps its single download slot busy until the
// request resolves.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBackendURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// Generate requests an EPUB for req.StoryID and returns the book blob with
// its resolved filename. title may be empty; it only influences filename
// fallback.
func (c *Client) Generate(ctx context.Context, req model.EpubRequest, title string) (*Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+GeneratePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseBackendError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read backend response: %w", err)
	}

	storyID := fmt.Sprintf("%d", req.StoryID)
	filename := ResolveFilename(resp.Header.Get("Content-Disposition"), title, storyID)
	return &Result{Filename: filename, Data: data}, nil
}

// parseBackendError turns a non-success response into a BackendError. The
// backend reports failures as a JSON {"error": "..."} body; anything else
// falls back to the HTTP status text.
func parseBackendError(resp *http.Response) error {
	backendErr := &BackendError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
	if backendErr.Message == "" {
		backendErr.Message = resp.Status
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return backendErr
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		backendErr.Message = payload.Error
	}
	return backendErr
}
