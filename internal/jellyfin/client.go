// Package jellyfin loads subtitle tracks from a Jellyfin-compatible media
// server and installs them into the playback overlay.
package jellyfin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tgrenier/jellysub/internal/cue"
	"github.com/tgrenier/jellysub/internal/logging"
)

const defaultTimeout = 15 * time.Second

var ErrMissingAPIKey = errors.New("missing api key")

// Client fetches subtitle streams over HTTP. Response bodies are raw
// subtitle text and are never JSON-parsed.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	logger  *logging.Logger
}

func NewClient(baseURL, apiKey string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: defaultTimeout},
		logger:  logger,
	}
}

// SubtitleStreamURL builds the subtitle resource locator. The api_key
// query parameter is included exactly once.
func (c *Client) SubtitleStreamURL(itemID, mediaSourceID string, trackIndex int, format cue.Format) string {
	return fmt.Sprintf("%s/Videos/%s/%s/Subtitles/%d/Stream.%s?api_key=%s",
		c.baseURL,
		url.PathEscape(itemID),
		url.PathEscape(mediaSourceID),
		trackIndex,
		format,
		url.QueryEscape(c.apiKey),
	)
}

// FetchSubtitleText downloads one subtitle stream as raw text. An empty
// API key aborts before any network call.
func (c *Client) FetchSubtitleText(ctx context.Context, itemID, mediaSourceID string, trackIndex int, format cue.Format) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", ErrMissingAPIKey
	}

	streamURL := c.SubtitleStreamURL(itemID, mediaSourceID, trackIndex, format)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, streamURL, nil)
	if err != nil {
		return "", fmt.Errorf("subtitle fetch: new request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("subtitle fetch: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("subtitle fetch: unexpected http status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("subtitle fetch: read body: %w", err)
	}
	return string(data), nil
}
