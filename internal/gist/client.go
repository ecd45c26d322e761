package gist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"trainlock/internal/config"
	"trainlock/internal/export"
	"trainlock/internal/models"
)

// Client reads and writes the plan document stored as a single file inside a
// GitHub gist. Transport problems never surface as errors: sync is best-effort
// and callers fall back to local state, so both operations report a plain ok.
type Client struct {
	http     *http.Client
	baseURL  string
	gistID   string
	token    string
	fileName string
	now      func() time.Time
	log      zerolog.Logger
}

// NewClient builds a transport from the gist section of the configuration.
func NewClient(cfg config.GistConfig, log zerolog.Logger) *Client {
	return &Client{
		http:     &http.Client{Timeout: config.TransportTimeout},
		baseURL:  cfg.BaseURL,
		gistID:   cfg.ID,
		token:    cfg.Token,
		fileName: cfg.FileName,
		now:      time.Now,
		log:      log,
	}
}

type gistFile struct {
	Content   string `json:"content"`
	Truncated bool   `json:"truncated"`
}

type gistPayload struct {
	Files map[string]gistFile `json:"files"`
}

// Pull fetches the remote document. ok is false when the gist or the file is
// missing, the token is rejected, the content is truncated, or the payload
// does not decode; the caller keeps working from local state in all of those
// cases.
func (c *Client) Pull(ctx context.Context) ([]models.Session, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.gistURL(), nil)
	if err != nil {
		c.log.Error().Err(err).Msg("build pull request")
		return nil, false
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("pull failed")
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Msg("pull rejected")
		return nil, false
	}

	var payload gistPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Warn().Err(err).Msg("pull response malformed")
		return nil, false
	}
	file, ok := payload.Files[c.fileName]
	if !ok {
		c.log.Warn().Str("file", c.fileName).Msg("gist has no plan file")
		return nil, false
	}
	if file.Truncated {
		// The API truncates large files; a partial document must not be
		// merged against local state.
		c.log.Warn().Str("file", c.fileName).Msg("gist content truncated")
		return nil, false
	}

	doc, err := export.Decode([]byte(file.Content), c.now())
	if err != nil {
		c.log.Warn().Err(err).Msg("gist content undecodable")
		return nil, false
	}
	return doc.Entries, true
}

// Push replaces the remote document with the given sessions.
func (c *Client) Push(ctx context.Context, version int, sessions []models.Session) bool {
	content, err := export.EncodeDocument(models.Document{Version: version, Entries: sessions})
	if err != nil {
		c.log.Error().Err(err).Msg("encode push document")
		return false
	}
	body, err := json.Marshal(map[string]interface{}{
		"files": map[string]interface{}{
			c.fileName: map[string]string{"content": string(content)},
		},
	})
	if err != nil {
		c.log.Error().Err(err).Msg("encode push request")
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.gistURL(), bytes.NewReader(body))
	if err != nil {
		c.log.Error().Err(err).Msg("build push request")
		return false
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("push failed")
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Msg("push rejected")
		return false
	}
	return true
}

func (c *Client) gistURL() string {
	return fmt.Sprintf("%s/gists/%s", c.baseURL, c.gistID)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
