// Package publish delivers the finished post to the social platform.
package publish

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

// Result is the platform's acknowledgement of a published post.
type Result struct {
	RemoteID string
}

// Publisher hands a finished post to a social platform.
type Publisher interface {
	Publish(ctx context.Context, content, link string) (Result, error)
}

// FacebookPublisher posts to a Facebook page feed through the Graph API.
// Passing the article link makes the platform render a preview card.
type FacebookPublisher struct {
	pageID string
	token  string
	client *http.Client

	// BaseURL of the Graph API; a test double replaces it.
	BaseURL string
}

func NewFacebook(pageID, token string) *FacebookPublisher {
	return &FacebookPublisher{
		pageID:  pageID,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
		BaseURL: "https://graph.facebook.com/v18.0",
	}
}

// Publish posts content (and the source link, when present) to the page
// feed. No retry here: the orchestrator treats publish failure as fatal for
// the run so the candidate is not lost from history.
func (fp *FacebookPublisher) Publish(ctx context.Context, content, link string) (Result, error) {
	form := url.Values{}
	form.Set("message", content)
	form.Set("access_token", fp.token)
	if link != "" {
		form.Set("link", link)
	}

	endpoint := fmt.Sprintf("%s/%s/feed", fp.BaseURL, fp.pageID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := fp.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("publish request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return Result{}, fmt.Errorf("read publish response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("graph API status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return Result{}, fmt.Errorf("decode publish response: %w", err)
	}
	return Result{RemoteID: payload.ID}, nil
}
