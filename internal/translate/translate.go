// Package translate is the translator collaborator. It tries the free
// Google Translate endpoint first and falls back to OpenAI when a key is
// configured. Callers pass normalized, truncated text — never raw HTML.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const maxRequestChars = 4000

// Translator converts text between languages, or fails.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Service chains the available translation backends.
type Service struct {
	client *http.Client
	openai *openai.Client

	// BaseURL of the free translate endpoint; a test double replaces it.
	BaseURL string
}

func NewService(openaiAPIKey string) *Service {
	s := &Service{
		client:  &http.Client{Timeout: 15 * time.Second},
		BaseURL: "https://translate.googleapis.com/translate_a/single",
	}
	if openaiAPIKey != "" {
		s.openai = openai.NewClient(openaiAPIKey)
	}
	return s
}

// Translate returns text in targetLang, or an error once every backend has
// failed. Unlike fetch failures, this error is the caller's signal to retry
// or discard the candidate.
func (s *Service) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	if len(text) > maxRequestChars {
		text = text[:maxRequestChars]
	}

	result, gerr := s.translateWithGoogle(ctx, text, sourceLang, targetLang)
	if gerr == nil && result != "" {
		return result, nil
	}
	slog.Warn("google translate failed", "from", sourceLang, "to", targetLang, "error", gerr)

	if s.openai != nil {
		result, oerr := s.translateWithOpenAI(ctx, text, sourceLang, targetLang)
		if oerr == nil && result != "" {
			return result, nil
		}
		slog.Warn("openai translate failed", "from", sourceLang, "to", targetLang, "error", oerr)
		return "", fmt.Errorf("all translation backends failed: %w", errors.Join(gerr, oerr))
	}

	return "", fmt.Errorf("translation failed: %w", gerr)
}

// translateWithGoogle uses the public gtx endpoint (no key required).
func (s *Service) translateWithGoogle(ctx context.Context, text, from, to string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", from)
	params.Set("tl", to)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate endpoint status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	return parseGoogleResponse(body)
}

// parseGoogleResponse unpacks the endpoint's nested-array payload: the first
// element holds [translatedChunk, originalChunk, ...] tuples.
func parseGoogleResponse(body []byte) (string, error) {
	var response []interface{}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	if len(response) == 0 {
		return "", errors.New("empty translate response")
	}

	chunks, ok := response[0].([]interface{})
	if !ok {
		return "", errors.New("unexpected translate response format")
	}

	var result strings.Builder
	for _, chunk := range chunks {
		tuple, ok := chunk.([]interface{})
		if !ok || len(tuple) == 0 {
			continue
		}
		if translated, ok := tuple[0].(string); ok {
			result.WriteString(translated)
		}
	}
	if result.Len() == 0 {
		return "", errors.New("no translation in response")
	}
	return result.String(), nil
}

var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"de": "German",
	"fr": "French",
	"pt": "Portuguese",
}

func (s *Service) translateWithOpenAI(ctx context.Context, text, from, to string) (string, error) {
	sourceName := languageNames[from]
	if sourceName == "" {
		sourceName = from
	}
	targetName := languageNames[to]
	if targetName == "" {
		targetName = to
	}

	prompt := fmt.Sprintf(`Translate the following %s news text to %s.
Keep the meaning, tone and journalistic style of the original.
Translate only the text itself, without additional comments.

Text to translate:
%s`, sourceName, targetName, text)

	reqCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	resp, err := s.openai.CreateChatCompletion(reqCtx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxCompletionTokens: 2000,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
