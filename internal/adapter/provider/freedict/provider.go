// Package freedict implements the lexicon client for the Free Dictionary API
// (https://dictionaryapi.dev).
package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/wordlookup/internal/config"
	"github.com/heartmarshall/wordlookup/internal/domain"
)

const (
	defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	defaultTimeout = 10 * time.Second

	// maxBodyBytes bounds the response read; real payloads are a few KB.
	maxBodyBytes = 4 << 20
)

// Client fetches lexical entries from the Free Dictionary API.
// It issues exactly one request per lookup: no retries, no caching.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// NewClient creates a Client from LexiconConfig.
// A zero RatePerSecond disables client-side rate limiting.
func NewClient(cfg config.LexiconConfig, logger *slog.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL:    baseURL,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "freedict"),
	}
	if cfg.RatePerSecond > 0 {
		burst := int(cfg.RatePerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}
	return c
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
func NewClientWithURL(baseURL string, logger *slog.Logger) *Client {
	return NewClient(config.LexiconConfig{BaseURL: baseURL}, logger)
}

// Lookup fetches all entries for a normalized word.
//
// An empty word returns an empty result without a request. Failures are
// returned as *domain.LookupError: KindNotFound for HTTP 404, KindTransport
// for any other non-2xx status, KindNetwork for unreachable hosts and bodies
// that do not decode into the expected shape.
func (c *Client) Lookup(ctx context.Context, word string) ([]domain.LexicalEntry, error) {
	if word == "" {
		return []domain.LexicalEntry{}, nil
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, domain.NewNetworkError(word, fmt.Errorf("freedict: rate limit wait: %w", err))
		}
	}

	reqURL := c.baseURL + "/" + url.PathEscape(word)

	c.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, domain.NewNetworkError(word, fmt.Errorf("freedict: create request: %w", err))
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, domain.NewNetworkError(word, fmt.Errorf("freedict: request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		c.log.DebugContext(ctx, "freedict word not found", slog.String("word", word))
		return nil, domain.NewNotFoundError(word)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WarnContext(ctx, "freedict unexpected status", slog.String("word", word), slog.Int("status", resp.StatusCode))
		return nil, domain.NewTransportError(word, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, domain.NewNetworkError(word, fmt.Errorf("freedict: read body: %w", err))
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		c.log.WarnContext(ctx, "freedict malformed body", slog.String("word", word), slog.String("error", err.Error()))
		return nil, domain.NewNetworkError(word, fmt.Errorf("freedict: decode json: %w", err))
	}

	result := mapAPIResponse(entries)

	c.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("entries", len(result)),
		slog.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// mapAPIResponse converts API entries into domain entries, one per API entry,
// preserving order. Nil slices become empty slices.
func mapAPIResponse(entries []apiEntry) []domain.LexicalEntry {
	result := make([]domain.LexicalEntry, 0, len(entries))

	for _, e := range entries {
		entry := domain.LexicalEntry{
			Word:       e.Word,
			Phonetic:   strings.TrimSpace(e.Phonetic),
			Phonetics:  make([]domain.Phonetic, 0, len(e.Phonetics)),
			Meanings:   make([]domain.Meaning, 0, len(e.Meanings)),
			SourceURLs: e.SourceURLs,
		}

		for _, ph := range e.Phonetics {
			entry.Phonetics = append(entry.Phonetics, mapPhonetic(ph))
		}

		for _, m := range e.Meanings {
			meaning := domain.Meaning{
				PartOfSpeech: m.PartOfSpeech,
				Definitions:  make([]domain.Definition, 0, len(m.Definitions)),
				Synonyms:     m.Synonyms,
				Antonyms:     m.Antonyms,
			}
			for _, d := range m.Definitions {
				meaning.Definitions = append(meaning.Definitions, domain.Definition{
					Definition: d.Definition,
					Example:    d.Example,
					Synonyms:   d.Synonyms,
					Antonyms:   d.Antonyms,
				})
			}
			entry.Meanings = append(entry.Meanings, meaning)
		}

		result = append(result, entry)
	}

	return result
}

// mapPhonetic converts an API phonetic, trimming audio and inferring the
// accent region from the audio file name.
func mapPhonetic(ph apiPhonetic) domain.Phonetic {
	audio := strings.TrimSpace(ph.Audio)
	return domain.Phonetic{
		Text:   strings.TrimSpace(ph.Text),
		Audio:  audio,
		Region: inferRegion(audio),
	}
}

// inferRegion attempts to determine the pronunciation region from the audio URL.
func inferRegion(audioURL string) string {
	lower := strings.ToLower(audioURL)
	if strings.Contains(lower, "-us.") || strings.Contains(lower, "-us-") {
		return "US"
	}
	if strings.Contains(lower, "-uk.") || strings.Contains(lower, "-uk-") {
		return "UK"
	}
	if strings.Contains(lower, "-au.") || strings.Contains(lower, "-au-") {
		return "AU"
	}
	return ""
}
