// Package fetcher pulls lifelog entries from the source API one window at a
// time, following cursor pagination and retrying rate-limit and server
// errors per HTTP call.
package fetcher

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"lifelog-journal/models"
)

const (
	// PageSize is fixed by the job's rate-limit budget, not tunable.
	PageSize = 10

	// MaxPagesPerWindow bounds the page loop so a misbehaving upstream
	// that keeps returning cursors can never hang the job.
	MaxPagesPerWindow = 20

	// maxRetries is the number of additional attempts after the first
	// call, for 429 and 5xx only.
	maxRetries = 3

	// fallbackRetryDelay applies when Retry-After is absent or unparsable.
	fallbackRetryDelay = 5 * time.Second
)

const queryTimeLayout = "2006-01-02 15:04:05"

// Config identifies the upstream and the query time zone.
type Config struct {
	Endpoint string
	APIKey   string
	Timezone string
}

// Fetcher is a paged window fetcher. Safe for reuse across windows; cursors
// never outlive a single FetchWindow call.
type Fetcher struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
	sleep  func(time.Duration)
}

func New(cfg Config, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		cfg:    cfg,
		client: &http.Client{Timeout: 60 * time.Second},
		logger: logger,
		sleep:  time.Sleep,
	}
}

// FetchWindow pages through one window until the upstream stops returning a
// cursor, concatenating items in page order. Hitting the page cap appends a
// single truncation marker instead of failing.
func (f *Fetcher) FetchWindow(w models.Window) ([]models.Entry, error) {
	var all []models.Entry
	cursor := ""

	for page := 1; page <= MaxPagesPerWindow; page++ {
		body, err := f.getPage(w, cursor)
		if err != nil {
			return nil, err
		}

		entries := extractEntries(body)
		all = append(all, entries...)

		cursor = extractNextCursor(body)
		if cursor == "" {
			return all, nil
		}
	}

	f.logger.Warn("window hit page cap, truncating", "window", w.Label, "pages", MaxPagesPerWindow)
	all = append(all, truncationMarker(w))
	return all, nil
}

// getPage performs one GET with the retry policy: 429 and 5xx are retried up
// to maxRetries extra attempts, honoring a numeric Retry-After header;
// any other non-200 fails immediately.
func (f *Fetcher) getPage(w models.Window, cursor string) ([]byte, error) {
	attempts := 0
	for {
		status, retryAfter, body, err := f.doRequest(w, cursor)
		if err != nil {
			return nil, fmt.Errorf("failed to request lifelogs page: %w", err)
		}

		switch {
		case status == http.StatusOK:
			if !json.Valid(body) {
				return nil, fmt.Errorf("%w (window %s)", ErrMalformedResponse, w.Label)
			}
			return body, nil

		case status == http.StatusTooManyRequests || status >= 500:
			if attempts >= maxRetries {
				return nil, &UpstreamUnavailableError{Status: status, Body: string(body)}
			}
			attempts++
			delay := retryDelay(retryAfter)
			f.logger.Warn("retrying lifelogs page", "window", w.Label, "status", status, "attempt", attempts, "delay", delay)
			f.sleep(delay)

		default:
			return nil, &UpstreamStatusError{Status: status, Body: string(body)}
		}
	}
}

func (f *Fetcher) doRequest(w models.Window, cursor string) (int, string, []byte, error) {
	req, err := http.NewRequest(http.MethodGet, f.pageURL(w, cursor), nil)
	if err != nil {
		return 0, "", nil, err
	}
	req.Header.Set("X-API-Key", f.cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, "", nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, resp.Header.Get("Retry-After"), body, nil
}

func (f *Fetcher) pageURL(w models.Window, cursor string) string {
	q := url.Values{}
	q.Set("timezone", f.cfg.Timezone)
	q.Set("start", w.Start.Format(queryTimeLayout))
	q.Set("end", w.End.Format(queryTimeLayout))
	q.Set("includeMarkdown", "true")
	q.Set("includeHeadings", "true")
	q.Set("includeContents", "false")
	q.Set("limit", strconv.Itoa(PageSize))
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	return f.cfg.Endpoint + "?" + q.Encode()
}

// retryDelay parses Retry-After as a number of seconds, falling back to the
// fixed delay when absent or non-numeric.
func retryDelay(retryAfter string) time.Duration {
	if retryAfter == "" {
		return fallbackRetryDelay
	}
	secs, err := strconv.ParseFloat(retryAfter, 64)
	if err != nil || secs <= 0 {
		return fallbackRetryDelay
	}
	return time.Duration(secs * float64(time.Second))
}

func truncationMarker(w models.Window) models.Entry {
	return models.Entry{
		ID:        models.TruncationIDPrefix + w.Label,
		Title:     fmt.Sprintf("[window truncated after %d pages]", MaxPagesPerWindow),
		StartTime: w.Start.Format(time.RFC3339),
		Markdown:  "More entries may exist in this window; the page cap was reached.",
	}
}
