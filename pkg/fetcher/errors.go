package fetcher

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is returned when a 200 response body is not valid JSON.
var ErrMalformedResponse = errors.New("malformed response body")

// UpstreamUnavailableError means the retry budget was exhausted on a
// rate-limit or server-error status. It carries the last response seen.
type UpstreamUnavailableError struct {
	Status int
	Body   string
}

func (e *UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("upstream unavailable after retries, last status %d: %s", e.Status, snippet(e.Body))
}

// UpstreamStatusError is any non-200 status outside the retryable classes.
// These fail immediately.
type UpstreamStatusError struct {
	Status int
	Body   string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.Status, snippet(e.Body))
}

func snippet(body string) string {
	const max = 200
	if len(body) > max {
		return body[:max] + "..."
	}
	return body
}
