package providers

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/live-sports-service/internal/rawjson"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	maxBodyBytes       = 16 << 20
)

// HTTPDoer is the subset of *http.Client used by upstream clients.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ResolveHTTPClient returns client, or a client with the default timeout when nil.
func ResolveHTTPClient(client *http.Client) HTTPDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

// NormalizeBaseURL trims a trailing slash, substituting def when raw is empty.
func NormalizeBaseURL(raw, def string) string {
	if raw == "" {
		raw = def
	}
	return strings.TrimSuffix(raw, "/")
}

// GetJSON issues an unauthenticated GET and decodes the body as a JSON object.
func GetJSON(ctx context.Context, doer HTTPDoer, provider, url string) (rawjson.Object, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := doer.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &RateLimitError{
			Provider:   provider,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    provider + " rate limited",
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	doc, err := rawjson.Decode(body)
	if err != nil {
		return nil, &DeserializationError{URL: url, Err: err}
	}
	return doc, nil
}

func parseRetryAfter(value string) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}
