package providers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestGetJSONDecodesObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("expected GET, got %s", r.Method)
		}
		_, _ = w.Write([]byte(`{"events":[{"id":"1"}]}`))
	}))
	defer srv.Close()

	doc, err := GetJSON(context.Background(), srv.Client(), "espn", srv.URL+"/scoreboard")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	events, err := doc.Objects("events")
	if err != nil || len(events) != 1 {
		t.Fatalf("expected one event, got %v (%v)", events, err)
	}
}

func TestGetJSONStatusErrors(t *testing.T) {
	cases := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusTooManyRequests, func(err error) bool {
			rl, ok := AsRateLimitError(err)
			return ok && rl.RetryAfter == 3*time.Second && rl.Provider == "espn"
		}},
		{http.StatusBadGateway, func(err error) bool {
			var fe *FetchError
			return errors.As(err, &fe) && fe.StatusCode == http.StatusBadGateway && fe.Temporary()
		}},
		{http.StatusNotFound, func(err error) bool {
			var fe *FetchError
			return errors.As(err, &fe) && !fe.Temporary()
		}},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Retry-After", "3")
			w.WriteHeader(tc.status)
		}))
		_, err := GetJSON(context.Background(), srv.Client(), "espn", srv.URL)
		srv.Close()
		if !tc.check(err) {
			t.Fatalf("status %d: unexpected error %v", tc.status, err)
		}
	}
}

func TestGetJSONMalformedBody(t *testing.T) {
	client := &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`<html>`)),
			Header:     make(http.Header),
		}, nil
	})}

	_, err := GetJSON(context.Background(), client, "espn", "http://example.test/scoreboard")
	var de *DeserializationError
	if !errors.As(err, &de) {
		t.Fatalf("expected DeserializationError, got %v", err)
	}
}

func TestGetJSONTransportError(t *testing.T) {
	client := &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("dial failed")
	})}

	_, err := GetJSON(context.Background(), client, "espn", "http://example.test/scoreboard")
	var fe *FetchError
	if !errors.As(err, &fe) || fe.StatusCode != 0 || !Retryable(err) {
		t.Fatalf("expected retryable FetchError, got %v", err)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	if got := NormalizeBaseURL("", "http://a/"); got != "http://a" {
		t.Fatalf("expected default, got %s", got)
	}
	if got := NormalizeBaseURL("http://b/", "http://a"); got != "http://b" {
		t.Fatalf("expected override, got %s", got)
	}
}

func TestParseRetryAfter(t *testing.T) {
	if got := parseRetryAfter("5"); got != 5*time.Second {
		t.Fatalf("expected 5s, got %s", got)
	}
	if got := parseRetryAfter("soon"); got != 0 {
		t.Fatalf("expected 0, got %s", got)
	}
}
