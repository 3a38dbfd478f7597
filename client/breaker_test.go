package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBreakerClient_PassThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	bc := NewBreakerClient(DefaultClient())
	var out struct {
		OK bool `json:"ok"`
	}
	if err := bc.GetJSON(context.Background(), server.URL, &out); err != nil {
		t.Fatalf("GetJSON failed: %v", err)
	}
	if !out.OK {
		t.Error("expected decoded response")
	}
}

func TestBreakerClient_TripsAfterConsecutiveFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	bc := NewBreakerClient(NewClient(WithMaxRetries(0)))
	for i := 0; i < 5; i++ {
		_ = bc.GetJSON(context.Background(), server.URL, &struct{}{})
	}

	err := bc.GetJSON(context.Background(), server.URL, &struct{}{})
	if !errors.Is(err, ErrUpstreamDown) {
		t.Errorf("expected ErrUpstreamDown once tripped, got %v", err)
	}

	states := bc.BreakerState()
	if len(states) != 1 {
		t.Fatalf("expected one breaker, got %d", len(states))
	}
	for _, state := range states {
		if state != "open" {
			t.Errorf("breaker state = %q, want open", state)
		}
	}
}

func TestExtractHost(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://pypi.org/pypi/requests/json", "pypi.org"},
		{"https://test.pypi.org/pypi/x/json", "test.pypi.org"},
		{"not a url", "not a url"},
	}
	for _, tt := range tests {
		if got := extractHost(tt.url); got != tt.want {
			t.Errorf("extractHost(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
