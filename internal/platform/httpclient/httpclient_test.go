package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDoJSON_RelativePathAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/ping" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("User-Agent") != "maternity-journal" || r.Header.Get("X-Extra") != "1" {
			t.Errorf("missing headers: %v", r.Header)
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL+"/", time.Second)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	c.UserAgent = "maternity-journal"

	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.DoJSON(context.Background(), http.MethodGet, "v1/ping", map[string]string{"X-Extra": "1"}, nil, &out); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !out.OK {
		t.Fatalf("expected ok=true")
	}
}

func TestDoJSON_Non2xxIsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "teapot", http.StatusTeapot)
	}))
	defer srv.Close()

	err := New(time.Second).DoJSON(context.Background(), http.MethodPost, srv.URL, nil, map[string]string{"a": "b"}, nil)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusTeapot || httpErr.Body != "teapot" {
		t.Fatalf("expected HTTPError 418, got %v", err)
	}
}

func TestDoJSON_URLResolution(t *testing.T) {
	c := New(0)
	if err := c.DoJSON(context.Background(), http.MethodGet, " ", nil, nil, nil); !errors.Is(err, ErrEmptyURL) {
		t.Fatalf("expected ErrEmptyURL, got %v", err)
	}
	if err := c.DoJSON(context.Background(), http.MethodGet, "/relative", nil, nil, nil); err == nil {
		t.Fatalf("expected error for relative path without BaseURL")
	}
	var nilClient *Client
	if err := nilClient.DoJSON(context.Background(), http.MethodGet, "http://x", nil, nil, nil); err == nil {
		t.Fatalf("expected error for nil client")
	}
}
