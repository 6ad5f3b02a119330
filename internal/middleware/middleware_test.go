package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"maternity-journal/internal/platform/logger"
	"maternity-journal/internal/ports/auth"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type fakeVerifier struct {
	token string
}

func (v fakeVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if token != v.token {
		return auth.Claims{}, errors.New("bad token")
	}
	return auth.Claims{OwnerID: "owner-from-token"}, nil
}

func ownerEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := GetClaims(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(c.OwnerID))
	})
}

func TestAuthContext_DevHeader(t *testing.T) {
	h := AuthContext(nil)(ownerEcho())

	req := httptest.NewRequest(http.MethodGet, "/me/gestation", nil)
	req.Header.Set(DebugUserHeader, " owner-1 ")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "owner-1" {
		t.Fatalf("expected owner-1, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestAuthContext_VerifierIgnoresDebugHeader(t *testing.T) {
	h := AuthContext(fakeVerifier{token: "good"})(ownerEcho())

	req := httptest.NewRequest(http.MethodGet, "/me/gestation", nil)
	req.Header.Set(DebugUserHeader, "owner-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("debug header must be ignored with a verifier, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/me/gestation", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Body.String() != "owner-from-token" {
		t.Fatalf("expected claims from token, got %q", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/me/gestation", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected no claims for bad token, got %d", rec.Code)
	}
}

func TestRequestLog_WritesStatusAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Info, Output: &buf})

	h := chimw.RequestID(RequestLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/me/schedule/x", nil))

	line := buf.String()
	for _, want := range []string{"level=warn", "method=DELETE", "status=404", "path=/me/schedule/x", "request_id="} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line missing %q: %s", want, line)
		}
	}
}
