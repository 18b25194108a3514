package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/taskdeck/taskdeck-go/internal/crypto"
)

func newTestTokens(ttl time.Duration) *crypto.TokenManager {
	return crypto.NewTokenManager(crypto.TokenConfig{
		Secret:   "test-secret",
		Issuer:   "taskdeck",
		Audience: "taskdeck-api",
		TTL:      ttl,
	})
}

// echoHandler writes the authenticated user id so tests can check which
// identity the middleware resolved.
func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, "%d", userID)
	})
}

func TestJWTAuthNoToken(t *testing.T) {
	tokens := newTestTokens(time.Hour)
	handler := JWTAuth(tokens)(echoHandler())

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["error"] != "access denied. no token provided" {
		t.Errorf("error = %q, want access denied message", body["error"])
	}
}

func TestJWTAuthBearerHeader(t *testing.T) {
	tokens := newTestTokens(time.Hour)
	handler := JWTAuth(tokens)(echoHandler())

	token, err := tokens.Issue(7)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "7" {
		t.Errorf("resolved user = %q, want %q", rec.Body.String(), "7")
	}
}

func TestJWTAuthBearerPrefixCaseInsensitive(t *testing.T) {
	tokens := newTestTokens(time.Hour)
	handler := JWTAuth(tokens)(echoHandler())

	token, err := tokens.Issue(7)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	for _, prefix := range []string{"bearer ", "BEARER ", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", prefix+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("prefix %q: status = %d, want %d", prefix, rec.Code, http.StatusOK)
		}
	}
}

func TestJWTAuthRawHeaderToken(t *testing.T) {
	tokens := newTestTokens(time.Hour)
	handler := JWTAuth(tokens)(echoHandler())

	token, err := tokens.Issue(7)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestJWTAuthCookie(t *testing.T) {
	tokens := newTestTokens(time.Hour)
	handler := JWTAuth(tokens)(echoHandler())

	token, err := tokens.Issue(12)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "12" {
		t.Errorf("resolved user = %q, want %q", rec.Body.String(), "12")
	}
}

func TestJWTAuthCookiePreferredOverHeader(t *testing.T) {
	tokens := newTestTokens(time.Hour)
	handler := JWTAuth(tokens)(echoHandler())

	token, err := tokens.Issue(12)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "12" {
		t.Errorf("resolved user = %q, want %q", rec.Body.String(), "12")
	}
}

func TestJWTAuthInvalidAndExpiredShareBody(t *testing.T) {
	valid := newTestTokens(time.Hour)
	expired := newTestTokens(-time.Minute)
	handler := JWTAuth(valid)(echoHandler())

	expiredToken, err := expired.Issue(7)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	for name, token := range map[string]string{
		"garbage": "not.a.token",
		"expired": expiredToken,
	} {
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want %d", name, rec.Code, http.StatusUnauthorized)
		}

		var body map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("%s: decoding body: %v", name, err)
		}
		if body["error"] != "invalid or expired token" {
			t.Errorf("%s: error = %q, want generic message", name, body["error"])
		}
	}
}
