package middleware

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"p9e.in/brandsurvey/config"
)

func TestDecodeBasicAuth(t *testing.T) {
	basic := func(user, pass string) string {
		return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
	}

	tests := []struct {
		name     string
		header   string
		wantUser string
		wantPass string
		wantOK   bool
	}{
		{"valid credentials", basic("admin", "secret"), "admin", "secret", true},
		{"lowercase scheme", "basic " + base64.StdEncoding.EncodeToString([]byte("admin:secret")), "admin", "secret", true},
		{"empty password", basic("admin", ""), "admin", "", true},
		{"colon in password", basic("admin", "se:cret"), "admin", "se:cret", true},
		{"missing header", "", "", "", false},
		{"wrong scheme", "Bearer abcdef", "", "", false},
		{"malformed base64", "Basic !!!not-base64!!!", "", "", false},
		{"no colon separator", "Basic " + base64.StdEncoding.EncodeToString([]byte("adminsecret")), "", "", false},
		{"scheme only", "Basic", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, pass, ok := decodeBasicAuth(tt.header)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if user != tt.wantUser || pass != tt.wantPass {
				t.Errorf("got (%q, %q), want (%q, %q)", user, pass, tt.wantUser, tt.wantPass)
			}
		})
	}
}

func TestBasicAuthMiddleware(t *testing.T) {
	settings := &config.Settings{AdminUsername: "admin", AdminPassword: "secret"}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetAdminUser(r) != "admin" {
			t.Error("admin user missing from request context")
		}
		w.WriteHeader(http.StatusOK)
	})
	handler := BasicAuth(settings)(next)

	basic := func(user, pass string) string {
		return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong password", basic("admin", "nope"), http.StatusUnauthorized},
		{"wrong username", basic("root", "secret"), http.StatusUnauthorized},
		{"swapped credentials", basic("secret", "admin"), http.StatusUnauthorized},
		{"malformed header", "Basic garbage", http.StatusUnauthorized},
		{"correct credentials", basic("admin", "secret"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/admin/surveys", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusUnauthorized {
				if got := w.Header().Get("WWW-Authenticate"); got == "" {
					t.Error("401 response missing WWW-Authenticate challenge")
				}
			}
		})
	}
}

func TestBasicAuthRejectsWhenUnconfigured(t *testing.T) {
	// Empty configured credentials must never allow an empty login through.
	settings := &config.Settings{}
	handler := BasicAuth(settings)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached without configured credentials")
	}))

	r := httptest.NewRequest("GET", "/api/admin/surveys", nil)
	r.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(":")))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
