package middleware

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"p9e.in/brandsurvey/config"
)

// unexported type prevents collisions in context
type ctxKey int

const adminUserKey ctxKey = iota

// decodeBasicAuth extracts the (username, password) pair from an
// Authorization header. A missing header, a non-Basic scheme, malformed
// base64 and a missing colon separator are all reported uniformly as
// "no credentials supplied".
func decodeBasicAuth(header string) (username, password string, ok bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "basic") {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", false
	}

	username, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", false
	}
	return username, password, true
}

// credentialsMatch compares in constant time against the configured admin
// username and password.
func credentialsMatch(settings *config.Settings, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(settings.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(settings.AdminPassword)) == 1
	return userOK && passOK
}

// BasicAuth gates the admin routes. Absent and mismatched credentials both
// resolve to 401 with a Basic challenge; only the message differs.
func BasicAuth(settings *config.Settings) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := decodeBasicAuth(r.Header.Get("Authorization"))
			if !ok {
				w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
				ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			if settings.AdminUsername == "" || !credentialsMatch(settings, username, password) {
				w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
				ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}

			ctx := context.WithValue(r.Context(), adminUserKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminUser returns the authenticated admin username, if any.
func GetAdminUser(r *http.Request) string {
	if name, ok := r.Context().Value(adminUserKey).(string); ok {
		return name
	}
	return ""
}
