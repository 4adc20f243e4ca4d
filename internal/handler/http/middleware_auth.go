package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/MKhiriev/donation-thermometer/internal/logger"
	"github.com/MKhiriev/donation-thermometer/internal/utils"
	"github.com/MKhiriev/donation-thermometer/models"
)

// auth is an HTTP middleware that guards the admin mutation endpoints with
// the shared edit key.
//
// It inspects the incoming "Authorization" header and compares the
// candidate key against the configured one in constant time. Both the
// standard "Bearer <key>" form and a bare "<key>" value are accepted, the
// latter so that the key can be pasted directly into simple HTTP tooling.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the
// header is absent ([ErrEmptyAuthorizationHeader]) or the key does not
// match ([ErrWrongEditKey]). Rejections are logged via the request-scoped
// logger; the candidate key itself is never logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		candidateKey := keyFromAuthHeader(authHeader)
		if subtle.ConstantTimeCompare([]byte(candidateKey), []byte(h.editKey)) != 1 {
			log.Err(ErrWrongEditKey).Send()
			writeError(w, ErrWrongEditKey.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// keyFromAuthHeader extracts the candidate edit key from a raw
// "Authorization" header value, stripping an optional "Bearer " scheme
// prefix and surrounding whitespace.
func keyFromAuthHeader(authHeader string) string {
	key := strings.TrimSpace(authHeader)
	key = strings.TrimPrefix(key, "Bearer ")
	return strings.TrimSpace(key)
}

// writeError sends the standard JSON error envelope.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	// Best effort: a failed write means the client is already gone.
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
