package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rentiva/rentiva-admin/internal/shared"
)

// GenericServerMessage is sent for any unexpected failure. Internal
// detail stays in the logs, never in the response body.
const GenericServerMessage = "Server error. Please try again later."

// RespondError maps domain errors to HTTP responses. Auth failures at
// login intentionally collapse unknown-identity and wrong-role into one
// message so callers cannot enumerate accounts.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrValidation):
		Message(w, http.StatusBadRequest, userMessage(err, "Invalid request"))
	case errors.Is(err, shared.ErrNotAdmin):
		Message(w, http.StatusBadRequest, "Not an admin or user not found")
	case errors.Is(err, shared.ErrInvalidCredentials):
		Message(w, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, shared.ErrTokenExpired):
		Message(w, http.StatusUnauthorized, "Token expired")
	case errors.Is(err, shared.ErrTokenInvalid):
		Message(w, http.StatusUnauthorized, "Not authorized, token invalid")
	case errors.Is(err, shared.ErrForbidden):
		Message(w, http.StatusForbidden, "Admin access required")
	case errors.Is(err, shared.ErrNotFound):
		Message(w, http.StatusNotFound, "Resource not found")
	default:
		Message(w, http.StatusInternalServerError, GenericServerMessage)
	}
}

// userMessage keeps the wrapped detail for validation errors, which are
// safe to echo, and falls back otherwise.
func userMessage(err error, fallback string) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx >= 0 {
		if detail := msg[idx+2:]; detail != "" {
			return detail
		}
	}
	if errors.Is(err, shared.ErrValidation) && msg != shared.ErrValidation.Error() {
		return msg
	}
	return fallback
}
