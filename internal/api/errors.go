package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/socceronline/soccer-api/internal/domain"
	"github.com/socceronline/soccer-api/internal/service"
	"github.com/socceronline/soccer-api/internal/service/auth"
	"github.com/socceronline/soccer-api/internal/service/transfer"
	"github.com/socceronline/soccer-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrPermissionDenied),
		errors.Is(err, transfer.ErrNotOwner):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, transfer.ErrPlayerNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, service.ErrConflict):
		return http.StatusConflict

	// Transfer rule violations read as client mistakes
	case errors.Is(err, transfer.ErrPriceCap),
		errors.Is(err, transfer.ErrNotOnMarket),
		errors.Is(err, transfer.ErrAlreadyOwned),
		errors.Is(err, transfer.ErrNoTeam),
		errors.Is(err, transfer.ErrInsufficientFunds):
		return http.StatusBadRequest

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid email or password"

	// Authorization errors
	case errors.Is(err, service.ErrPermissionDenied):
		return "Insufficient permissions"

	case errors.Is(err, transfer.ErrNotOwner):
		return "You do not control this player"

	// Transfer rule violations carry their own descriptions
	case errors.Is(err, transfer.ErrPriceCap),
		errors.Is(err, transfer.ErrNotOnMarket),
		errors.Is(err, transfer.ErrAlreadyOwned),
		errors.Is(err, transfer.ErrNoTeam),
		errors.Is(err, transfer.ErrInsufficientFunds):
		return capitalize(err.Error())

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrTeamNotFound):
		return "Team not found"

	case errors.Is(err, store.ErrPlayerNotFound),
		errors.Is(err, transfer.ErrPlayerNotFound):
		return "Player not found"

	case errors.Is(err, store.ErrRoleNotFound):
		return "Role not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrOwnerHasTeam):
		return "User already owns a team"

	case errors.Is(err, service.ErrConflict):
		return capitalize(trimSentinel(err.Error(), service.ErrConflict.Error()))

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, domain.ErrValidation):
		return capitalize(trimSentinel(err.Error(), domain.ErrValidation.Error()))

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// trimSentinel strips a "sentinel: " prefix so only the descriptive part of a
// wrapped error reaches the client.
func trimSentinel(msg, sentinel string) string {
	trimmed := strings.TrimPrefix(msg, sentinel+": ")
	if trimmed == "" {
		return sentinel
	}
	return trimmed
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
