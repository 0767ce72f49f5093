package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/socceronline/soccer-api/internal/domain"
	"github.com/socceronline/soccer-api/internal/service"
	"github.com/socceronline/soccer-api/internal/service/auth"
	"github.com/socceronline/soccer-api/internal/service/transfer"
	"github.com/socceronline/soccer-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "authentication error",
			err:            auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrapped authentication error",
			err:            fmt.Errorf("failed to authenticate: %w", auth.ErrInvalidToken),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid credentials",
			err:            auth.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "permission denied",
			err:            service.ErrPermissionDenied,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "listing a player the caller does not control",
			err:            transfer.ErrNotOwner,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "user not found",
			err:            store.ErrUserNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "team not found",
			err:            store.ErrTeamNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "transfer target not found",
			err:            transfer.ErrPlayerNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "duplicate email",
			err:            store.ErrEmailExists,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "owner already has a team",
			err:            store.ErrOwnerHasTeam,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "service conflict",
			err:            fmt.Errorf("%w: role doesn't exist", service.ErrConflict),
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "asking price above the cap",
			err:            transfer.ErrPriceCap,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "player not on the market",
			err:            transfer.ErrNotOnMarket,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "buying an own player",
			err:            transfer.ErrAlreadyOwned,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "buyer without a team",
			err:            transfer.ErrNoTeam,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "insufficient funds",
			err:            transfer.ErrInsufficientFunds,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid entity error",
			err:            store.ErrInvalidEntity,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "domain validation error",
			err:            domain.ErrInvalidEmail,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "validation error with field",
			err:            domain.NewValidationError("age", "cannot be negative", domain.ErrNegativeAge),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown error",
			err:            errors.New("some unexpected error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status := MapErrorToStatusCode(tc.err)
			assert.Equal(t, tc.expectedStatus, status)
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedMessage string
	}{
		{
			name:            "nil error",
			err:             nil,
			expectedMessage: "An unexpected error occurred",
		},
		{
			name:            "invalid token",
			err:             auth.ErrInvalidToken,
			expectedMessage: "Invalid token",
		},
		{
			name:            "expired refresh token",
			err:             auth.ErrExpiredRefreshToken,
			expectedMessage: "Invalid refresh token",
		},
		{
			name:            "invalid credentials",
			err:             auth.ErrInvalidCredentials,
			expectedMessage: "Invalid email or password",
		},
		{
			name:            "permission denied",
			err:             service.ErrPermissionDenied,
			expectedMessage: "Insufficient permissions",
		},
		{
			name:            "not the controlling owner",
			err:             transfer.ErrNotOwner,
			expectedMessage: "You do not control this player",
		},
		{
			name:            "asking price above the cap",
			err:             transfer.ErrPriceCap,
			expectedMessage: "Player's price cannot be more than 100% of current value",
		},
		{
			name:            "player not on the market",
			err:             transfer.ErrNotOnMarket,
			expectedMessage: "Player is not in market",
		},
		{
			name:            "buying an own player",
			err:             transfer.ErrAlreadyOwned,
			expectedMessage: "This player is already yours",
		},
		{
			name:            "insufficient funds",
			err:             transfer.ErrInsufficientFunds,
			expectedMessage: "Not enough money to buy this player",
		},
		{
			name:            "user not found",
			err:             store.ErrUserNotFound,
			expectedMessage: "User not found",
		},
		{
			name:            "transfer target not found",
			err:             transfer.ErrPlayerNotFound,
			expectedMessage: "Player not found",
		},
		{
			name:            "duplicate email",
			err:             store.ErrEmailExists,
			expectedMessage: "Email already exists",
		},
		{
			name:            "owner already has a team",
			err:             store.ErrOwnerHasTeam,
			expectedMessage: "User already owns a team",
		},
		{
			name:            "service conflict carries its description",
			err:             fmt.Errorf("%w: role doesn't exist", service.ErrConflict),
			expectedMessage: "Role doesn't exist",
		},
		{
			name:            "validation error carries its description",
			err:             domain.ErrEmptyTeamName,
			expectedMessage: "Team name cannot be empty",
		},
		{
			name:            "unknown error",
			err:             errors.New("pq: connection refused"),
			expectedMessage: "An unexpected error occurred",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			message := GetSafeErrorMessage(tc.err)
			assert.Equal(t, tc.expectedMessage, message)
		})
	}
}
