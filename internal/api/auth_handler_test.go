package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/socceronline/soccer-api/internal/domain"
	"github.com/socceronline/soccer-api/internal/service"
	"github.com/socceronline/soccer-api/internal/service/auth"
	"github.com/socceronline/soccer-api/internal/store"
)

// mockUserService is a mock implementation of the service.UserService interface
type mockUserService struct {
	registerFn     func(ctx context.Context, email, password string) (*domain.User, error)
	authenticateFn func(ctx context.Context, email, password string) (*domain.User, error)
	getUserFn      func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	getUserTeamFn  func(ctx context.Context, userID uuid.UUID) (*domain.Team, error)
}

func (m *mockUserService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	return m.registerFn(ctx, email, password)
}

func (m *mockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	return m.authenticateFn(ctx, email, password)
}

func (m *mockUserService) GetActor(ctx context.Context, userID uuid.UUID) (domain.Actor, error) {
	return domain.Actor{UserID: userID}, nil
}

func (m *mockUserService) CreateUser(ctx context.Context, actor domain.Actor, email, password string, roleID *uuid.UUID) (*domain.User, error) {
	panic("not expected in this test")
}

func (m *mockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	panic("not expected in this test")
}

func (m *mockUserService) UpdateUser(ctx context.Context, actor domain.Actor, userID uuid.UUID, params service.UpdateUserParams) (*domain.User, error) {
	panic("not expected in this test")
}

func (m *mockUserService) DeleteUser(ctx context.Context, actor domain.Actor, userID uuid.UUID) error {
	panic("not expected in this test")
}

func (m *mockUserService) GetUserTeam(ctx context.Context, userID uuid.UUID) (*domain.Team, error) {
	return m.getUserTeamFn(ctx, userID)
}

// mockJWTService is a mock implementation of the auth.JWTService interface
type mockJWTService struct {
	validateRefreshFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

func (m *mockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	return "access-" + userID.String(), nil
}

func (m *mockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	return nil, auth.ErrInvalidToken
}

func (m *mockJWTService) GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	return "refresh-" + userID.String(), nil
}

func (m *mockJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	return m.validateRefreshFn(ctx, tokenString)
}

var _ service.UserService = (*mockUserService)(nil)
var _ auth.JWTService = (*mockJWTService)(nil)

func postJSON(t *testing.T, handlerFn http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", target, bytes.NewReader([]byte(body)))
	rr := httptest.NewRecorder()
	handlerFn(rr, req)
	return rr
}

func TestRegister(t *testing.T) {
	userID := uuid.New()
	teamID := uuid.New()

	newHandler := func(registerErr error) *AuthHandler {
		users := &mockUserService{
			registerFn: func(ctx context.Context, email, password string) (*domain.User, error) {
				if registerErr != nil {
					return nil, registerErr
				}
				return &domain.User{ID: userID, Email: email}, nil
			},
			getUserTeamFn: func(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
				return &domain.Team{ID: teamID, OwnerID: &userID}, nil
			},
		}
		return NewAuthHandler(users, &mockJWTService{}, nil)
	}

	t.Run("Success", func(t *testing.T) {
		rr := postJSON(t, newHandler(nil).Register, "/api/auth/register",
			`{"email": "new@example.com", "password": "password123"}`)

		if rr.Code != http.StatusCreated {
			t.Fatalf("handler returned wrong status code: got %v want %v, body %s", rr.Code, http.StatusCreated, rr.Body.String())
		}

		var response AuthResponse
		if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response body: %v", err)
		}
		if response.UserID != userID {
			t.Errorf("wrong user ID in response: got %v want %v", response.UserID, userID)
		}
		if response.AccessToken == "" || response.RefreshToken == "" {
			t.Errorf("expected both tokens in response, got %+v", response)
		}
		if response.TeamID == nil || *response.TeamID != teamID {
			t.Errorf("wrong team ID in response: got %v want %v", response.TeamID, teamID)
		}
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		rr := postJSON(t, newHandler(store.ErrEmailExists).Register, "/api/auth/register",
			`{"email": "taken@example.com", "password": "password123"}`)

		if rr.Code != http.StatusConflict {
			t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusConflict)
		}
	})

	t.Run("Short Password", func(t *testing.T) {
		rr := postJSON(t, newHandler(nil).Register, "/api/auth/register",
			`{"email": "new@example.com", "password": "short"}`)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusBadRequest)
		}
	})

	t.Run("Malformed Body", func(t *testing.T) {
		rr := postJSON(t, newHandler(nil).Register, "/api/auth/register", `{`)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusBadRequest)
		}
	})
}

func TestLogin(t *testing.T) {
	userID := uuid.New()

	newHandler := func(authErr error) *AuthHandler {
		users := &mockUserService{
			authenticateFn: func(ctx context.Context, email, password string) (*domain.User, error) {
				if authErr != nil {
					return nil, authErr
				}
				return &domain.User{ID: userID, Email: email}, nil
			},
		}
		return NewAuthHandler(users, &mockJWTService{}, nil)
	}

	t.Run("Success", func(t *testing.T) {
		rr := postJSON(t, newHandler(nil).Login, "/api/auth/login",
			`{"email": "user@example.com", "password": "password123"}`)

		if rr.Code != http.StatusOK {
			t.Fatalf("handler returned wrong status code: got %v want %v, body %s", rr.Code, http.StatusOK, rr.Body.String())
		}

		var response AuthResponse
		if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response body: %v", err)
		}
		if response.AccessToken == "" {
			t.Error("expected an access token in the response")
		}
	})

	t.Run("Wrong Password", func(t *testing.T) {
		rr := postJSON(t, newHandler(auth.ErrInvalidCredentials).Login, "/api/auth/login",
			`{"email": "user@example.com", "password": "wrong-password"}`)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusUnauthorized)
		}
	})

	t.Run("Unknown Email", func(t *testing.T) {
		rr := postJSON(t, newHandler(store.ErrUserNotFound).Login, "/api/auth/login",
			`{"email": "nobody@example.com", "password": "password123"}`)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusUnauthorized)
		}
	})
}

func TestRefreshToken(t *testing.T) {
	userID := uuid.New()

	newHandler := func(validateErr error, getUserErr error) *AuthHandler {
		users := &mockUserService{
			getUserFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
				if getUserErr != nil {
					return nil, getUserErr
				}
				return &domain.User{ID: id}, nil
			},
		}
		jwt := &mockJWTService{
			validateRefreshFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
				if validateErr != nil {
					return nil, validateErr
				}
				return &auth.Claims{UserID: userID, TokenType: "refresh"}, nil
			},
		}
		return NewAuthHandler(users, jwt, nil)
	}

	t.Run("Success", func(t *testing.T) {
		rr := postJSON(t, newHandler(nil, nil).RefreshToken, "/api/auth/refresh",
			`{"refresh_token": "some-refresh-token"}`)

		if rr.Code != http.StatusOK {
			t.Fatalf("handler returned wrong status code: got %v want %v, body %s", rr.Code, http.StatusOK, rr.Body.String())
		}

		var response RefreshTokenResponse
		if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response body: %v", err)
		}
		if response.AccessToken == "" || response.RefreshToken == "" {
			t.Errorf("expected a new token pair, got %+v", response)
		}
	})

	t.Run("Expired Refresh Token", func(t *testing.T) {
		rr := postJSON(t, newHandler(auth.ErrExpiredRefreshToken, nil).RefreshToken, "/api/auth/refresh",
			`{"refresh_token": "expired-token"}`)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusUnauthorized)
		}
	})

	t.Run("Deleted User", func(t *testing.T) {
		rr := postJSON(t, newHandler(nil, store.ErrUserNotFound).RefreshToken, "/api/auth/refresh",
			`{"refresh_token": "orphaned-token"}`)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusUnauthorized)
		}
	})

	t.Run("Missing Token", func(t *testing.T) {
		rr := postJSON(t, newHandler(nil, nil).RefreshToken, "/api/auth/refresh", `{}`)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusBadRequest)
		}
	})
}
