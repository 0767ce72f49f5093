package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socceronline/soccer-api/internal/config"
	"github.com/socceronline/soccer-api/internal/domain"
	"github.com/socceronline/soccer-api/internal/service/auth"
	"github.com/socceronline/soccer-api/internal/squad"
	"github.com/socceronline/soccer-api/internal/store"
)

type userServiceFixture struct {
	svc     *UserServiceImpl
	users   *fakeUserStore
	teams   *fakeTeamStore
	players *fakePlayerStore
	roles   *fakeRoleStore
	mock    sqlmock.Sqlmock

	adminRole *domain.Role
	userRole  *domain.Role
}

func newUserServiceFixture(t *testing.T) *userServiceFixture {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	users := newFakeUserStore()
	teams := newFakeTeamStore()
	players := newFakePlayerStore()
	roles, adminRole, userRole := newFakeRoleStore()

	game := config.GameConfig{
		InitialTeamWallet:  5_000_000,
		InitialPlayerValue: 1_000_000,
	}

	svc := NewUserService(
		db,
		users,
		teams,
		players,
		roles,
		fakeHasher{},
		fakeVerifier{},
		squad.NewGenerator(rand.New(rand.NewSource(1))),
		game,
		nil,
	)

	return &userServiceFixture{
		svc:       svc,
		users:     users,
		teams:     teams,
		players:   players,
		roles:     roles,
		mock:      mock,
		adminRole: adminRole,
		userRole:  userRole,
	}
}

func (f *userServiceFixture) adminActor() domain.Actor {
	return domain.Actor{UserID: uuid.New(), Administrator: true}
}

func TestRegister(t *testing.T) {
	t.Run("creates user, team, and squad", func(t *testing.T) {
		f := newUserServiceFixture(t)

		f.mock.ExpectBegin()
		f.mock.ExpectCommit()

		user, err := f.svc.Register(context.Background(), "new@example.com", "password123")
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, f.userRole.ID, user.RoleID)
		assert.Equal(t, "hashed:password123", user.HashedPassword)
		assert.Empty(t, user.Password)

		team, err := f.teams.GetByOwner(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "New team", team.Name)
		assert.Equal(t, int64(5_000_000), team.Wallet)
		assert.NotEmpty(t, team.Country)

		players, err := f.players.ListByTeam(context.Background(), team.ID)
		require.NoError(t, err)
		require.Len(t, players, 20)
		for _, player := range players {
			assert.Equal(t, int64(1_000_000), player.Value)
		}

		assert.NoError(t, f.mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newUserServiceFixture(t)

		f.mock.ExpectBegin()
		f.mock.ExpectCommit()

		_, err := f.svc.Register(context.Background(), "taken@example.com", "password123")
		require.NoError(t, err)

		f.mock.ExpectBegin()
		f.mock.ExpectRollback()

		_, err = f.svc.Register(context.Background(), "taken@example.com", "password456")
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("invalid email", func(t *testing.T) {
		f := newUserServiceFixture(t)

		_, err := f.svc.Register(context.Background(), "not-an-email", "password123")
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})

	t.Run("short password", func(t *testing.T) {
		f := newUserServiceFixture(t)

		_, err := f.svc.Register(context.Background(), "ok@example.com", "short")
		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
	})
}

func TestAuthenticate(t *testing.T) {
	f := newUserServiceFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	registered, err := f.svc.Register(context.Background(), "login@example.com", "password123")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := f.svc.Authenticate(context.Background(), "login@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.svc.Authenticate(context.Background(), "login@example.com", "wrongpassword")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := f.svc.Authenticate(context.Background(), "nobody@example.com", "password123")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestGetActor(t *testing.T) {
	f := newUserServiceFixture(t)

	admin, err := domain.NewUser("admin@example.com", "password123", f.adminRole.ID)
	require.NoError(t, err)
	admin.HashedPassword = "hashed:password123"
	require.NoError(t, f.users.Create(context.Background(), admin))

	regular, err := domain.NewUser("user@example.com", "password123", f.userRole.ID)
	require.NoError(t, err)
	regular.HashedPassword = "hashed:password123"
	require.NoError(t, f.users.Create(context.Background(), regular))

	actor, err := f.svc.GetActor(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, actor.UserID)
	assert.True(t, actor.Administrator)

	actor, err = f.svc.GetActor(context.Background(), regular.ID)
	require.NoError(t, err)
	assert.False(t, actor.Administrator)

	_, err = f.svc.GetActor(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestCreateUser(t *testing.T) {
	t.Run("administrator creates user with explicit role", func(t *testing.T) {
		f := newUserServiceFixture(t)

		user, err := f.svc.CreateUser(context.Background(), f.adminActor(), "made@example.com", "password123", &f.adminRole.ID)
		require.NoError(t, err)
		assert.Equal(t, f.adminRole.ID, user.RoleID)
	})

	t.Run("missing role defaults", func(t *testing.T) {
		f := newUserServiceFixture(t)

		user, err := f.svc.CreateUser(context.Background(), f.adminActor(), "made@example.com", "password123", nil)
		require.NoError(t, err)
		assert.Equal(t, f.userRole.ID, user.RoleID)
	})

	t.Run("non-administrator denied", func(t *testing.T) {
		f := newUserServiceFixture(t)

		_, err := f.svc.CreateUser(context.Background(), domain.Actor{UserID: uuid.New()}, "made@example.com", "password123", nil)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("unknown role", func(t *testing.T) {
		f := newUserServiceFixture(t)

		unknown := uuid.New()
		_, err := f.svc.CreateUser(context.Background(), f.adminActor(), "made@example.com", "password123", &unknown)
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestUpdateUser(t *testing.T) {
	setup := func(t *testing.T) (*userServiceFixture, *domain.User) {
		f := newUserServiceFixture(t)
		user, err := f.svc.CreateUser(context.Background(), f.adminActor(), "subject@example.com", "password123", nil)
		require.NoError(t, err)
		return f, user
	}

	t.Run("user edits own email", func(t *testing.T) {
		f, user := setup(t)

		email := "renamed@example.com"
		updated, err := f.svc.UpdateUser(context.Background(), domain.Actor{UserID: user.ID}, user.ID, UpdateUserParams{Email: &email})
		require.NoError(t, err)
		assert.Equal(t, email, updated.Email)
	})

	t.Run("user cannot edit someone else", func(t *testing.T) {
		f, user := setup(t)

		email := "renamed@example.com"
		_, err := f.svc.UpdateUser(context.Background(), domain.Actor{UserID: uuid.New()}, user.ID, UpdateUserParams{Email: &email})
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("role change requires administrator", func(t *testing.T) {
		f, user := setup(t)

		_, err := f.svc.UpdateUser(context.Background(), domain.Actor{UserID: user.ID}, user.ID, UpdateUserParams{RoleID: &f.adminRole.ID})
		assert.ErrorIs(t, err, ErrPermissionDenied)

		updated, err := f.svc.UpdateUser(context.Background(), f.adminActor(), user.ID, UpdateUserParams{RoleID: &f.adminRole.ID})
		require.NoError(t, err)
		assert.Equal(t, f.adminRole.ID, updated.RoleID)
	})

	t.Run("email collision", func(t *testing.T) {
		f, user := setup(t)

		_, err := f.svc.CreateUser(context.Background(), f.adminActor(), "other@example.com", "password123", nil)
		require.NoError(t, err)

		email := "other@example.com"
		_, err = f.svc.UpdateUser(context.Background(), domain.Actor{UserID: user.ID}, user.ID, UpdateUserParams{Email: &email})
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("password change is re-hashed", func(t *testing.T) {
		f, user := setup(t)

		password := "newpassword123"
		updated, err := f.svc.UpdateUser(context.Background(), domain.Actor{UserID: user.ID}, user.ID, UpdateUserParams{Password: &password})
		require.NoError(t, err)
		assert.Equal(t, "hashed:newpassword123", updated.HashedPassword)
		assert.Empty(t, updated.Password)
	})

	t.Run("short password rejected", func(t *testing.T) {
		f, user := setup(t)

		password := "short"
		_, err := f.svc.UpdateUser(context.Background(), domain.Actor{UserID: user.ID}, user.ID, UpdateUserParams{Password: &password})
		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
	})
}

func TestDeleteUser(t *testing.T) {
	f := newUserServiceFixture(t)

	user, err := f.svc.CreateUser(context.Background(), f.adminActor(), "victim@example.com", "password123", nil)
	require.NoError(t, err)

	err = f.svc.DeleteUser(context.Background(), domain.Actor{UserID: user.ID}, user.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	require.NoError(t, f.svc.DeleteUser(context.Background(), f.adminActor(), user.ID))

	_, err = f.svc.GetUser(context.Background(), user.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestGetUserTeam(t *testing.T) {
	f := newUserServiceFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	user, err := f.svc.Register(context.Background(), "owner@example.com", "password123")
	require.NoError(t, err)

	team, err := f.svc.GetUserTeam(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "New team", team.Name)

	// A user created administratively has no team
	orphan, err := f.svc.CreateUser(context.Background(), f.adminActor(), "teamless@example.com", "password123", nil)
	require.NoError(t, err)

	_, err = f.svc.GetUserTeam(context.Background(), orphan.ID)
	assert.ErrorIs(t, err, store.ErrTeamNotFound)

	_, err = f.svc.GetUserTeam(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
