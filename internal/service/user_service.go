package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/socceronline/soccer-api/internal/config"
	"github.com/socceronline/soccer-api/internal/domain"
	"github.com/socceronline/soccer-api/internal/platform/logger"
	"github.com/socceronline/soccer-api/internal/service/auth"
	"github.com/socceronline/soccer-api/internal/squad"
	"github.com/socceronline/soccer-api/internal/store"
)

// Name given to every newly registered user's team.
const newTeamName = "New team"

// UpdateUserParams holds the optional fields of a user edit. Nil fields are
// left unchanged.
type UpdateUserParams struct {
	Email    *string
	Password *string
	RoleID   *uuid.UUID
}

// UserService provides user-related operations: self-registration with squad
// generation, credential checks, and the guarded CRUD surface.
type UserService interface {
	// Register creates a user with the default role, a team with the
	// configured starting wallet, and a generated 20-player squad, all in
	// one transaction. Returns store.ErrEmailExists if the email is taken.
	Register(ctx context.Context, email, password string) (*domain.User, error)

	// Authenticate verifies the email/password pair.
	// Returns auth.ErrInvalidCredentials when the pair does not match.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// GetActor resolves the capability set of the given user by loading
	// its role. Used by the authentication middleware.
	GetActor(ctx context.Context, userID uuid.UUID) (domain.Actor, error)

	// CreateUser creates a user on behalf of an administrator. A nil
	// roleID assigns the default role.
	CreateUser(ctx context.Context, actor domain.Actor, email, password string, roleID *uuid.UUID) (*domain.User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// UpdateUser edits a user. Callers may edit themselves; only
	// administrators may edit others or change roles.
	UpdateUser(ctx context.Context, actor domain.Actor, userID uuid.UUID, params UpdateUserParams) (*domain.User, error)

	// DeleteUser removes a user. Administrators only.
	DeleteUser(ctx context.Context, actor domain.Actor, userID uuid.UUID) error

	// GetUserTeam retrieves the team owned by the given user.
	// Returns store.ErrTeamNotFound if the user owns no team.
	GetUserTeam(ctx context.Context, userID uuid.UUID) (*domain.Team, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	db        *sql.DB
	users     store.UserStore
	teams     store.TeamStore
	players   store.PlayerStore
	roles     store.RoleStore
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	generator *squad.Generator
	game      config.GameConfig
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	db *sql.DB,
	users store.UserStore,
	teams store.TeamStore,
	players store.PlayerStore,
	roles store.RoleStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	generator *squad.Generator,
	game config.GameConfig,
	logger *slog.Logger,
) *UserServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		db:        db,
		users:     users,
		teams:     teams,
		players:   players,
		roles:     roles,
		hasher:    hasher,
		verifier:  verifier,
		generator: generator,
		game:      game,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// Ensure UserServiceImpl implements UserService
var _ UserService = (*UserServiceImpl)(nil)

// Register implements UserService.Register
func (s *UserServiceImpl) Register(ctx context.Context, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	role, err := s.roles.GetDefault(ctx)
	if err != nil {
		return nil, NewServiceError("register", "failed to load default role", err)
	}

	user, err := domain.NewUser(email, password, role.ID)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, NewServiceError("register", "failed to hash password", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	team, err := domain.NewTeam(newTeamName, s.generator.RandomCountry(), s.game.InitialTeamWallet, &user.ID)
	if err != nil {
		return nil, err
	}

	players, err := s.generator.Generate(team.ID, s.game.InitialPlayerValue)
	if err != nil {
		return nil, NewServiceError("register", "failed to generate squad", err)
	}

	// User, team, and squad are created atomically; a failure at any point
	// leaves no partial registration behind.
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txUsers := s.users.WithTx(tx)
		txTeams := s.teams.WithTx(tx)
		txPlayers := s.players.WithTx(tx)

		if err := txUsers.Create(ctx, user); err != nil {
			return err
		}
		if err := txTeams.Create(ctx, team); err != nil {
			return err
		}
		for _, player := range players {
			if err := txPlayers.Create(ctx, player); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("attempted to register with existing email")
			return nil, store.ErrEmailExists
		}
		log.Error("failed to register user",
			slog.String("error", err.Error()))
		return nil, NewServiceError("register", "failed to save registration", err)
	}

	log.Info("user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("team_id", team.ID.String()),
		slog.Int("squad_size", len(players)))
	return user, nil
}

// Authenticate implements UserService.Authenticate
func (s *UserServiceImpl) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Same failure as a wrong password; do not reveal which.
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to retrieve user by email: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("password mismatch during login",
			slog.String("user_id", user.ID.String()))
		return nil, auth.ErrInvalidCredentials
	}

	return user, nil
}

// GetActor implements UserService.GetActor
func (s *UserServiceImpl) GetActor(ctx context.Context, userID uuid.UUID) (domain.Actor, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.Actor{}, err
	}
	role, err := s.roles.GetByID(ctx, user.RoleID)
	if err != nil {
		return domain.Actor{}, err
	}
	return domain.Actor{
		UserID:        user.ID,
		Administrator: role.Administrator,
	}, nil
}

// CreateUser implements UserService.CreateUser
func (s *UserServiceImpl) CreateUser(
	ctx context.Context,
	actor domain.Actor,
	email, password string,
	roleID *uuid.UUID,
) (*domain.User, error) {
	if !actor.Administrator {
		return nil, ErrPermissionDenied
	}

	var role *domain.Role
	var err error
	if roleID == nil {
		role, err = s.roles.GetDefault(ctx)
	} else {
		role, err = s.roles.GetByID(ctx, *roleID)
	}
	if err != nil {
		if errors.Is(err, store.ErrRoleNotFound) {
			return nil, fmt.Errorf("%w: role doesn't exist", ErrConflict)
		}
		return nil, err
	}

	user, err := domain.NewUser(email, password, role.ID)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, NewServiceError("create_user", "failed to hash password", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser implements UserService.GetUser
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// ListUsers implements UserService.ListUsers
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// UpdateUser implements UserService.UpdateUser
func (s *UserServiceImpl) UpdateUser(
	ctx context.Context,
	actor domain.Actor,
	userID uuid.UUID,
	params UpdateUserParams,
) (*domain.User, error) {
	if !actor.Is(userID) && !actor.Administrator {
		return nil, ErrPermissionDenied
	}
	if params.RoleID != nil && !actor.Administrator {
		return nil, ErrPermissionDenied
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if params.Email != nil && *params.Email != user.Email {
		if _, err := s.users.GetByEmail(ctx, *params.Email); err == nil {
			return nil, store.ErrEmailExists
		} else if !errors.Is(err, store.ErrUserNotFound) {
			return nil, err
		}
		user.Email = *params.Email
	}

	if params.Password != nil {
		// Run the plaintext through domain validation before hashing.
		user.Password = *params.Password
		if err := user.Validate(); err != nil {
			return nil, err
		}
		hashed, err := s.hasher.Hash(*params.Password)
		if err != nil {
			return nil, NewServiceError("update_user", "failed to hash password", err)
		}
		user.HashedPassword = hashed
		user.Password = ""
	}

	if params.RoleID != nil {
		if _, err := s.roles.GetByID(ctx, *params.RoleID); err != nil {
			if errors.Is(err, store.ErrRoleNotFound) {
				return nil, fmt.Errorf("%w: role doesn't exist", ErrConflict)
			}
			return nil, err
		}
		user.RoleID = *params.RoleID
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser implements UserService.DeleteUser
func (s *UserServiceImpl) DeleteUser(ctx context.Context, actor domain.Actor, userID uuid.UUID) error {
	if !actor.Administrator {
		return ErrPermissionDenied
	}
	return s.users.Delete(ctx, userID)
}

// GetUserTeam implements UserService.GetUserTeam
func (s *UserServiceImpl) GetUserTeam(ctx context.Context, userID uuid.UUID) (*domain.Team, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.teams.GetByOwner(ctx, userID)
}
