package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/socceronline/soccer-api/internal/domain"
	"github.com/socceronline/soccer-api/internal/store"
)

// In-memory store fakes for service tests. WithTx returns the same store, so
// transactional code paths operate on the same state.

type fakeUserStore struct {
	users     map[uuid.UUID]*domain.User
	createErr error
}

func newFakeUserStore(users ...*domain.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[uuid.UUID]*domain.User)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return store.ErrEmailExists
		}
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *fakeUserStore) List(ctx context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *fakeUserStore) Update(ctx context.Context, user *domain.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return store.ErrUserNotFound
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *fakeUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return s
}

type fakeRoleStore struct {
	roles map[uuid.UUID]*domain.Role
}

func newFakeRoleStore() (*fakeRoleStore, *domain.Role, *domain.Role) {
	admin := &domain.Role{ID: uuid.New(), Name: domain.RoleNameAdministrator, Administrator: true}
	user := &domain.Role{ID: uuid.New(), Name: domain.RoleNameUser, Default: true}
	return &fakeRoleStore{roles: map[uuid.UUID]*domain.Role{
		admin.ID: admin,
		user.ID:  user,
	}}, admin, user
}

func (s *fakeRoleStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Role, error) {
	role, ok := s.roles[id]
	if !ok {
		return nil, store.ErrRoleNotFound
	}
	return role, nil
}

func (s *fakeRoleStore) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	for _, role := range s.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, store.ErrRoleNotFound
}

func (s *fakeRoleStore) GetDefault(ctx context.Context) (*domain.Role, error) {
	for _, role := range s.roles {
		if role.Default {
			return role, nil
		}
	}
	return nil, store.ErrRoleNotFound
}

func (s *fakeRoleStore) List(ctx context.Context) ([]*domain.Role, error) {
	out := make([]*domain.Role, 0, len(s.roles))
	for _, r := range s.roles {
		out = append(out, r)
	}
	return out, nil
}

type fakeTeamStore struct {
	teams map[uuid.UUID]*domain.Team

	totals map[uuid.UUID]int64
}

func newFakeTeamStore(teams ...*domain.Team) *fakeTeamStore {
	s := &fakeTeamStore{
		teams:  make(map[uuid.UUID]*domain.Team),
		totals: make(map[uuid.UUID]int64),
	}
	for _, t := range teams {
		s.teams[t.ID] = t
	}
	return s
}

func (s *fakeTeamStore) Create(ctx context.Context, team *domain.Team) error {
	if team.OwnerID != nil {
		for _, existing := range s.teams {
			if existing.OwnerID != nil && *existing.OwnerID == *team.OwnerID {
				return store.ErrOwnerHasTeam
			}
		}
	}
	copied := *team
	s.teams[team.ID] = &copied
	return nil
}

func (s *fakeTeamStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	team, ok := s.teams[id]
	if !ok {
		return nil, store.ErrTeamNotFound
	}
	copied := *team
	return &copied, nil
}

func (s *fakeTeamStore) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Team, error) {
	for _, team := range s.teams {
		if team.OwnerID != nil && *team.OwnerID == ownerID {
			copied := *team
			return &copied, nil
		}
	}
	return nil, store.ErrTeamNotFound
}

func (s *fakeTeamStore) List(ctx context.Context) ([]*domain.Team, error) {
	out := make([]*domain.Team, 0, len(s.teams))
	for _, t := range s.teams {
		out = append(out, t)
	}
	return out, nil
}

func (s *fakeTeamStore) Update(ctx context.Context, team *domain.Team) error {
	if _, ok := s.teams[team.ID]; !ok {
		return store.ErrTeamNotFound
	}
	copied := *team
	s.teams[team.ID] = &copied
	return nil
}

func (s *fakeTeamStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.teams[id]; !ok {
		return store.ErrTeamNotFound
	}
	delete(s.teams, id)
	return nil
}

func (s *fakeTeamStore) TotalValue(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.totals[id], nil
}

func (s *fakeTeamStore) WithTx(tx *sql.Tx) store.TeamStore {
	return s
}

type fakePlayerStore struct {
	players map[uuid.UUID]*domain.Player
}

func newFakePlayerStore(players ...*domain.Player) *fakePlayerStore {
	s := &fakePlayerStore{players: make(map[uuid.UUID]*domain.Player)}
	for _, p := range players {
		s.players[p.ID] = p
	}
	return s
}

func (s *fakePlayerStore) Create(ctx context.Context, player *domain.Player) error {
	copied := *player
	s.players[player.ID] = &copied
	return nil
}

func (s *fakePlayerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	player, ok := s.players[id]
	if !ok {
		return nil, store.ErrPlayerNotFound
	}
	copied := *player
	return &copied, nil
}

func (s *fakePlayerStore) List(ctx context.Context) ([]*domain.Player, error) {
	out := make([]*domain.Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, p)
	}
	return out, nil
}

func (s *fakePlayerStore) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*domain.Player, error) {
	var out []*domain.Player
	for _, p := range s.players {
		if p.TeamID != nil && *p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakePlayerStore) Update(ctx context.Context, player *domain.Player) error {
	if _, ok := s.players[player.ID]; !ok {
		return store.ErrPlayerNotFound
	}
	copied := *player
	s.players[player.ID] = &copied
	return nil
}

func (s *fakePlayerStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.players[id]; !ok {
		return store.ErrPlayerNotFound
	}
	delete(s.players, id)
	return nil
}

func (s *fakePlayerStore) ListMarket(ctx context.Context, criteria store.MarketCriteria) ([]*domain.Player, error) {
	var out []*domain.Player
	for _, p := range s.players {
		if p.Listed {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakePlayerStore) ClearListing(ctx context.Context, id uuid.UUID) error {
	player, ok := s.players[id]
	if !ok || !player.Listed {
		return store.ErrPlayerNotListed
	}
	player.Listed = false
	return nil
}

func (s *fakePlayerStore) WithTx(tx *sql.Tx) store.PlayerStore {
	return s
}

// fakeHasher marks passwords instead of hashing them so assertions can see
// through the transformation.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

type fakeVerifier struct{}

func (fakeVerifier) Compare(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errMismatch
	}
	return nil
}

var errMismatch = &domain.ValidationError{Field: "password", Message: "mismatch", Err: domain.ErrInvalidPassword}
