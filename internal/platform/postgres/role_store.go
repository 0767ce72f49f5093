package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/socceronline/soccer-api/internal/domain"
	"github.com/socceronline/soccer-api/internal/store"
)

// PostgresRoleStore implements the store.RoleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresRoleStore struct {
	db store.DBTX
}

// NewPostgresRoleStore creates a new PostgreSQL implementation of the
// RoleStore interface.
func NewPostgresRoleStore(db store.DBTX) *PostgresRoleStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	return &PostgresRoleStore{db: db}
}

// Ensure PostgresRoleStore implements store.RoleStore interface
var _ store.RoleStore = (*PostgresRoleStore)(nil)

const roleColumns = `id, name, administrator, "default"`

// GetByID implements store.RoleStore.GetByID
func (s *PostgresRoleStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE id = $1`
	return s.scanRole(s.db.QueryRowContext(ctx, query, id))
}

// GetByName implements store.RoleStore.GetByName
func (s *PostgresRoleStore) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE name = $1`
	return s.scanRole(s.db.QueryRowContext(ctx, query, name))
}

// GetDefault implements store.RoleStore.GetDefault
func (s *PostgresRoleStore) GetDefault(ctx context.Context) (*domain.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE "default" = TRUE LIMIT 1`
	return s.scanRole(s.db.QueryRowContext(ctx, query))
}

// List implements store.RoleStore.List
func (s *PostgresRoleStore) List(ctx context.Context) ([]*domain.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles ORDER BY name`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var roles []*domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Administrator, &role.Default); err != nil {
			return nil, err
		}
		roles = append(roles, &role)
	}
	return roles, rows.Err()
}

func (s *PostgresRoleStore) scanRole(row *sql.Row) (*domain.Role, error) {
	var role domain.Role
	err := row.Scan(&role.ID, &role.Name, &role.Administrator, &role.Default)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}
