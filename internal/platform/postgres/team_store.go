package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/socceronline/soccer-api/internal/domain"
	"github.com/socceronline/soccer-api/internal/platform/logger"
	"github.com/socceronline/soccer-api/internal/store"
)

// PostgresTeamStore implements the store.TeamStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTeamStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTeamStore creates a new PostgreSQL implementation of the
// TeamStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTeamStore(db store.DBTX, logger *slog.Logger) *PostgresTeamStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTeamStore{
		db:     db,
		logger: logger.With(slog.String("component", "team_store")),
	}
}

// Ensure PostgresTeamStore implements store.TeamStore interface
var _ store.TeamStore = (*PostgresTeamStore)(nil)

const teamColumns = `id, name, country, wallet, owner_id, created_at, updated_at`

// Create implements store.TeamStore.Create
func (s *PostgresTeamStore) Create(ctx context.Context, team *domain.Team) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := team.Validate(); err != nil {
		log.Warn("team validation failed during create",
			slog.String("error", err.Error()),
			slog.String("team_id", team.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO teams (id, name, country, wallet, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		team.ID,
		team.Name,
		team.Country,
		team.Wallet,
		team.OwnerID,
		team.CreatedAt,
		team.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("owner already has a team",
				slog.String("team_id", team.ID.String()))
			return store.ErrOwnerHasTeam
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: owner does not exist", store.ErrInvalidEntity)
		}
		log.Error("failed to create team",
			slog.String("error", err.Error()),
			slog.String("team_id", team.ID.String()))
		return err
	}

	log.Info("team created successfully",
		slog.String("team_id", team.ID.String()))
	return nil
}

// GetByID implements store.TeamStore.GetByID
func (s *PostgresTeamStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`
	return s.scanTeam(s.db.QueryRowContext(ctx, query, id))
}

// GetByOwner implements store.TeamStore.GetByOwner
func (s *PostgresTeamStore) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE owner_id = $1`
	return s.scanTeam(s.db.QueryRowContext(ctx, query, ownerID))
}

// List implements store.TeamStore.List
func (s *PostgresTeamStore) List(ctx context.Context) ([]*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams ORDER BY created_at`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var teams []*domain.Team
	for rows.Next() {
		team, err := scanTeamRow(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

// Update implements store.TeamStore.Update
func (s *PostgresTeamStore) Update(ctx context.Context, team *domain.Team) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := team.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE teams
		SET name = $1, country = $2, wallet = $3, owner_id = $4, updated_at = $5
		WHERE id = $6
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		team.Name,
		team.Country,
		team.Wallet,
		team.OwnerID,
		team.UpdatedAt,
		team.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrOwnerHasTeam
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: owner does not exist", store.ErrInvalidEntity)
		}
		log.Error("failed to update team",
			slog.String("error", err.Error()),
			slog.String("team_id", team.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrTeamNotFound
	}
	return nil
}

// Delete implements store.TeamStore.Delete
func (s *PostgresTeamStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrTeamNotFound
	}
	return nil
}

// TotalValue implements store.TeamStore.TotalValue
func (s *PostgresTeamStore) TotalValue(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `SELECT COALESCE(SUM(value), 0) FROM players WHERE team_id = $1`
	var total int64
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// WithTx implements store.TeamStore.WithTx
func (s *PostgresTeamStore) WithTx(tx *sql.Tx) store.TeamStore {
	return &PostgresTeamStore{
		db:     tx,
		logger: s.logger,
	}
}

func (s *PostgresTeamStore) scanTeam(row *sql.Row) (*domain.Team, error) {
	var team domain.Team
	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.Country,
		&team.Wallet,
		&team.OwnerID,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func scanTeamRow(rows *sql.Rows) (*domain.Team, error) {
	var team domain.Team
	err := rows.Scan(
		&team.ID,
		&team.Name,
		&team.Country,
		&team.Wallet,
		&team.OwnerID,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &team, nil
}
