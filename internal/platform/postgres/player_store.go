package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/socceronline/soccer-api/internal/domain"
	"github.com/socceronline/soccer-api/internal/platform/logger"
	"github.com/socceronline/soccer-api/internal/store"
)

// PostgresPlayerStore implements the store.PlayerStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPlayerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPlayerStore creates a new PostgreSQL implementation of the
// PlayerStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPlayerStore(db store.DBTX, logger *slog.Logger) *PostgresPlayerStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPlayerStore{
		db:     db,
		logger: logger.With(slog.String("component", "player_store")),
	}
}

// Ensure PostgresPlayerStore implements store.PlayerStore interface
var _ store.PlayerStore = (*PostgresPlayerStore)(nil)

const playerColumns = `id, name, lastname, country, position, age, value, team_id, listed, price, created_at, updated_at`

// Create implements store.PlayerStore.Create
func (s *PostgresPlayerStore) Create(ctx context.Context, player *domain.Player) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := player.Validate(); err != nil {
		log.Warn("player validation failed during create",
			slog.String("error", err.Error()),
			slog.String("player_id", player.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO players (id, name, lastname, country, position, age, value, team_id, listed, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		player.ID,
		player.Name,
		player.LastName,
		player.Country,
		string(player.Position),
		player.Age,
		player.Value,
		player.TeamID,
		player.Listed,
		player.Price,
		player.CreatedAt,
		player.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: team does not exist", store.ErrInvalidEntity)
		}
		log.Error("failed to create player",
			slog.String("error", err.Error()),
			slog.String("player_id", player.ID.String()))
		return err
	}

	log.Info("player created successfully",
		slog.String("player_id", player.ID.String()))
	return nil
}

// GetByID implements store.PlayerStore.GetByID
func (s *PostgresPlayerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`
	row := s.db.QueryRowContext(ctx, query, id)

	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPlayerNotFound
		}
		return nil, err
	}
	return player, nil
}

// List implements store.PlayerStore.List
func (s *PostgresPlayerStore) List(ctx context.Context) ([]*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players ORDER BY created_at`
	return s.queryPlayers(ctx, query)
}

// ListByTeam implements store.PlayerStore.ListByTeam
func (s *PostgresPlayerStore) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE team_id = $1 ORDER BY created_at`
	return s.queryPlayers(ctx, query, teamID)
}

// Update implements store.PlayerStore.Update
func (s *PostgresPlayerStore) Update(ctx context.Context, player *domain.Player) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := player.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE players
		SET name = $1, lastname = $2, country = $3, position = $4, age = $5,
		    value = $6, team_id = $7, listed = $8, price = $9, updated_at = $10
		WHERE id = $11
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		player.Name,
		player.LastName,
		player.Country,
		string(player.Position),
		player.Age,
		player.Value,
		player.TeamID,
		player.Listed,
		player.Price,
		player.UpdatedAt,
		player.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: team does not exist", store.ErrInvalidEntity)
		}
		log.Error("failed to update player",
			slog.String("error", err.Error()),
			slog.String("player_id", player.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrPlayerNotFound
	}
	return nil
}

// Delete implements store.PlayerStore.Delete
func (s *PostgresPlayerStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrPlayerNotFound
	}
	return nil
}

// ListMarket implements store.PlayerStore.ListMarket
// The WHERE clause is assembled from the present criteria, mirroring the AND
// semantics of the market contract. Results are ordered by ascending player
// ID so the enumeration is deterministic for a fixed data set.
func (s *PostgresPlayerStore) ListMarket(ctx context.Context, criteria store.MarketCriteria) ([]*domain.Player, error) {
	query := `
		SELECT p.id, p.name, p.lastname, p.country, p.position, p.age, p.value,
		       p.team_id, p.listed, p.price, p.created_at, p.updated_at
		FROM players p
		LEFT JOIN teams t ON p.team_id = t.id
		WHERE p.listed = TRUE
	`
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if criteria.TeamName != "" {
		query += ` AND t.name = ` + arg(criteria.TeamName)
	}
	if criteria.Country != "" {
		query += ` AND p.country = ` + arg(criteria.Country)
	}
	if criteria.Name != "" {
		pattern := "%" + criteria.Name + "%"
		placeholder := arg(pattern)
		query += ` AND (p.name ILIKE ` + placeholder + ` OR p.lastname ILIKE ` + placeholder + `)`
	}
	if criteria.MinPrice != nil {
		query += ` AND p.price >= ` + arg(*criteria.MinPrice)
	}
	if criteria.MaxPrice != nil {
		query += ` AND p.price <= ` + arg(*criteria.MaxPrice)
	}

	query += ` ORDER BY p.id`

	return s.queryPlayers(ctx, query, args...)
}

// ClearListing implements store.PlayerStore.ClearListing
// The listed -> unlisted flip is a compare-and-swap: the row is only touched
// while it is still listed, so of two concurrent purchases exactly one
// succeeds here and the other observes ErrPlayerNotListed.
func (s *PostgresPlayerStore) ClearListing(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE players
		SET listed = FALSE, updated_at = $1
		WHERE id = $2 AND listed = TRUE
	`
	result, err := s.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to clear player listing",
			slog.String("error", err.Error()),
			slog.String("player_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrPlayerNotListed
	}
	return nil
}

// WithTx implements store.PlayerStore.WithTx
func (s *PostgresPlayerStore) WithTx(tx *sql.Tx) store.PlayerStore {
	return &PostgresPlayerStore{
		db:     tx,
		logger: s.logger,
	}
}

func (s *PostgresPlayerStore) queryPlayers(ctx context.Context, query string, args ...any) ([]*domain.Player, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var players []*domain.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (*domain.Player, error) {
	var player domain.Player
	var position string
	err := row.Scan(
		&player.ID,
		&player.Name,
		&player.LastName,
		&player.Country,
		&position,
		&player.Age,
		&player.Value,
		&player.TeamID,
		&player.Listed,
		&player.Price,
		&player.CreatedAt,
		&player.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	player.Position = domain.Position(position)
	return &player, nil
}
