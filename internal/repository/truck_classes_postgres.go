package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/guttosm/fuel-service/internal/domain/model"
)

const (
	truckClassColumns = `id, name, base_km_per_liter, loaded_multiplier, is_active, created_at, updated_at`

	pgUniqueViolation = "23505"
)

// PostgresTruckClassRepository stores truck classes in PostgreSQL.
type PostgresTruckClassRepository struct {
	db *PostgresDB
}

// NewPostgresTruckClassRepository creates a new PostgreSQL truck class repository.
func NewPostgresTruckClassRepository(db *PostgresDB) *PostgresTruckClassRepository {
	return &PostgresTruckClassRepository{db: db}
}

// List returns truck classes ordered by name.
func (r *PostgresTruckClassRepository) List(ctx context.Context, activeOnly bool) ([]model.TruckClass, error) {
	query := `SELECT ` + truckClassColumns + ` FROM truck_classes`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []model.TruckClass{}
	for rows.Next() {
		tc, err := scanTruckClass(rows)
		if err != nil {
			return nil, err
		}
		classes = append(classes, *tc)
	}
	return classes, rows.Err()
}

// GetByID returns the truck class with the given numeric id. Non-numeric ids match nothing.
func (r *PostgresTruckClassRepository) GetByID(ctx context.Context, id string) (*model.TruckClass, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, nil
	}
	return r.queryOne(ctx, `SELECT `+truckClassColumns+` FROM truck_classes WHERE id = $1`, n)
}

// GetByName returns the truck class with the given name.
func (r *PostgresTruckClassRepository) GetByName(ctx context.Context, name string) (*model.TruckClass, error) {
	return r.queryOne(ctx, `SELECT `+truckClassColumns+` FROM truck_classes WHERE name = $1`, strings.TrimSpace(name))
}

// Create inserts a truck class and returns the stored row.
func (r *PostgresTruckClassRepository) Create(ctx context.Context, tc *model.TruckClass) (*model.TruckClass, error) {
	row := r.db.Pool.QueryRow(ctx, `
		INSERT INTO truck_classes (name, base_km_per_liter, loaded_multiplier, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING `+truckClassColumns,
		tc.Name, tc.BaseKmPerLiter, tc.LoadedMultiplier, tc.IsActive,
	)
	created, err := scanTruckClass(row)
	if err != nil {
		return nil, mapPgError(err)
	}
	return created, nil
}

// Update replaces the mutable fields of an existing truck class.
// Returns nil, nil when the id does not exist.
func (r *PostgresTruckClassRepository) Update(ctx context.Context, tc *model.TruckClass) (*model.TruckClass, error) {
	n, err := strconv.ParseInt(tc.ID, 10, 64)
	if err != nil {
		return nil, nil
	}

	updated, err := r.queryOne(ctx, `
		UPDATE truck_classes
		SET name = $2, base_km_per_liter = $3, loaded_multiplier = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING `+truckClassColumns,
		n, tc.Name, tc.BaseKmPerLiter, tc.LoadedMultiplier, tc.IsActive,
	)
	if err != nil {
		return nil, mapPgError(err)
	}
	return updated, nil
}

// Ping checks the underlying pool.
func (r *PostgresTruckClassRepository) Ping(ctx context.Context) error {
	return r.db.HealthCheck(ctx)
}

func (r *PostgresTruckClassRepository) queryOne(ctx context.Context, query string, args ...any) (*model.TruckClass, error) {
	tc, err := scanTruckClass(r.db.Pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return tc, nil
}

func scanTruckClass(row pgx.Row) (*model.TruckClass, error) {
	var (
		id int64
		tc model.TruckClass
	)
	if err := row.Scan(&id, &tc.Name, &tc.BaseKmPerLiter, &tc.LoadedMultiplier, &tc.IsActive, &tc.CreatedAt, &tc.UpdatedAt); err != nil {
		return nil, err
	}
	tc.ID = strconv.FormatInt(id, 10)
	return &tc, nil
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicateName
	}
	return err
}
