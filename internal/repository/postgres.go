package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfig holds pgxpool settings.
type PostgresConfig struct {
	MaxConns        int32
	MinConns        int32
	MaxConnIdleTime time.Duration
	ConnectTimeout  time.Duration
}

// DefaultPostgresConfig returns the pool settings used by the service.
func DefaultPostgresConfig() PostgresConfig {
	return PostgresConfig{
		MaxConns:        10,
		MinConns:        1,
		MaxConnIdleTime: 10 * time.Minute,
		ConnectTimeout:  10 * time.Second,
	}
}

const truckClassesSchema = `
CREATE TABLE IF NOT EXISTS truck_classes (
	id                BIGSERIAL PRIMARY KEY,
	name              VARCHAR(100) NOT NULL UNIQUE,
	base_km_per_liter DOUBLE PRECISION NOT NULL CHECK (base_km_per_liter >= 1.0),
	loaded_multiplier DOUBLE PRECISION NOT NULL DEFAULT 0.85
		CHECK (loaded_multiplier >= 0.5 AND loaded_multiplier <= 1.0),
	is_active         BOOLEAN NOT NULL DEFAULT TRUE,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS truck_classes_active_name_idx ON truck_classes (is_active, name);
`

// PostgresDB wraps a pgx connection pool.
type PostgresDB struct {
	Pool *pgxpool.Pool
}

// NewPostgresDB connects to PostgreSQL with default pool settings.
func NewPostgresDB(ctx context.Context, dsn string) (*PostgresDB, error) {
	return NewPostgresDBWithConfig(ctx, dsn, DefaultPostgresConfig())
}

// NewPostgresDBWithConfig connects to PostgreSQL and verifies the connection.
func NewPostgresDBWithConfig(ctx context.Context, dsn string, cfg PostgresConfig) (*PostgresDB, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	if cfg.ConnectTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return &PostgresDB{Pool: pool}, nil
}

// EnsureSchema creates the truck_classes table and its index if missing.
func (p *PostgresDB) EnsureSchema(ctx context.Context) error {
	if _, err := p.Pool.Exec(ctx, truckClassesSchema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// HealthCheck verifies the pool can reach the server.
func (p *PostgresDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return p.Pool.Ping(ctx)
}

// Close closes every connection in the pool.
func (p *PostgresDB) Close() {
	p.Pool.Close()
}
