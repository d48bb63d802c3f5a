// Package postgres provides Postgres-backed persistence implementations.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JakeFAU/ufc-athletes/internal/service"
)

const defaultTable = "athlete_profiles"

var validTableName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ProfileStoreConfig controls the Postgres connection pool used for scrape records.
type ProfileStoreConfig struct {
	DSN             string
	Table           string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type execCloser interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Close()
}

// ProfileStore writes one row per scrape into Postgres.
type ProfileStore struct {
	pool  execCloser
	table string
}

// NewProfileStore creates a Postgres-backed ProfileStore using the provided config.
func NewProfileStore(ctx context.Context, cfg ProfileStoreConfig) (*ProfileStore, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("db.dsn is required")
	}
	table, err := tableName(cfg.Table)
	if err != nil {
		return nil, err
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &ProfileStore{pool: pool, table: table}, nil
}

// NewProfileStoreWithPool constructs a store from an existing pool (primarily for testing).
func NewProfileStoreWithPool(pool execCloser, table string) (*ProfileStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is required")
	}
	table, err := tableName(table)
	if err != nil {
		return nil, err
	}
	return &ProfileStore{pool: pool, table: table}, nil
}

func tableName(table string) (string, error) {
	if table == "" {
		table = defaultTable
	}
	if !validTableName.MatchString(table) {
		return "", fmt.Errorf("invalid table name %q", table)
	}
	return table, nil
}

// Close releases the underlying pool resources.
func (s *ProfileStore) Close() {
	if s == nil || s.pool == nil {
		return
	}
	s.pool.Close()
}

// EnsureSchema creates the profile table when it does not exist yet.
func (s *ProfileStore) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %[1]s (
	id           uuid PRIMARY KEY,
	slug         text NOT NULL,
	name         text NOT NULL,
	url          text NOT NULL,
	scraped_at   timestamptz NOT NULL,
	weight_class text NOT NULL,
	gender       text NOT NULL,
	rank         text NOT NULL,
	record       text NOT NULL,
	profile      jsonb NOT NULL
);
CREATE INDEX IF NOT EXISTS %[1]s_slug_scraped_at_idx ON %[1]s (slug, scraped_at DESC)`, s.table)
	if _, err := s.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// SaveProfile inserts a scrape record.
func (s *ProfileStore) SaveProfile(ctx context.Context, record service.ProfileRecord) error {
	if s == nil || s.pool == nil {
		return fmt.Errorf("profile store is not configured")
	}
	if record.ID == "" {
		return fmt.Errorf("record id is required")
	}
	profileJSON, err := json.Marshal(record.Fighter)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	query := fmt.Sprintf(`
INSERT INTO %s (
	id,
	slug,
	name,
	url,
	scraped_at,
	weight_class,
	gender,
	rank,
	record,
	profile
) VALUES (
	$1,$2,$3,$4,$5,$6,$7,$8,$9,$10
)`, s.table)

	args := []any{
		record.ID,
		record.Slug,
		record.Name,
		record.URL,
		record.ScrapedAt,
		string(record.WeightClass),
		string(record.Gender),
		record.Rank,
		record.Record.String(),
		profileJSON,
	}
	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}
