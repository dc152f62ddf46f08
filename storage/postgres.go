package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"smartquote/store"
)

// ConnectPostgres opens and pings a connection pool for dsn.
func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	config.MaxConns = 4
	config.MinConns = 1
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// PostgresSnapshotter keeps the snapshot as a JSONB row in app_state.
type PostgresSnapshotter struct {
	db        *pgxpool.Pool
	namespace string
}

// NewPostgresSnapshotter creates the app_state table if needed.
func NewPostgresSnapshotter(ctx context.Context, db *pgxpool.Pool, namespace string) (*PostgresSnapshotter, error) {
	schema := `
		CREATE TABLE IF NOT EXISTS app_state (
			namespace  TEXT PRIMARY KEY,
			state      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := db.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("init app_state schema: %w", err)
	}
	return &PostgresSnapshotter{db: db, namespace: namespace}, nil
}

func (p *PostgresSnapshotter) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := p.db.QueryRow(ctx, `SELECT state FROM app_state WHERE namespace = $1`, p.namespace).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("load app_state %q: %w", p.namespace, err)
	}
	return data, nil
}

func (p *PostgresSnapshotter) Save(ctx context.Context, data []byte) error {
	query := `
		INSERT INTO app_state (namespace, state, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (namespace)
		DO UPDATE SET state = EXCLUDED.state, updated_at = now()
	`
	if _, err := p.db.Exec(ctx, query, p.namespace, data); err != nil {
		return fmt.Errorf("save app_state %q: %w", p.namespace, err)
	}
	return nil
}
