package datastore

import (
	"context"
	"errors"
	"time"

	"github.com/felfel/go-felfel/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type CockroachClient struct {
	pool *pgxpool.Pool
}

func NewCockroachClient(ctx context.Context, config *CockroachConfig) (*CockroachClient, error) {
	if !config.Enabled {
		return &CockroachClient{}, nil
	}
	poolConfig, err := pgxpool.ParseConfig(config.GetURL())
	if err != nil {
		logger.Log.Error().Caller().Err(err).Msg("failed to parse cockroach url")
		return nil, ErrNameStoreConnection
	}
	if config.MaxConns > 0 {
		poolConfig.MaxConns = config.MaxConns
	}
	if config.MaxConnLifetime > 0 {
		poolConfig.MaxConnLifetime = config.MaxConnLifetime
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Log.Error().Caller().Err(err).Msg("failed to connect to cockroach")
		return nil, ErrNameStoreConnection
	}
	return &CockroachClient{
		pool: pool,
	}, nil
}

func (c *CockroachClient) Reserve(ctx context.Context, name string) (*ReservedName, error) {
	if c.pool == nil {
		return nil, ErrNameStoreNotEnabled
	}
	sql := `
		INSERT INTO felfel.names (name, created_at)
		VALUES ($1, $2)
	`
	createdAt := time.Now().UTC()
	if _, err := c.pool.Exec(ctx, sql, name, createdAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrNameStoreDuplicate
		}
		logger.Log.Error().Caller().Err(err).Msg("failed to exec on cockroach")
		return nil, ErrNameStoreInsert
	}
	logger.Log.Debug().Msgf("reserved '%s' in name store", name)
	return &ReservedName{
		Name:      name,
		CreatedAt: createdAt,
	}, nil
}

func (c *CockroachClient) GetName(ctx context.Context, name string) (*ReservedName, error) {
	if c.pool == nil {
		return nil, ErrNameStoreNotEnabled
	}
	sql := `
		SELECT created_at FROM felfel.names
		WHERE name=$1
	`
	var createdAt time.Time
	if err := c.pool.QueryRow(ctx, sql, name).Scan(&createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNameStoreNotFound
		}
		logger.Log.Error().Caller().Err(err).Msg("failed to query cockroach")
		return nil, ErrNameStoreSelect
	}
	return &ReservedName{
		Name:      name,
		CreatedAt: createdAt,
	}, nil
}

func (c *CockroachClient) Close(ctx context.Context) error {
	if c.pool == nil {
		return nil
	}
	c.pool.Close()
	return nil
}
