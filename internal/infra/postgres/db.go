package postgres

import (
	"context"
	_ "embed"
	"time"

	"course-booking-api/internal/pkg/config"
	"course-booking-api/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

func Connect(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	pool, err := pgxpool.New(context.Background(), cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to create connection pool")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "failed to ping database")
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}

// EnsureSchema creates the lessons and orders tables if they do not exist.
// There is no migration story here; the schema is two tables and ships with
// the binary.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return errs.Wrap(err, "failed to ensure schema")
	}
	return nil
}
