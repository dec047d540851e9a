package videos

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/edutube/internal/server/config"
	"github.com/dmitrijs2005/edutube/internal/server/migrations"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Open builds and prepares the backend named by cfg.MetadataStore. SQL
// backends are migrated; redis is pinged.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.MetadataStore {
	case config.MetadataFile, "":
		return NewFileRepository(cfg.MetadataPath), nil

	case config.MetadataSQLite:
		db, err := OpenSQLite(ctx, cfg.MetadataPath)
		if err != nil {
			return nil, err
		}
		return NewSQLiteRepository(db), nil

	case config.MetadataPostgres:
		db, err := OpenPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return NewPostgresRepository(db), nil

	case config.MetadataRedis:
		rdb, err := OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return NewRedisRepository(rdb, DefaultRedisKey), nil

	default:
		return nil, fmt.Errorf("unknown metadata store %q", cfg.MetadataStore)
	}
}

// OpenSQLite opens the database file at path and applies migrations.
// A single connection serializes writers.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db, "sqlite3", migrations.SQLite, "sqlite"); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenPostgres connects through pgx and applies migrations.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	if err := RunMigrations(ctx, db, "pgx", migrations.Postgres, "postgres"); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenRedis parses url and checks the server answers.
func OpenRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// RunMigrations sets up goose with fsys and runs every migration in dir.
func RunMigrations(ctx context.Context, db *sql.DB, dialect string, fsys fs.FS, dir string) error {
	goose.SetBaseFS(fsys)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrate %s: %w", dialect, err)
	}
	return nil
}
