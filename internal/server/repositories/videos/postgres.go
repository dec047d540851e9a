package videos

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

var postgresDialect = dialect{
	name:   "postgres",
	list:   `SELECT ` + videoColumns + ` FROM videos ORDER BY seq`,
	get:    `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`,
	insert: `INSERT INTO videos (` + videoColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
	lock:   `SELECT seq FROM videos WHERE id = $1 FOR UPDATE`,
	delete: `DELETE FROM videos WHERE seq = $1`,
	encodeTime: func(t time.Time) any {
		return t.UTC()
	},
	isDuplicate: func(err error) bool {
		var pgErr *pgconn.PgError
		return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
	},
}

// NewPostgresRepository expects db to be opened with the pgx driver and
// migrated.
func NewPostgresRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db, d: postgresDialect}
}
