package videos

import (
	"database/sql"
	"errors"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var sqliteDialect = dialect{
	name:   "sqlite",
	list:   `SELECT ` + videoColumns + ` FROM videos ORDER BY seq`,
	get:    `SELECT ` + videoColumns + ` FROM videos WHERE id = ?`,
	insert: `INSERT INTO videos (` + videoColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	lock:   `SELECT seq FROM videos WHERE id = ?`,
	delete: `DELETE FROM videos WHERE seq = ?`,
	encodeTime: func(t time.Time) any {
		return t.UTC().Format(time.RFC3339Nano)
	},
	isDuplicate: func(err error) bool {
		var se *sqlite.Error
		return errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	},
}

// NewSQLiteRepository expects db to be opened with the modernc sqlite driver
// and migrated.
func NewSQLiteRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db, d: sqliteDialect}
}
