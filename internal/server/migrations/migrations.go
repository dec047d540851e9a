// Package migrations embeds the goose migrations of the SQL metadata stores.
package migrations

import "embed"

// Postgres holds migrations for the pgx dialect, rooted at "postgres".
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SQLite holds migrations for the sqlite3 dialect, rooted at "sqlite".
//
//go:embed sqlite/*.sql
var SQLite embed.FS
