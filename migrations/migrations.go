// Package migrations embeds the schema for the relational item stores.
package migrations

import "embed"

// FS holds the per-driver schema files.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

// SQLite returns the initial SQLite schema.
func SQLite() (string, error) {
	data, err := FS.ReadFile("sqlite/001_initial_schema.up.sql")
	return string(data), err
}

// Postgres returns the initial Postgres schema.
func Postgres() (string, error) {
	data, err := FS.ReadFile("postgres/001_initial_schema.up.sql")
	return string(data), err
}
