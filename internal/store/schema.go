package store

import (
	"database/sql"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - Initial schema: counter(name TEXT PRIMARY KEY, value INTEGER NOT NULL)
const currentSchemaVersion = 1

// Schema declares a target schema version together with the DDL statements
// that create it from nothing.
type Schema struct {
	Version int
	DDL     string
}

// CurrentSchema returns the schema this build of the store expects.
func CurrentSchema() Schema {
	return Schema{Version: currentSchemaVersion, DDL: schemaSQL}
}

// EnsureSchema creates tables if they don't exist and runs migrations up to
// schema.Version. Calling it on an already-current database is a no-op.
func EnsureSchema(db *sql.DB, schema Schema) error {
	if _, err := db.Exec(schema.DDL); err != nil {
		return NewSchemaError("failed to execute schema", err)
	}

	if err := runMigrations(db, schema.Version); err != nil {
		return err
	}

	return nil
}

// runMigrations applies incremental schema migrations based on user_version.
func runMigrations(db *sql.DB, target int) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return NewSchemaError("get user_version", err)
	}

	if version >= target {
		return nil
	}

	// Version 1 is fully covered by the CREATE TABLE IF NOT EXISTS in the
	// DDL; future versions add their migration steps here before the
	// user_version bump.

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", target)); err != nil {
		return NewSchemaError("set user_version", err)
	}

	return nil
}
