package db

import "database/sql"

// SchemaSQL is the audit-store schema. Runs are append-only: rows are
// inserted after every execution and never updated or deleted.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	parent_type TEXT NOT NULL CHECK(parent_type IN ('resources', 'archival_objects')),
	parent_id INTEGER NOT NULL,
	strategy TEXT NOT NULL CHECK(strategy IN ('individual', 'bulk')),
	record_count INTEGER NOT NULL,
	succeeded INTEGER NOT NULL,
	failed INTEGER NOT NULL,
	started_at DATETIME NOT NULL,
	finished_at DATETIME NOT NULL
);
`

// InitSchema applies the schema to the given connection.
func InitSchema(conn *sql.DB) error {
	_, err := conn.Exec(SchemaSQL)
	return err
}
