package storage

import (
	"context"
	"database/sql"
)

// decisionsDDL creates the audit table on a fresh database. Idempotent, so
// it runs unconditionally at startup.
const decisionsDDL = `
CREATE TABLE IF NOT EXISTS decisions (
	id             TEXT PRIMARY KEY,
	kind           TEXT NOT NULL,
	subject        TEXT NOT NULL,
	accepted       BOOLEAN NOT NULL,
	unit_price     DOUBLE PRECISION NOT NULL,
	quantity       BIGINT NOT NULL,
	rounds         INTEGER NOT NULL,
	payment_status TEXT NOT NULL,
	payment_ref    TEXT,
	created_at     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS decisions_created_at_idx ON decisions (created_at DESC);
`

// EnsureSchema creates the decisions table and its index if they do not
// exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, decisionsDDL)
	return err
}
