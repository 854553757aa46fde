package pg

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"lucidscript/internal/app/repository"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS exports (
	id            BIGSERIAL PRIMARY KEY,
	source        TEXT             NOT NULL,
	style         TEXT             NOT NULL,
	language      TEXT             NOT NULL DEFAULT '',
	duration_sec  DOUBLE PRECISION,
	translated    BOOLEAN          NOT NULL DEFAULT FALSE,
	diarized      BOOLEAN          NOT NULL DEFAULT FALSE,
	docx_filename TEXT             NOT NULL DEFAULT '',
	error_message TEXT             NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ      NOT NULL
)`

// PostgresDB stores export history in PostgreSQL.
type PostgresDB struct {
	*repository.CommonDB
}

var _ repository.ExportDAO = (*PostgresDB)(nil)
var _ repository.Scanner = (*PostgresDB)(nil)

// NewPostgresDB opens a connection pool for dsn. sql.Open does not dial;
// call Migrate to verify the connection and create the schema.
func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return newWithDB(db), nil
}

func newWithDB(db *sql.DB) *PostgresDB {
	return &PostgresDB{CommonDB: repository.NewCommonDB(db, "postgres")}
}

// Migrate creates the exports table when missing.
func (p *PostgresDB) Migrate(ctx context.Context) error {
	if _, err := p.DB().ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}
