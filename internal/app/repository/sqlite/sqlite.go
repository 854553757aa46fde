package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"lucidscript/internal/app/repository"
	"lucidscript/internal/app/util/files"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS exports (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	source        TEXT     NOT NULL,
	style         TEXT     NOT NULL,
	language      TEXT     NOT NULL DEFAULT '',
	duration_sec  REAL,
	translated    BOOLEAN  NOT NULL DEFAULT 0,
	diarized      BOOLEAN  NOT NULL DEFAULT 0,
	docx_filename TEXT     NOT NULL DEFAULT '',
	error_message TEXT     NOT NULL DEFAULT '',
	created_at    DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_exports_created_at ON exports (created_at);`

// SQLiteDB is the default export history store.
type SQLiteDB struct {
	*repository.CommonDB
}

var _ repository.ExportDAO = (*SQLiteDB)(nil)
var _ repository.Scanner = (*SQLiteDB)(nil)

// NewSQLiteDB opens (creating when needed) the database at dbFilePath.
func NewSQLiteDB(dbFilePath string) (*SQLiteDB, error) {
	if dbFilePath != ":memory:" {
		if err := files.EnsureDir(filepath.Dir(dbFilePath)); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// sqlite serializes writers
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	return &SQLiteDB{CommonDB: repository.NewCommonDB(db, "sqlite3")}, nil
}
