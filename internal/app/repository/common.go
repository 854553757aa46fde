package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	apperrors "lucidscript/internal/app/errors"
	"lucidscript/internal/app/model"
)

// CommonDB provides the export queries shared by every SQL dialect.
type CommonDB struct {
	db           *sql.DB
	driverName   string
	placeholders PlaceholderFunc
}

// PlaceholderFunc generates parameter placeholders for different SQL dialects
type PlaceholderFunc func(n int) string

// NewCommonDB creates a new CommonDB instance
func NewCommonDB(db *sql.DB, driverName string) *CommonDB {
	var placeholders PlaceholderFunc

	switch driverName {
	case "postgres":
		placeholders = func(n int) string { return fmt.Sprintf("$%d", n) }
	default:
		placeholders = func(n int) string { return "?" }
	}

	return &CommonDB{
		db:           db,
		driverName:   driverName,
		placeholders: placeholders,
	}
}

// DB returns the underlying handle.
func (c *CommonDB) DB() *sql.DB {
	return c.db
}

// Close closes the database connection
func (c *CommonDB) Close() error {
	return c.db.Close()
}

const exportColumns = `id, source, style, language, duration_sec, translated, diarized, docx_filename, error_message, created_at`

// Record inserts rec and returns its id.
func (c *CommonDB) Record(ctx context.Context, rec *model.ExportRecord) (int64, error) {
	var duration sql.NullFloat64
	if rec.DurationSec != nil {
		duration = sql.NullFloat64{Float64: *rec.DurationSec, Valid: true}
	}

	p := c.placeholders
	query := fmt.Sprintf(
		`INSERT INTO exports (source, style, language, duration_sec, translated, diarized, docx_filename, error_message, created_at)
		 VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s)`,
		p(1), p(2), p(3), p(4), p(5), p(6), p(7), p(8), p(9),
	)
	args := []interface{}{
		rec.Source, rec.Style, rec.Language, duration, rec.Translated, rec.Diarized,
		rec.DocxFilename, rec.ErrorMessage, rec.CreatedAt,
	}

	if c.driverName == "postgres" {
		var id int64
		if err := c.db.QueryRowContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, apperrors.Tag(apperrors.ErrInsertFailed, err)
		}
		return id, nil
	}

	res, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, apperrors.Tag(apperrors.ErrInsertFailed, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, apperrors.Tag(apperrors.ErrInsertFailed, err)
	}
	return id, nil
}

// Get returns one record by id.
func (c *CommonDB) Get(ctx context.Context, id int64) (*model.ExportRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM exports WHERE id = %s`, exportColumns, c.placeholders(1))
	rec, err := scanRecord(c.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("export", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, apperrors.Tag(apperrors.ErrQueryFailed, err)
	}
	return rec, nil
}

// List returns up to limit records, newest first.
func (c *CommonDB) List(ctx context.Context, limit int) ([]model.ExportRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM exports ORDER BY created_at DESC, id DESC LIMIT %s`,
		exportColumns, c.placeholders(1))
	return c.query(ctx, query, limit)
}

// ListAfter returns up to limit records with id > afterID in id order.
func (c *CommonDB) ListAfter(ctx context.Context, afterID int64, limit int) ([]model.ExportRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM exports WHERE id > %s ORDER BY id LIMIT %s`,
		exportColumns, c.placeholders(1), c.placeholders(2))
	return c.query(ctx, query, afterID, limit)
}

func (c *CommonDB) query(ctx context.Context, query string, args ...interface{}) ([]model.ExportRecord, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Tag(apperrors.ErrQueryFailed, err)
	}
	defer rows.Close()

	records := make([]model.ExportRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Tag(apperrors.ErrQueryFailed, err)
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*model.ExportRecord, error) {
	var (
		rec      model.ExportRecord
		duration sql.NullFloat64
	)
	err := row.Scan(&rec.ID, &rec.Source, &rec.Style, &rec.Language, &duration,
		&rec.Translated, &rec.Diarized, &rec.DocxFilename, &rec.ErrorMessage, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	if duration.Valid {
		d := duration.Float64
		rec.DurationSec = &d
	}
	return &rec, nil
}
