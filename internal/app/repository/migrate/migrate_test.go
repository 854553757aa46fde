package migrate

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucidscript/internal/app/model"
	"lucidscript/internal/app/repository/sqlite"
)

func openDB(t *testing.T, name string) *sqlite.SQLiteDB {
	t.Helper()
	db, err := sqlite.NewSQLiteDB(filepath.Join(t.TempDir(), name))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCopy(t *testing.T) {
	ctx := context.Background()
	src := openDB(t, "src.db")
	dst := openDB(t, "dst.db")

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := src.Record(ctx, &model.ExportRecord{
			Source:       model.SourceUpload,
			Style:        model.StyleStandard,
			Language:     "en",
			DocxFilename: "lucidscript_0000000" + string(rune('0'+i)) + ".docx",
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	lastID, err := Copy(ctx, src, dst, 0, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), lastID)

	copied, err := dst.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, copied, 5)
	assert.Equal(t, "lucidscript_00000004.docx", copied[0].DocxFilename)

	lastID, err = Copy(ctx, src, dst, lastID, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), lastID)

	copied, _ = dst.List(ctx, 10)
	assert.Len(t, copied, 5)
}
