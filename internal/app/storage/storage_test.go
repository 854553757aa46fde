package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "lucidscript/internal/app/errors"
	"lucidscript/internal/app/testutil"
)

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestLocalStore_PutAndOpen(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(filepath.Join(t.TempDir(), "output"))
	require.NoError(t, err)

	src := testutil.WriteFile(t, t.TempDir(), "doc.docx", "payload")
	require.NoError(t, store.Put(ctx, "lucidscript_00000000.docx", src))

	rc, size, err := store.Open(ctx, "lucidscript_00000000.docx")
	require.NoError(t, err)
	assert.Equal(t, int64(7), size)
	assert.Equal(t, "payload", readAll(t, rc))
}

func TestLocalStore_PutInPlace(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	path := testutil.WriteFile(t, dir, "same.docx", "x")
	require.NoError(t, store.Put(ctx, "same.docx", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestLocalStore_OpenErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	tests := []struct {
		name string
		want error
	}{
		{"missing.docx", apperrors.ErrFileNotFound},
		{"sub", apperrors.ErrFileNotFound},
		{"../etc/passwd", apperrors.ErrInvalidFilename},
		{`..\x.docx`, apperrors.ErrInvalidFilename},
		{"", apperrors.ErrInvalidFilename},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := store.Open(ctx, tt.name)
			assert.True(t, apperrors.Is(err, tt.want), "got %v", err)
		})
	}
}

// fakeStore records puts and serves a fixed set of names.
type fakeStore struct {
	puts    []string
	content map[string]string
	putErr  error
}

func (f *fakeStore) Put(ctx context.Context, name, localPath string) error {
	f.puts = append(f.puts, name)
	return f.putErr
}

func (f *fakeStore) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	c, ok := f.content[name]
	if !ok {
		return nil, 0, apperrors.ErrFileNotFound
	}
	return io.NopCloser(strings.NewReader(c)), int64(len(c)), nil
}

func TestMirrored(t *testing.T) {
	ctx := context.Background()
	local, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	remote := &fakeStore{content: map[string]string{"remote.docx": "from remote"}}
	m := NewMirrored(local, remote, nil)

	src := testutil.WriteFile(t, t.TempDir(), "a.docx", "local copy")
	require.NoError(t, m.Put(ctx, "a.docx", src))
	assert.Equal(t, []string{"a.docx"}, remote.puts)

	rc, _, err := m.Open(ctx, "a.docx")
	require.NoError(t, err)
	assert.Equal(t, "local copy", readAll(t, rc))

	rc, _, err = m.Open(ctx, "remote.docx")
	require.NoError(t, err)
	assert.Equal(t, "from remote", readAll(t, rc))

	_, _, err = m.Open(ctx, "nowhere.docx")
	assert.True(t, apperrors.Is(err, apperrors.ErrFileNotFound))

	_, _, err = m.Open(ctx, "../x")
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidFilename))
}

func TestMirrored_RemoteFailureIgnored(t *testing.T) {
	ctx := context.Background()
	local, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	m := NewMirrored(local, &fakeStore{putErr: errors.New("unreachable")}, nil)

	src := testutil.WriteFile(t, t.TempDir(), "a.docx", "x")
	assert.NoError(t, m.Put(ctx, "a.docx", src))
}

func TestMinioStore(t *testing.T) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("MINIO_ENDPOINT not set")
	}
	ctx := context.Background()
	store, err := NewMinioStore(ctx, MinioConfig{
		Endpoint:  endpoint,
		AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey: os.Getenv("MINIO_SECRET_KEY"),
		Bucket:    "lucidscript-test",
	})
	require.NoError(t, err)

	src := testutil.WriteFile(t, t.TempDir(), "a.docx", "minio payload")
	require.NoError(t, store.Put(ctx, "a.docx", src))

	rc, size, err := store.Open(ctx, "a.docx")
	require.NoError(t, err)
	assert.Equal(t, int64(13), size)
	assert.Equal(t, "minio payload", readAll(t, rc))

	_, _, err = store.Open(ctx, "missing.docx")
	assert.True(t, apperrors.Is(err, apperrors.ErrFileNotFound))
}
