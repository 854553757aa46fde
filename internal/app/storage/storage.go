// Package storage keeps generated documents available for download.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	apperrors "lucidscript/internal/app/errors"
	"lucidscript/internal/app/util/files"
)

// ArtifactStore holds generated files by bare name.
type ArtifactStore interface {
	// Put stores the file at localPath under name.
	Put(ctx context.Context, name, localPath string) error
	// Open returns the stored file and its size. Unknown names return
	// ErrFileNotFound.
	Open(ctx context.Context, name string) (io.ReadCloser, int64, error)
}

// LocalStore keeps files in a directory.
type LocalStore struct {
	dir string
}

// NewLocalStore creates dir when needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := files.EnsureDir(dir); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

// Dir returns the storage directory.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Path returns where name lives on disk.
func (s *LocalStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *LocalStore) Put(ctx context.Context, name, localPath string) error {
	if !files.IsBareFilename(name) {
		return apperrors.Wrapf(apperrors.ErrInvalidFilename, "%q", name)
	}
	dst := s.Path(name)
	if same, _ := samePath(localPath, dst); same {
		return nil
	}

	src, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("failed to copy to %s: %w", dst, err)
	}
	return out.Close()
}

func (s *LocalStore) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	if !files.IsBareFilename(name) {
		return nil, 0, apperrors.Wrapf(apperrors.ErrInvalidFilename, "%q", name)
	}
	f, err := os.Open(s.Path(name))
	if os.IsNotExist(err) {
		return nil, 0, apperrors.Wrapf(apperrors.ErrFileNotFound, "%s", name)
	}
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	if info.IsDir() {
		f.Close()
		return nil, 0, apperrors.Wrapf(apperrors.ErrFileNotFound, "%s", name)
	}
	return f, info.Size(), nil
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}

// Mirrored writes to a local store and copies every file to a remote one.
// Reads fall back to the remote when the local copy is gone.
type Mirrored struct {
	local  ArtifactStore
	remote ArtifactStore
	logger *zap.Logger
}

// NewMirrored combines local and remote. A nil remote behaves like local.
func NewMirrored(local, remote ArtifactStore, logger *zap.Logger) *Mirrored {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mirrored{local: local, remote: remote, logger: logger}
}

// Put stores locally, then mirrors. A mirror failure is logged, not
// returned.
func (m *Mirrored) Put(ctx context.Context, name, localPath string) error {
	if err := m.local.Put(ctx, name, localPath); err != nil {
		return err
	}
	if m.remote == nil {
		return nil
	}
	if err := m.remote.Put(ctx, name, localPath); err != nil {
		m.logger.Warn("mirror upload failed", zap.String("name", name), zap.Error(err))
	}
	return nil
}

func (m *Mirrored) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	rc, size, err := m.local.Open(ctx, name)
	if err == nil || m.remote == nil || !apperrors.Is(err, apperrors.ErrFileNotFound) {
		return rc, size, err
	}
	return m.remote.Open(ctx, name)
}
