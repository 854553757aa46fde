package services

import (
	"context"
	"io"

	"go.uber.org/zap"

	"lucidscript/internal/api/errors"
	apperrors "lucidscript/internal/app/errors"
	"lucidscript/internal/app/storage"
	"lucidscript/internal/app/util/files"
)

// DownloadServiceImpl serves documents from an ArtifactStore.
type DownloadServiceImpl struct {
	store  storage.ArtifactStore
	logger *zap.Logger
}

// NewDownloadService creates a new download service
func NewDownloadService(store storage.ArtifactStore, logger *zap.Logger) DownloadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DownloadServiceImpl{store: store, logger: logger}
}

// Open rejects names with path components before touching the store.
func (s *DownloadServiceImpl) Open(ctx context.Context, filename string) (io.ReadCloser, int64, error) {
	if !files.IsBareFilename(filename) {
		return nil, 0, errors.NewBadRequestError(errors.MsgInvalidFilename)
	}

	rc, size, err := s.store.Open(ctx, filename)
	switch {
	case err == nil:
		return rc, size, nil
	case apperrors.Is(err, apperrors.ErrFileNotFound):
		return nil, 0, &errors.APIError{Kind: errors.KindNotFound, Message: errors.MsgFileNotFound}
	case apperrors.Is(err, apperrors.ErrInvalidFilename):
		return nil, 0, errors.NewBadRequestError(errors.MsgInvalidFilename)
	default:
		s.logger.Error("Failed to open document", zap.String("filename", filename), zap.Error(err))
		return nil, 0, errors.NewInternalError("Failed to open document")
	}
}
