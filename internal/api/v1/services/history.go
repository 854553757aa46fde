package services

import (
	"context"
	"strconv"

	"github.com/samber/lo"

	"lucidscript/internal/api/errors"
	"lucidscript/internal/api/v1/dto"
	apperrors "lucidscript/internal/app/errors"
	"lucidscript/internal/app/model"
	"lucidscript/internal/app/repository"
)

// HistoryServiceImpl reads export history from an ExportDAO.
type HistoryServiceImpl struct {
	repo repository.ExportDAO
}

// NewHistoryService creates a new history service
func NewHistoryService(repo repository.ExportDAO) HistoryService {
	return &HistoryServiceImpl{repo: repo}
}

func (s *HistoryServiceImpl) ListExports(ctx context.Context, query dto.ListExportsQuery) (*dto.ListExportsResponse, error) {
	records, err := s.repo.List(ctx, query.EffectiveLimit())
	if err != nil {
		return nil, errors.NewInternalError("Failed to list exports")
	}

	exports := lo.Map(records, func(r model.ExportRecord, _ int) dto.ExportRecordResponse {
		return dto.FromExportRecord(r)
	})
	return &dto.ListExportsResponse{Exports: exports, Count: len(exports)}, nil
}

func (s *HistoryServiceImpl) GetExport(ctx context.Context, id int64) (*dto.ExportRecordResponse, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("Export " + strconv.FormatInt(id, 10))
		}
		return nil, errors.NewInternalError("Failed to get export")
	}

	resp := dto.FromExportRecord(*record)
	return &resp, nil
}
