package services

import (
	"context"
	"mime/multipart"
	"strings"

	"go.uber.org/zap"

	"lucidscript/internal/api/errors"
	"lucidscript/internal/api/v1/dto"
	"lucidscript/internal/app/converter"
)

// ExportServiceImpl implements ExportService on top of a Pipeline.
type ExportServiceImpl struct {
	pipeline Pipeline
	logger   *zap.Logger
}

// NewExportService creates a new export service
func NewExportService(pipeline Pipeline, logger *zap.Logger) ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportServiceImpl{pipeline: pipeline, logger: logger}
}

func (s *ExportServiceImpl) Transcribe(ctx context.Context, file *multipart.FileHeader) (*dto.TranscribeResponse, error) {
	f, err := file.Open()
	if err != nil {
		return nil, errors.NewBadRequestError("Unable to read uploaded file")
	}
	defer f.Close()

	text, err := s.pipeline.Transcribe(ctx, f, file.Filename)
	if err != nil {
		s.logger.Error("Transcription failed", zap.String("filename", file.Filename), zap.Error(err))
		return nil, errors.FromPipelineError(err)
	}
	return &dto.TranscribeResponse{Transcript: text}, nil
}

func (s *ExportServiceImpl) FormatDocx(ctx context.Context, req *dto.FormatDocxRequest) (*dto.FormatDocxResponse, error) {
	path, err := s.pipeline.FormatDocx(ctx, *req.RawText)
	if err != nil {
		s.logger.Error("Document formatting failed", zap.Error(err))
		return nil, errors.NewInternalError("Failed to create document: " + err.Error())
	}
	return &dto.FormatDocxResponse{DocxPath: path}, nil
}

func (s *ExportServiceImpl) ExportStandard(ctx context.Context, form *dto.ExportForm) (*dto.ExportResponse, error) {
	return s.export(ctx, form, s.pipeline.ExportStandard)
}

func (s *ExportServiceImpl) ExportDeposition(ctx context.Context, form *dto.ExportForm) (*dto.ExportResponse, error) {
	return s.export(ctx, form, s.pipeline.ExportDeposition)
}

type exportFunc func(ctx context.Context, in converter.Input) (*converter.Result, error)

func (s *ExportServiceImpl) export(ctx context.Context, form *dto.ExportForm, run exportFunc) (*dto.ExportResponse, error) {
	in := converter.Input{
		YouTubeURL: strings.TrimSpace(form.YouTubeURL),
		Language:   strings.TrimSpace(form.Language),
		Translate:  dto.Flag(form.Translate),
		Diarize:    dto.Flag(form.Diarize),
	}

	if in.YouTubeURL == "" && form.File != nil {
		f, err := form.File.Open()
		if err != nil {
			return nil, errors.NewBadRequestError("Unable to read uploaded file")
		}
		defer f.Close()
		in.Upload = f
		in.UploadName = form.File.Filename
	}

	res, err := run(ctx, in)
	if err != nil {
		s.logger.Warn("Export failed",
			zap.Bool("youtube", in.YouTubeURL != ""),
			zap.Bool("upload", in.Upload != nil),
			zap.Error(err),
		)
		return nil, errors.FromPipelineError(err)
	}
	return toExportResponse(res), nil
}

func toExportResponse(res *converter.Result) *dto.ExportResponse {
	return &dto.ExportResponse{
		Message:      res.Message,
		DocxPath:     res.DocxPath,
		DocxFilename: res.DocxFilename,
		Language:     res.Language,
		DurationSec:  res.DurationSec,
		Translated:   res.Translated,
		Source:       res.Source,
	}
}

