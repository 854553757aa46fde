package services

import (
	"context"
	"io"
	"mime/multipart"

	"lucidscript/internal/api/v1/dto"
	"lucidscript/internal/app/converter"
)

// Pipeline is the document pipeline. *converter.Converter implements it.
type Pipeline interface {
	Transcribe(ctx context.Context, upload io.Reader, filename string) (string, error)
	FormatDocx(ctx context.Context, rawText string) (string, error)
	ExportStandard(ctx context.Context, in converter.Input) (*converter.Result, error)
	ExportDeposition(ctx context.Context, in converter.Input) (*converter.Result, error)
}

// ExportService turns audio and text into documents.
type ExportService interface {
	Transcribe(ctx context.Context, file *multipart.FileHeader) (*dto.TranscribeResponse, error)
	FormatDocx(ctx context.Context, req *dto.FormatDocxRequest) (*dto.FormatDocxResponse, error)
	ExportStandard(ctx context.Context, form *dto.ExportForm) (*dto.ExportResponse, error)
	ExportDeposition(ctx context.Context, form *dto.ExportForm) (*dto.ExportResponse, error)
}

// DownloadService serves generated documents by bare filename.
type DownloadService interface {
	Open(ctx context.Context, filename string) (io.ReadCloser, int64, error)
}

// HistoryService reads export history.
type HistoryService interface {
	ListExports(ctx context.Context, query dto.ListExportsQuery) (*dto.ListExportsResponse, error)
	GetExport(ctx context.Context, id int64) (*dto.ExportRecordResponse, error)
}

// ProviderService lists transcription providers.
type ProviderService interface {
	ListProviders(ctx context.Context) (*dto.ListProvidersResponse, error)
}
