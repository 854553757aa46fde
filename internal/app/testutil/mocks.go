package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lucidscript/internal/app/api"
	"lucidscript/internal/app/model"
)

// MockTranscriber is a testify mock of api.Transcriber.
type MockTranscriber struct {
	mock.Mock
}

func (m *MockTranscriber) Transcribe(ctx context.Context, inputFilePath string, opts api.Options) (*model.Transcript, error) {
	args := m.Called(ctx, inputFilePath, opts)
	if t := args.Get(0); t != nil {
		return t.(*model.Transcript), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockDiarizer is a testify mock of diarization.Diarizer.
type MockDiarizer struct {
	mock.Mock
}

func (m *MockDiarizer) Diarize(ctx context.Context, wavPath string) ([]model.SpeakerTurn, error) {
	args := m.Called(ctx, wavPath)
	if t := args.Get(0); t != nil {
		return t.([]model.SpeakerTurn), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDiarizer) Enabled() bool {
	return m.Called().Bool(0)
}

// MockExportDAO is a testify mock of repository.ExportDAO.
type MockExportDAO struct {
	mock.Mock
}

func (m *MockExportDAO) Record(ctx context.Context, rec *model.ExportRecord) (int64, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExportDAO) Get(ctx context.Context, id int64) (*model.ExportRecord, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*model.ExportRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExportDAO) List(ctx context.Context, limit int) ([]model.ExportRecord, error) {
	args := m.Called(ctx, limit)
	if r := args.Get(0); r != nil {
		return r.([]model.ExportRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockExportDAO) Close() error {
	return m.Called().Error(0)
}
