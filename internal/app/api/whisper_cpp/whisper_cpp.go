package whisper_cpp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"lucidscript/internal/app/api"
	"lucidscript/internal/app/audio"
	apperrors "lucidscript/internal/app/errors"
	"lucidscript/internal/app/model"
	"lucidscript/internal/app/util/files"
)

// LocalTranscriber implements local transcription, using the whisper.cpp CLI.
type LocalTranscriber struct {
	binaryPath string
	modelPath  string
	converter  *audio.Converter
	logger     *zap.Logger
}

// NewLocalTranscriber creates a new instance of LocalTranscriber.
func NewLocalTranscriber(binaryPath, modelPath string, converter *audio.Converter, logger *zap.Logger) *LocalTranscriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalTranscriber{
		binaryPath: binaryPath,
		modelPath:  modelPath,
		converter:  converter,
		logger:     logger,
	}
}

// cppOutput is the document written by `whisper-cli -oj`.
type cppOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// Transcribe runs whisper.cpp on inputFilePath, converting it to 16 kHz
// wav first when needed.
func (lt *LocalTranscriber) Transcribe(ctx context.Context, inputFilePath string, opts api.Options) (*model.Transcript, error) {
	lt.logger.Info("starting transcription", zap.String("file", inputFilePath), zap.String("task", opts.Task()))

	workDir, err := os.MkdirTemp("", "ls_whisper_")
	if err != nil {
		return nil, fmt.Errorf("error creating work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	wavPath := inputFilePath
	is16kHzWav, err := lt.converter.IsMono16kWav(ctx, inputFilePath)
	if err != nil {
		return nil, fmt.Errorf("error checking input file: %w", err)
	}
	if !is16kHzWav {
		lt.logger.Debug("input is not 16kHz wav, converting", zap.String("file", inputFilePath))
		wavPath, err = lt.converter.ToMono16k(ctx, inputFilePath, workDir)
		if err != nil {
			return nil, fmt.Errorf("error converting input file: %w", err)
		}
	}

	language := opts.Language
	if language == "" {
		language = "auto"
	}
	outputBase := filepath.Join(workDir, "transcript")
	args := []string{
		"-m", lt.modelPath,
		"-l", language,
		"-oj",
		"-of", outputBase,
		"-np",
		"-f", wavPath,
	}
	if opts.Translate {
		args = append(args, "-tr")
	}

	command := exec.CommandContext(ctx, lt.binaryPath, args...)
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	lt.logger.Debug("running transcription command",
		zap.String("binary", lt.binaryPath),
		zap.String("args", strings.Join(args, " ")),
	)
	if err := command.Run(); err != nil {
		if isMissingBinary(err) {
			return nil, apperrors.Wrapf(apperrors.ErrBinaryNotFound, "whisper.cpp %s", lt.binaryPath)
		}
		return nil, fmt.Errorf("command execution error: %v, stderr: %s", err, strings.TrimSpace(stderr.String()))
	}

	raw, err := files.ReadOutputFile(outputBase + ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to read output file: %w", err)
	}
	var out cppOutput
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("failed to parse output file: %w", err)
	}

	transcript := &model.Transcript{
		Language: out.Result.Language,
		Segments: make([]model.Segment, 0, len(out.Transcription)),
	}
	texts := make([]string, 0, len(out.Transcription))
	for i, seg := range out.Transcription {
		transcript.Segments = append(transcript.Segments, model.Segment{
			ID:    i,
			Start: float64(seg.Offsets.From) / 1000,
			End:   float64(seg.Offsets.To) / 1000,
			Text:  seg.Text,
		})
		if t := strings.TrimSpace(seg.Text); t != "" {
			texts = append(texts, t)
		}
	}
	transcript.Text = strings.Join(texts, " ")

	if d, err := lt.converter.Duration(ctx, inputFilePath); err == nil {
		transcript.Duration = &d
	} else {
		lt.logger.Debug("duration unavailable", zap.Error(err))
	}

	lt.logger.Info("transcription finished",
		zap.String("file", inputFilePath),
		zap.String("language", transcript.Language),
		zap.Int("segments", len(transcript.Segments)),
	)
	return transcript, nil
}

func isMissingBinary(err error) bool {
	var execErr *exec.Error
	return errors.As(err, &execErr) || errors.Is(err, fs.ErrNotExist)
}

// Info describes the provider.
func (lt *LocalTranscriber) Info() api.Info {
	return api.Info{Name: "whisper_cpp", DisplayName: "whisper.cpp (local)"}
}

// HealthCheck verifies the binary and model are present.
func (lt *LocalTranscriber) HealthCheck(ctx context.Context) error {
	if _, err := exec.LookPath(lt.binaryPath); err != nil {
		return apperrors.Wrapf(apperrors.ErrBinaryNotFound, "whisper.cpp %s", lt.binaryPath)
	}
	if !files.Exists(lt.modelPath) {
		return apperrors.Wrapf(apperrors.ErrFileNotFound, "whisper.cpp model %s", lt.modelPath)
	}
	return nil
}
