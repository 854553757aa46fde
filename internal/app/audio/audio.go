package audio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	apperrors "lucidscript/internal/app/errors"
	"lucidscript/internal/app/model"
	"lucidscript/internal/app/util/files"
)

// Converter wraps the ffmpeg and ffprobe binaries.
type Converter struct {
	ffmpegPath  string
	ffprobePath string
	logger      *zap.Logger
}

// NewConverter creates a Converter. Empty paths fall back to the binaries
// found on PATH.
func NewConverter(ffmpegPath, ffprobePath string, logger *zap.Logger) *Converter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{ffmpegPath: ffmpegPath, ffprobePath: ffprobePath, logger: logger}
}

// ToMono16k converts src into a 16 kHz mono wav inside outDir and returns
// the new path.
func (c *Converter) ToMono16k(ctx context.Context, src, outDir string) (string, error) {
	if err := files.EnsureDir(outDir); err != nil {
		return "", err
	}
	out := filepath.Join(outDir, fmt.Sprintf("tmp_%s.wav", files.ShortID()))

	cmd := exec.CommandContext(ctx, c.ffmpegPath, "-y", "-i", src, "-ac", "1", "-ar", "16000", out)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	c.logger.Debug("converting to 16kHz mono wav", zap.String("src", src), zap.String("out", out))
	if err := cmd.Run(); err != nil {
		return "", apperrors.Tag(apperrors.ErrConversionFailed,
			fmt.Errorf("ffmpeg: %v, stderr: %s", err, strings.TrimSpace(stderr.String())))
	}
	return out, nil
}

// Probe runs ffprobe on path.
func (c *Converter) Probe(ctx context.Context, path string) (*model.FFProbeOutput, error) {
	cmd := exec.CommandContext(ctx, c.ffprobePath, "-v", "quiet", "-print_format", "json", "-show_streams", "-show_format", path)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	var probeOutput model.FFProbeOutput
	if err := json.Unmarshal(output, &probeOutput); err != nil {
		return nil, fmt.Errorf("ffprobe output: %w", err)
	}
	return &probeOutput, nil
}

// Duration returns the container duration of path in seconds.
func (c *Converter) Duration(ctx context.Context, path string) (float64, error) {
	probe, err := c.Probe(ctx, path)
	if err != nil {
		return 0, err
	}
	if probe.Format.Duration == "" {
		return 0, fmt.Errorf("ffprobe reported no duration for %s", path)
	}
	return strconv.ParseFloat(strings.TrimSpace(probe.Format.Duration), 64)
}

// IsMono16kWav reports whether path already holds 16 kHz pcm_s16le audio,
// the input format whisper.cpp expects.
func (c *Converter) IsMono16kWav(ctx context.Context, path string) (bool, error) {
	probe, err := c.Probe(ctx, path)
	if err != nil {
		return false, err
	}
	for _, stream := range probe.Streams {
		if stream.CodecType == "audio" && stream.CodecName == "pcm_s16le" && stream.SampleRate == 16000 {
			return true, nil
		}
	}
	return false, nil
}
