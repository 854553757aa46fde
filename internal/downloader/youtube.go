// Package downloader fetches remote audio with yt-dlp.
package downloader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	apperrors "lucidscript/internal/app/errors"
)

// Messages surfaced to API clients.
const (
	MsgNotInstalled = "yt-dlp is not installed"
	MsgFetchFailed  = "failed to fetch/convert audio from YouTube URL"
)

// Result is a downloaded audio file inside its own temp directory.
type Result struct {
	Path    string
	VideoID string
	dir     string
}

// Cleanup removes the temp directory and everything in it.
func (r *Result) Cleanup() error {
	if r == nil || r.dir == "" {
		return nil
	}
	return os.RemoveAll(r.dir)
}

// YouTube downloads the best audio stream of a video as wav.
type YouTube struct {
	binary string
	logger *zap.Logger
}

// NewYouTube creates a downloader that runs binary (yt-dlp by default).
func NewYouTube(binary string, logger *zap.Logger) *YouTube {
	if binary == "" {
		binary = "yt-dlp"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &YouTube{binary: binary, logger: logger}
}

// ValidateURL accepts only http and https URLs.
func ValidateURL(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return apperrors.ErrNoInput
	}
	lower := strings.ToLower(url)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return apperrors.Wrapf(apperrors.ErrInvalidURL, "%q", url)
	}
	return nil
}

// Download fetches url into a fresh ls_ytdlp_* temp dir. On error the dir
// is already removed.
func (y *YouTube) Download(ctx context.Context, url string) (*Result, error) {
	url = strings.TrimSpace(url)
	if err := ValidateURL(url); err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "ls_ytdlp_")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}

	res, err := y.download(ctx, url, dir)
	if err != nil {
		os.RemoveAll(dir)
		return nil, err
	}
	return res, nil
}

func (y *YouTube) download(ctx context.Context, url, dir string) (*Result, error) {
	args := []string{
		"-f", "bestaudio/best",
		"-x", "--audio-format", "wav", "--audio-quality", "192K",
		"--quiet", "--no-warnings",
		"--no-simulate", "--print", "id",
		"-o", filepath.Join(dir, "%(id)s.%(ext)s"),
		"--", url,
	}
	cmd := exec.CommandContext(ctx, y.binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	y.logger.Info("downloading audio", zap.String("url", url))
	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) || errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Tag(apperrors.ErrBinaryNotFound, errors.New(MsgNotInstalled))
		}
		return nil, apperrors.Tag(apperrors.ErrDownloadFailed,
			fmt.Errorf("yt-dlp: %v, stderr: %s", err, strings.TrimSpace(stderr.String())))
	}

	id := firstLine(stdout.String())
	path, err := pickAudio(dir, id)
	if err != nil {
		return nil, err
	}
	y.logger.Info("audio downloaded", zap.String("video_id", id), zap.String("path", path))
	return &Result{Path: path, VideoID: id, dir: dir}, nil
}

// pickAudio prefers <id>.wav, then any wav, then any file.
func pickAudio(dir, id string) (string, error) {
	if id != "" {
		candidate := filepath.Join(dir, id+".wav")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	wavs, _ := filepath.Glob(filepath.Join(dir, "*.wav"))
	if len(wavs) > 0 {
		sort.Strings(wavs)
		return wavs[0], nil
	}

	entries, err := os.ReadDir(dir)
	if err == nil {
		for _, e := range entries {
			if !e.IsDir() {
				return filepath.Join(dir, e.Name()), nil
			}
		}
	}
	return "", apperrors.Tag(apperrors.ErrDownloadFailed, errors.New(MsgFetchFailed))
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
