package diarization

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"

	apperrors "lucidscript/internal/app/errors"
	"lucidscript/internal/app/model"
)

// HuggingFaceDiarizer calls a hosted pyannote speaker-diarization pipeline.
type HuggingFaceDiarizer struct {
	endpoint string
	token    string
	client   *http.Client
	logger   *zap.Logger
}

// NewHuggingFaceDiarizer creates a diarizer posting audio to endpoint.
func NewHuggingFaceDiarizer(endpoint, token string, timeout time.Duration, logger *zap.Logger) *HuggingFaceDiarizer {
	if timeout == 0 {
		timeout = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HuggingFaceDiarizer{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// New picks the HuggingFace diarizer when a token is configured and
// Disabled otherwise.
func New(endpoint, token string, logger *zap.Logger) Diarizer {
	if token == "" || endpoint == "" {
		return Disabled{}
	}
	return NewHuggingFaceDiarizer(endpoint, token, 0, logger)
}

type hfTurn struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker string  `json:"speaker"`
	Label   string  `json:"label"`
}

// Diarize uploads wavPath and returns the turns sorted by start time.
func (d *HuggingFaceDiarizer) Diarize(ctx context.Context, wavPath string) ([]model.SpeakerTurn, error) {
	audio, err := os.ReadFile(wavPath)
	if err != nil {
		return nil, apperrors.Tag(apperrors.ErrDiarizationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(audio))
	if err != nil {
		return nil, apperrors.Tag(apperrors.ErrDiarizationFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+d.token)
	req.Header.Set("Content-Type", "audio/wav")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, apperrors.Tag(apperrors.ErrDiarizationFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, apperrors.Tag(apperrors.ErrDiarizationFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Tag(apperrors.ErrDiarizationFailed,
			fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(body)))
	}

	var raw []hfTurn
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apperrors.Tag(apperrors.ErrDiarizationFailed, fmt.Errorf("decode response: %w", err))
	}

	turns := make([]model.SpeakerTurn, 0, len(raw))
	for _, t := range raw {
		speaker := t.Speaker
		if speaker == "" {
			speaker = t.Label
		}
		turns = append(turns, model.SpeakerTurn{Start: t.Start, End: t.End, Speaker: speaker})
	}
	sort.SliceStable(turns, func(i, j int) bool { return turns[i].Start < turns[j].Start })

	d.logger.Info("diarization finished",
		zap.Int("turns", len(turns)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return turns, nil
}

// Enabled reports true.
func (d *HuggingFaceDiarizer) Enabled() bool { return true }
