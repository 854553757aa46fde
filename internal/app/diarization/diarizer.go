// Package diarization finds who spoke when and attributes transcript
// segments to speakers.
package diarization

import (
	"context"

	"lucidscript/internal/app/model"
)

// DefaultSpeaker labels segments that no speaker turn overlaps.
const DefaultSpeaker = "Speaker 1"

// Diarizer returns speaker turns for a 16 kHz mono wav file.
type Diarizer interface {
	Diarize(ctx context.Context, wavPath string) ([]model.SpeakerTurn, error)
	Enabled() bool
}

// Disabled is used when no diarization backend is configured.
type Disabled struct{}

// Diarize always returns no turns.
func (Disabled) Diarize(ctx context.Context, wavPath string) ([]model.SpeakerTurn, error) {
	return nil, nil
}

// Enabled reports false.
func (Disabled) Enabled() bool { return false }
