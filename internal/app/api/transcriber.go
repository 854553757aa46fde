package api

import (
	"context"

	"lucidscript/internal/app/model"
)

// Options controls a single transcription.
type Options struct {
	// Language is an ISO-639-1 code; empty means auto-detect.
	Language string
	// Translate asks for an English translation instead of a transcript.
	Translate bool
}

// Task returns the whisper task name for these options.
func (o Options) Task() string {
	if o.Translate {
		return "translate"
	}
	return "transcribe"
}

// Transcriber converts an audio file to a timed transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, inputFilePath string, opts Options) (*model.Transcript, error)
}

// Info describes a transcriber for listings and health output.
type Info struct {
	Name             string `json:"name"`
	DisplayName      string `json:"display_name"`
	RequiresInternet bool   `json:"requires_internet"`
}

// Describer is implemented by transcribers that can describe themselves.
type Describer interface {
	Info() Info
}

// HealthChecker is implemented by transcribers that can verify their
// backend is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
