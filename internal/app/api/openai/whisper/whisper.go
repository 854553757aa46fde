package whisper

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"lucidscript/internal/app/api"
	"lucidscript/internal/app/model"
)

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client, logger *zap.Logger) *RemoteTranscriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RemoteTranscriber{client: client, model: openai.Whisper1, logger: logger}
}

// Transcribe uploads the file and maps the verbose_json reply.
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, inputFilePath string, opts api.Options) (*model.Transcript, error) {
	req := openai.AudioRequest{
		Model:    rt.model,
		FilePath: inputFilePath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}

	var (
		resp openai.AudioResponse
		err  error
	)
	if opts.Translate {
		resp, err = rt.client.CreateTranslation(ctx, req)
	} else {
		req.Language = opts.Language
		resp, err = rt.client.CreateTranscription(ctx, req)
	}
	if err != nil {
		return nil, fmt.Errorf("openai %s failed: %w", opts.Task(), err)
	}

	rt.logger.Debug("openai transcription done",
		zap.String("file", inputFilePath),
		zap.String("language", resp.Language),
		zap.Int("segments", len(resp.Segments)),
	)

	transcript := &model.Transcript{
		Text:     strings.TrimSpace(resp.Text),
		Language: resp.Language,
		Segments: make([]model.Segment, 0, len(resp.Segments)),
	}
	if resp.Duration > 0 {
		d := resp.Duration
		transcript.Duration = &d
	}
	for _, s := range resp.Segments {
		transcript.Segments = append(transcript.Segments, model.Segment{
			ID:    s.ID,
			Start: s.Start,
			End:   s.End,
			Text:  s.Text,
		})
	}
	return transcript, nil
}

// Info describes the provider.
func (rt *RemoteTranscriber) Info() api.Info {
	return api.Info{Name: "openai", DisplayName: "OpenAI Whisper API", RequiresInternet: true}
}
