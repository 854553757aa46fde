package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"lucidscript/internal/app/model"
)

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// Float returns a pointer to f.
func Float(f float64) *float64 {
	return &f
}

// SampleTranscript is a two-segment English transcript.
func SampleTranscript() *model.Transcript {
	return &model.Transcript{
		Text:     "Please state your name. John Smith.",
		Language: "en",
		Duration: Float(4.256),
		Segments: []model.Segment{
			{ID: 0, Start: 0, End: 2.1, Text: " Please state your name."},
			{ID: 1, Start: 2.1, End: 4.2, Text: " John Smith."},
		},
	}
}
