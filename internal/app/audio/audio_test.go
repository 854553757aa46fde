package audio

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "lucidscript/internal/app/errors"
	"lucidscript/internal/app/testutil"
)

const probeJSON = `{"streams":[{"codec_type":"audio","codec_name":"pcm_s16le","sample_rate":"16000","channels":1}],"format":{"duration":"12.345000"}}`

func TestConverter_ToMono16k(t *testing.T) {
	dir := t.TempDir()
	// The fake ffmpeg writes to its last argument.
	ffmpeg := testutil.WriteScript(t, dir, "ffmpeg", `for last; do :; done; echo wav > "$last"`)
	c := NewConverter(ffmpeg, "", nil)

	out, err := c.ToMono16k(context.Background(), filepath.Join(dir, "in.mp3"), filepath.Join(dir, "out"))
	require.NoError(t, err)
	assert.Regexp(t, `tmp_[0-9a-f]{8}\.wav$`, out)
	assert.FileExists(t, out)
}

func TestConverter_ToMono16kFailure(t *testing.T) {
	dir := t.TempDir()
	ffmpeg := testutil.WriteScript(t, dir, "ffmpeg", `echo "Invalid data found" >&2; exit 1`)
	c := NewConverter(ffmpeg, "", nil)

	_, err := c.ToMono16k(context.Background(), "in.mp3", dir)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrConversionFailed))
	assert.Contains(t, err.Error(), "Invalid data found")
}

func TestConverter_Duration(t *testing.T) {
	dir := t.TempDir()
	ffprobe := testutil.WriteScript(t, dir, "ffprobe", "echo '"+probeJSON+"'")
	c := NewConverter("", ffprobe, nil)

	d, err := c.Duration(context.Background(), "any.wav")
	require.NoError(t, err)
	assert.InDelta(t, 12.345, d, 1e-9)

	ok, err := c.IsMono16kWav(context.Background(), "any.wav")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConverter_DurationMissing(t *testing.T) {
	dir := t.TempDir()
	ffprobe := testutil.WriteScript(t, dir, "ffprobe", `echo '{"streams":[{"codec_type":"audio","codec_name":"mp3","sample_rate":"44100"}],"format":{}}'`)
	c := NewConverter("", ffprobe, nil)

	_, err := c.Duration(context.Background(), "any.mp3")
	assert.Error(t, err)

	ok, err := c.IsMono16kWav(context.Background(), "any.mp3")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConverter_ProbeBinaryMissing(t *testing.T) {
	c := NewConverter("", filepath.Join(os.TempDir(), "definitely-not-ffprobe"), nil)
	_, err := c.Probe(context.Background(), "x.wav")
	assert.Error(t, err)
}
