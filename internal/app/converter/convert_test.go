package converter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lucidscript/internal/app/api"
	apperrors "lucidscript/internal/app/errors"
	"lucidscript/internal/app/model"
	"lucidscript/internal/app/storage"
	"lucidscript/internal/app/testutil"
	"lucidscript/internal/downloader"
)

var fixedNow = time.Date(2025, 3, 7, 9, 5, 0, 0, time.UTC)

type fakeAudio struct {
	err   error
	calls int32
	dir   string
}

func (f *fakeAudio) ToMono16k(ctx context.Context, src, outDir string) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return "", f.err
	}
	out := filepath.Join(f.dir, "tmp_converted.wav")
	return out, os.WriteFile(out, []byte("wav"), 0o644)
}

type fixture struct {
	conv        *Converter
	transcriber *testutil.MockTranscriber
	diarizer    *testutil.MockDiarizer
	dao         *testutil.MockExportDAO
	audio       *fakeAudio
	outputDir   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	outputDir := filepath.Join(t.TempDir(), "output")
	store, err := storage.NewLocalStore(outputDir)
	require.NoError(t, err)

	f := &fixture{
		transcriber: new(testutil.MockTranscriber),
		diarizer:    new(testutil.MockDiarizer),
		dao:         new(testutil.MockExportDAO),
		audio:       &fakeAudio{dir: t.TempDir()},
		outputDir:   outputDir,
	}
	f.conv = NewConverter(Deps{
		Transcriber:       f.transcriber,
		Diarizer:          f.diarizer,
		Audio:             f.audio,
		Store:             store,
		DB:                f.dao,
		OutputDir:         outputDir,
		MaxConcurrentJobs: 2,
	})
	f.conv.now = func() time.Time { return fixedNow }
	return f
}

func (f *fixture) expectRecord() {
	f.dao.On("Record", mock.Anything, mock.Anything).Return(int64(1), nil)
}

func TestExportStandard_Upload(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()

	var tmpSeen string
	f.transcriber.On("Transcribe", mock.Anything, mock.Anything, api.Options{Language: "en"}).
		Run(func(args mock.Arguments) {
			tmpSeen = args.String(1)
			assert.Equal(t, ".mp3", filepath.Ext(tmpSeen))
		}).
		Return(testutil.SampleTranscript(), nil)

	res, err := f.conv.ExportStandard(context.Background(), Input{
		Upload:     strings.NewReader("audio bytes"),
		UploadName: "meeting.mp3",
		Language:   " en ",
	})
	require.NoError(t, err)

	assert.Equal(t, MsgStandardDone, res.Message)
	assert.Equal(t, model.SourceUpload, res.Source)
	assert.Equal(t, "en", res.Language)
	require.NotNil(t, res.DurationSec)
	assert.Equal(t, 4.26, *res.DurationSec)
	assert.False(t, res.Translated)
	assert.Regexp(t, `^lucidscript_[0-9a-f]{8}\.docx$`, res.DocxFilename)
	assert.Equal(t, filepath.Join(f.outputDir, res.DocxFilename), res.DocxPath)
	assert.FileExists(t, res.DocxPath)
	assert.Equal(t, int64(1), res.RecordID)

	_, err = os.Stat(tmpSeen)
	assert.True(t, os.IsNotExist(err), "upload temp file must be removed")

	f.dao.AssertCalled(t, "Record", mock.Anything, mock.MatchedBy(func(r *model.ExportRecord) bool {
		return r.Source == model.SourceUpload && r.Style == model.StyleStandard &&
			r.DocxFilename == res.DocxFilename && r.ErrorMessage == "" && r.CreatedAt.Equal(fixedNow)
	}))
}

func TestExport_NoInput(t *testing.T) {
	f := newFixture(t)
	_, err := f.conv.ExportStandard(context.Background(), Input{YouTubeURL: "   "})
	assert.ErrorIs(t, err, apperrors.ErrNoInput)
	f.dao.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestExport_EmptyTranscript(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()
	f.transcriber.On("Transcribe", mock.Anything, mock.Anything, mock.Anything).
		Return(&model.Transcript{Text: "   "}, nil)

	path := testutil.WriteFile(t, t.TempDir(), "silence.wav", "x")
	_, err := f.conv.ExportStandard(context.Background(), Input{FilePath: path})
	assert.ErrorIs(t, err, apperrors.ErrEmptyTranscript)

	assert.FileExists(t, path, "caller owned files are kept")
	entries, _ := os.ReadDir(f.outputDir)
	assert.Empty(t, entries)

	f.dao.AssertCalled(t, "Record", mock.Anything, mock.MatchedBy(func(r *model.ExportRecord) bool {
		return r.ErrorMessage != "" && r.DocxFilename == ""
	}))
}

func TestExport_TranscriberError(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()
	f.transcriber.On("Transcribe", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("model not loaded"))

	path := testutil.WriteFile(t, t.TempDir(), "a.wav", "x")
	_, err := f.conv.ExportStandard(context.Background(), Input{FilePath: path})
	assert.EqualError(t, err, "model not loaded")
}

func TestExport_UnknownLanguageAndDuration(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()
	f.transcriber.On("Transcribe", mock.Anything, mock.Anything, api.Options{Translate: true}).
		Return(&model.Transcript{Text: "Hello."}, nil)

	path := testutil.WriteFile(t, t.TempDir(), "a.wav", "x")
	res, err := f.conv.ExportStandard(context.Background(), Input{FilePath: path, Translate: true})
	require.NoError(t, err)
	assert.Equal(t, "unknown", res.Language)
	assert.Nil(t, res.DurationSec)
	assert.True(t, res.Translated)
}

func TestExportDeposition_Diarized(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()
	f.transcriber.On("Transcribe", mock.Anything, mock.Anything, mock.Anything).
		Return(testutil.SampleTranscript(), nil)
	f.diarizer.On("Enabled").Return(true)
	f.diarizer.On("Diarize", mock.Anything, filepath.Join(f.audio.dir, "tmp_converted.wav")).
		Return([]model.SpeakerTurn{
			{Start: 0, End: 2, Speaker: "SPEAKER_00"},
			{Start: 2, End: 5, Speaker: "SPEAKER_01"},
		}, nil)

	path := testutil.WriteFile(t, t.TempDir(), "a.m4a", "x")
	res, err := f.conv.ExportDeposition(context.Background(), Input{FilePath: path, Diarize: true})
	require.NoError(t, err)

	assert.Equal(t, MsgDepositionDone, res.Message)
	assert.EqualValues(t, 1, f.audio.calls)
	_, err = os.Stat(filepath.Join(f.audio.dir, "tmp_converted.wav"))
	assert.True(t, os.IsNotExist(err), "converted wav must be removed")
	f.diarizer.AssertExpectations(t)

	f.dao.AssertCalled(t, "Record", mock.Anything, mock.MatchedBy(func(r *model.ExportRecord) bool {
		return r.Style == model.StyleDeposition && r.Diarized
	}))
}

func TestExportDeposition_ConversionFallsBack(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()
	f.audio.err = errors.New("ffmpeg missing")
	path := testutil.WriteFile(t, t.TempDir(), "a.wav", "x")

	f.transcriber.On("Transcribe", mock.Anything, path, mock.Anything).Return(testutil.SampleTranscript(), nil)
	f.diarizer.On("Enabled").Return(true)
	f.diarizer.On("Diarize", mock.Anything, path).Return(nil, errors.New("503"))

	res, err := f.conv.ExportDeposition(context.Background(), Input{FilePath: path, Diarize: true})
	require.NoError(t, err)
	assert.NotEmpty(t, res.DocxFilename)
	f.diarizer.AssertCalled(t, "Diarize", mock.Anything, path)
}

func TestExportDeposition_NotRequested(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()
	f.transcriber.On("Transcribe", mock.Anything, mock.Anything, mock.Anything).Return(testutil.SampleTranscript(), nil)

	path := testutil.WriteFile(t, t.TempDir(), "a.wav", "x")
	_, err := f.conv.ExportDeposition(context.Background(), Input{FilePath: path})
	require.NoError(t, err)

	f.diarizer.AssertNotCalled(t, "Diarize", mock.Anything, mock.Anything)
	assert.EqualValues(t, 0, f.audio.calls)
}

func TestExport_YouTube(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()

	bin := testutil.WriteScript(t, t.TempDir(), "yt-dlp", `
while [ $# -gt 0 ]; do
  if [ "$1" = "-o" ]; then out="$2"; shift; fi
  shift
done
echo data > "$(dirname "$out")/vid.wav"
echo vid`)
	f.conv.downloader = downloader.NewYouTube(bin, nil)

	var seen string
	f.transcriber.On("Transcribe", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { seen = args.String(1) }).
		Return(testutil.SampleTranscript(), nil)

	res, err := f.conv.ExportStandard(context.Background(), Input{
		YouTubeURL: " https://youtu.be/vid ",
		Upload:     strings.NewReader("ignored"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.SourceYouTube, res.Source)
	assert.Equal(t, "vid.wav", filepath.Base(seen))

	_, err = os.Stat(filepath.Dir(seen))
	assert.True(t, os.IsNotExist(err), "download dir must be removed")
}

func TestExport_YouTubeWithoutDownloader(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()
	_, err := f.conv.ExportStandard(context.Background(), Input{YouTubeURL: "https://youtu.be/x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), downloader.MsgNotInstalled)
}

func TestExport_YouTubeRejectsOptionLikeURL(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()
	_, err := f.conv.ExportStandard(context.Background(), Input{YouTubeURL: "--exec=id"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidURL)
}

func TestTranscribe(t *testing.T) {
	f := newFixture(t)
	f.transcriber.On("Transcribe", mock.Anything, mock.Anything, api.Options{}).
		Return(&model.Transcript{Text: "  hi there \n"}, nil)

	text, err := f.conv.Transcribe(context.Background(), strings.NewReader("x"), "clip.ogg")
	require.NoError(t, err)
	assert.Equal(t, "hi there", text)
}

func TestFormatDocx(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()

	path, err := f.conv.FormatDocx(context.Background(), "One. Two.")
	require.NoError(t, err)
	assert.Equal(t, f.outputDir, filepath.Dir(path))
	assert.FileExists(t, path)
	f.dao.AssertCalled(t, "Record", mock.Anything, mock.MatchedBy(func(r *model.ExportRecord) bool {
		return r.Source == model.SourceText
	}))
}

func TestRecordFailureDoesNotFailExport(t *testing.T) {
	f := newFixture(t)
	f.dao.On("Record", mock.Anything, mock.Anything).Return(int64(0), errors.New("disk full"))
	f.transcriber.On("Transcribe", mock.Anything, mock.Anything, mock.Anything).Return(testutil.SampleTranscript(), nil)

	path := testutil.WriteFile(t, t.TempDir(), "a.wav", "x")
	res, err := f.conv.ExportStandard(context.Background(), Input{FilePath: path})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.RecordID)
}

func TestConcurrencyLimit(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()

	var active, peak int32
	f.transcriber.On("Transcribe", mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			n := atomic.AddInt32(&active, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			atomic.AddInt32(&active, -1)
		}).
		Return(testutil.SampleTranscript(), nil)

	dir := t.TempDir()
	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		path := testutil.WriteFile(t, dir, string(rune('a'+i))+".wav", "x")
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.conv.ExportStandard(context.Background(), Input{FilePath: path})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestAcquireHonoursContext(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.True(t, f.conv.jobs.TryAcquire(2))
	defer f.conv.jobs.Release(2)

	path := testutil.WriteFile(t, t.TempDir(), "a.wav", "x")
	_, err := f.conv.ExportStandard(ctx, Input{FilePath: path})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExportFiles(t *testing.T) {
	f := newFixture(t)
	f.expectRecord()
	dir := t.TempDir()
	ok := testutil.WriteFile(t, dir, "ok.wav", "x")
	bad := testutil.WriteFile(t, dir, "bad.wav", "y")

	f.transcriber.On("Transcribe", mock.Anything, ok, mock.Anything).Return(testutil.SampleTranscript(), nil)
	f.transcriber.On("Transcribe", mock.Anything, bad, mock.Anything).Return(nil, errors.New("corrupt"))

	items := f.conv.ExportFiles(context.Background(), []string{ok, bad}, model.StyleDeposition,
		Input{Language: "en"}, 2, ProgressConfig{Enabled: false})

	require.Len(t, items, 2)
	assert.Equal(t, ok, items[0].Path)
	require.NoError(t, items[0].Err)
	assert.Equal(t, MsgDepositionDone, items[0].Result.Message)
	assert.EqualError(t, items[1].Err, "corrupt")
}

func TestRoundDuration(t *testing.T) {
	assert.Nil(t, roundDuration(nil))
	assert.Equal(t, 12.35, *roundDuration(testutil.Float(12.345678)))
	assert.Equal(t, 0.0, *roundDuration(testutil.Float(0.001)))
}
