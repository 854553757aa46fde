package converter

import (
	"context"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"lucidscript/internal/app/api"
	"lucidscript/internal/app/diarization"
	"lucidscript/internal/app/document"
	apperrors "lucidscript/internal/app/errors"
	"lucidscript/internal/app/metrics"
	"lucidscript/internal/app/model"
	"lucidscript/internal/app/repository"
	"lucidscript/internal/app/storage"
	"lucidscript/internal/app/util/files"
	"lucidscript/internal/downloader"
)

// Result messages returned to clients.
const (
	MsgStandardDone   = "Transcription and document export complete."
	MsgDepositionDone = "Deposition transcript complete."
)

// Downloader fetches remote audio.
type Downloader interface {
	Download(ctx context.Context, url string) (*downloader.Result, error)
}

// AudioConverter produces 16 kHz mono wav files.
type AudioConverter interface {
	ToMono16k(ctx context.Context, src, outDir string) (string, error)
}

// Input selects the audio for one export. A non-blank YouTubeURL wins over
// Upload, which wins over FilePath.
type Input struct {
	YouTubeURL string
	Upload     io.Reader
	UploadName string
	// FilePath is a local file owned by the caller. It is never removed.
	FilePath  string
	Language  string
	Translate bool
	Diarize   bool
}

func (in Input) options() api.Options {
	return api.Options{Language: strings.TrimSpace(in.Language), Translate: in.Translate}
}

// Result describes a generated document.
type Result struct {
	Message      string
	DocxPath     string
	DocxFilename string
	Language     string
	DurationSec  *float64
	Translated   bool
	Source       string
	RecordID     int64
}

// Deps are the collaborators of a Converter.
type Deps struct {
	Transcriber api.Transcriber
	Diarizer    diarization.Diarizer
	Downloader  Downloader
	Audio       AudioConverter
	Store       storage.ArtifactStore
	DB          repository.ExportDAO
	Metrics     *metrics.Metrics
	Logger      *zap.Logger

	OutputDir         string
	MaxConcurrentJobs int64
}

// Converter runs the audio to document pipeline.
type Converter struct {
	transcriber api.Transcriber
	diarizer    diarization.Diarizer
	downloader  Downloader
	audio       AudioConverter
	store       storage.ArtifactStore
	db          repository.ExportDAO
	metrics     *metrics.Metrics
	logger      *zap.Logger

	outputDir string
	jobs      *semaphore.Weighted
	now       func() time.Time
}

// NewConverter creates a Converter. Diarizer defaults to Disabled and
// MaxConcurrentJobs to 1.
func NewConverter(d Deps) *Converter {
	if d.Diarizer == nil {
		d.Diarizer = diarization.Disabled{}
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.MaxConcurrentJobs <= 0 {
		d.MaxConcurrentJobs = 1
	}
	return &Converter{
		transcriber: d.Transcriber,
		diarizer:    d.Diarizer,
		downloader:  d.Downloader,
		audio:       d.Audio,
		store:       d.Store,
		db:          d.DB,
		metrics:     d.Metrics,
		logger:      d.Logger,
		outputDir:   d.OutputDir,
		jobs:        semaphore.NewWeighted(d.MaxConcurrentJobs),
		now:         time.Now,
	}
}

// Close releases the history store.
func (c *Converter) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// OutputDir is where documents are written.
func (c *Converter) OutputDir() string {
	return c.outputDir
}

// Transcribe returns the plain transcript of an uploaded file.
func (c *Converter) Transcribe(ctx context.Context, upload io.Reader, filename string) (string, error) {
	path, err := files.SaveTemp(upload, filepath.Ext(filename))
	if err != nil {
		return "", err
	}
	defer os.Remove(path)

	transcript, err := c.runTranscriber(ctx, path, api.Options{})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(transcript.Text), nil
}

// FormatDocx renders raw text as a standard document and returns its path.
func (c *Converter) FormatDocx(ctx context.Context, rawText string) (string, error) {
	doc := document.RenderStandard(document.StandardTitle, c.now(), rawText)
	path, err := c.save(ctx, doc)
	if err != nil {
		return "", err
	}
	c.record(ctx, &model.ExportRecord{
		Source:       model.SourceText,
		Style:        model.StyleStandard,
		DocxFilename: filepath.Base(path),
	})
	return path, nil
}

// ExportStandard transcribes the input into a paragraph document.
func (c *Converter) ExportStandard(ctx context.Context, in Input) (*Result, error) {
	return c.export(ctx, in, model.StyleStandard)
}

// ExportDeposition transcribes the input into a speaker-labeled document.
func (c *Converter) ExportDeposition(ctx context.Context, in Input) (*Result, error) {
	return c.export(ctx, in, model.StyleDeposition)
}

func (c *Converter) export(ctx context.Context, in Input, style string) (*Result, error) {
	src, source, cleanup, err := c.prepareInput(ctx, in)
	if err != nil {
		if source != "" {
			c.fail(ctx, style, source, in, err)
		}
		return nil, err
	}
	defer cleanup()

	res, err := c.render(ctx, src, in, style)
	if err != nil {
		c.fail(ctx, style, source, in, err)
		return nil, err
	}
	res.Source = source

	res.RecordID = c.record(ctx, &model.ExportRecord{
		Source:       source,
		Style:        style,
		Language:     res.Language,
		DurationSec:  res.DurationSec,
		Translated:   in.Translate,
		Diarized:     in.Diarize && style == model.StyleDeposition,
		DocxFilename: res.DocxFilename,
	})
	c.observe(style, source, nil)

	c.logger.Info("export finished",
		zap.String("style", style),
		zap.String("source", source),
		zap.String("file", res.DocxFilename),
		zap.String("language", res.Language),
	)
	return res, nil
}

// prepareInput resolves the audio file and a cleanup func for it. source is
// set as soon as the input kind is known.
func (c *Converter) prepareInput(ctx context.Context, in Input) (path, source string, cleanup func(), err error) {
	noop := func() {}

	if url := strings.TrimSpace(in.YouTubeURL); url != "" {
		if err := downloader.ValidateURL(url); err != nil {
			return "", model.SourceYouTube, noop, err
		}
		if c.downloader == nil {
			return "", model.SourceYouTube, noop, apperrors.Tag(apperrors.ErrDownloadFailed, errors.New(downloader.MsgNotInstalled))
		}
		res, err := c.downloader.Download(ctx, url)
		if err != nil {
			return "", model.SourceYouTube, noop, err
		}
		return res.Path, model.SourceYouTube, func() {
			if err := res.Cleanup(); err != nil {
				c.logger.Warn("failed to remove download dir", zap.Error(err))
			}
		}, nil
	}

	if in.Upload != nil {
		tmp, err := files.SaveTemp(in.Upload, filepath.Ext(in.UploadName))
		if err != nil {
			return "", model.SourceUpload, noop, err
		}
		return tmp, model.SourceUpload, func() { os.Remove(tmp) }, nil
	}

	if in.FilePath != "" {
		return in.FilePath, model.SourceUpload, noop, nil
	}

	return "", "", noop, apperrors.ErrNoInput
}

func (c *Converter) render(ctx context.Context, src string, in Input, style string) (*Result, error) {
	transcript, err := c.runTranscriber(ctx, src, in.options())
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(transcript.Text)
	if text == "" {
		return nil, apperrors.ErrEmptyTranscript
	}

	language := transcript.Language
	if language == "" {
		language = "unknown"
	}

	var (
		doc     *document.Document
		message string
	)
	switch style {
	case model.StyleDeposition:
		turns := c.speakerTurns(ctx, src, in.Diarize)
		labeled := diarization.AssignSpeakers(transcript.Segments, turns)
		doc = document.RenderDeposition(document.DepositionTitle, c.now(), language, in.Translate, labeled)
		message = MsgDepositionDone
	default:
		doc = document.RenderStandard(document.StandardTitle, c.now(), text)
		message = MsgStandardDone
	}

	path, err := c.save(ctx, doc)
	if err != nil {
		return nil, err
	}

	return &Result{
		Message:      message,
		DocxPath:     path,
		DocxFilename: filepath.Base(path),
		Language:     language,
		DurationSec:  roundDuration(transcript.Duration),
		Translated:   in.Translate,
	}, nil
}

// runTranscriber holds a job slot for the duration of one transcription.
func (c *Converter) runTranscriber(ctx context.Context, path string, opts api.Options) (*model.Transcript, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, err
	}
	defer c.release()

	transcript, err := c.transcriber.Transcribe(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	if transcript == nil {
		return &model.Transcript{}, nil
	}
	return transcript, nil
}

// speakerTurns diarizes a 16 kHz mono copy of src. Conversion failures fall
// back to src; diarization failures yield no turns.
func (c *Converter) speakerTurns(ctx context.Context, src string, requested bool) []model.SpeakerTurn {
	if !requested || !c.diarizer.Enabled() {
		return nil
	}

	wav := src
	if c.audio != nil {
		converted, err := c.audio.ToMono16k(ctx, src, os.TempDir())
		if err != nil {
			c.logger.Warn("16k conversion failed, diarizing original", zap.Error(err))
		} else {
			wav = converted
			defer func() {
				if wav != src {
					os.Remove(wav)
				}
			}()
		}
	}

	if err := c.acquire(ctx); err != nil {
		return nil
	}
	defer c.release()

	turns, err := c.diarizer.Diarize(ctx, wav)
	if err != nil {
		c.logger.Warn("diarization failed, using single speaker", zap.Error(err))
		return nil
	}
	return turns
}

func (c *Converter) acquire(ctx context.Context) error {
	if err := c.jobs.Acquire(ctx, 1); err != nil {
		return err
	}
	if c.metrics != nil {
		c.metrics.JobsInFlight.Inc()
	}
	return nil
}

func (c *Converter) release() {
	if c.metrics != nil {
		c.metrics.JobsInFlight.Dec()
	}
	c.jobs.Release(1)
}

func (c *Converter) save(ctx context.Context, doc *document.Document) (string, error) {
	path, err := document.SaveToDir(doc, c.outputDir)
	if err != nil {
		return "", err
	}
	if c.store != nil {
		if err := c.store.Put(ctx, filepath.Base(path), path); err != nil {
			return "", err
		}
	}
	return path, nil
}

// record stores history. Failures are logged only.
func (c *Converter) record(ctx context.Context, rec *model.ExportRecord) int64 {
	if c.db == nil {
		return 0
	}
	rec.CreatedAt = c.now().UTC()
	id, err := c.db.Record(ctx, rec)
	if err != nil {
		c.logger.Warn("failed to record export", zap.Error(err))
		return 0
	}
	return id
}

func (c *Converter) fail(ctx context.Context, style, source string, in Input, err error) {
	c.record(ctx, &model.ExportRecord{
		Source:       source,
		Style:        style,
		Translated:   in.Translate,
		Diarized:     in.Diarize && style == model.StyleDeposition,
		ErrorMessage: err.Error(),
	})
	c.observe(style, source, err)
	c.logger.Warn("export failed", zap.String("style", style), zap.String("source", source), zap.Error(err))
}

func (c *Converter) observe(style, source string, err error) {
	if c.metrics != nil {
		c.metrics.ObserveExport(style, source, err)
	}
}

func roundDuration(d *float64) *float64 {
	if d == nil {
		return nil
	}
	r := math.Round(*d*100) / 100
	return &r
}
