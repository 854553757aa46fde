package metrics

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lucidscript/internal/app/api"
	"lucidscript/internal/app/testutil"
)

func newTestMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	return NewWithRegisterer(reg, reg)
}

func TestInstrumentTranscriber(t *testing.T) {
	m := newTestMetrics()
	next := new(testutil.MockTranscriber)
	next.On("Transcribe", mock.Anything, "ok.wav", api.Options{}).Return(testutil.SampleTranscript(), nil)
	next.On("Transcribe", mock.Anything, "bad.wav", api.Options{}).Return(nil, errors.New("boom"))

	tr := InstrumentTranscriber(next, "whisper_cpp", m)
	_, err := tr.Transcribe(context.Background(), "ok.wav", api.Options{})
	require.NoError(t, err)
	_, err = tr.Transcribe(context.Background(), "bad.wav", api.Options{})
	require.Error(t, err)

	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.Transcriptions.WithLabelValues("whisper_cpp", "success")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.Transcriptions.WithLabelValues("whisper_cpp", "error")))
	assert.Equal(t, 1, promtestutil.CollectAndCount(m.TranscriptionDuration))
	assert.Equal(t, "whisper_cpp", tr.Info().Name)
}

func TestObserveExport(t *testing.T) {
	m := newTestMetrics()
	m.ObserveExport("deposition", "youtube", nil)
	m.ObserveExport("deposition", "youtube", nil)
	m.ObserveExport("standard", "upload", errors.New("x"))

	assert.Equal(t, 2.0, promtestutil.ToFloat64(m.Exports.WithLabelValues("deposition", "youtube", "success")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.Exports.WithLabelValues("standard", "upload", "error")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.JobsInFlight.Set(2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), "lucidscript_jobs_in_flight 2")
	assert.Contains(t, string(body), "go_goroutines")
}
