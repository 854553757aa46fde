package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lucidscript/internal/app/model"
)

func TestFlag(t *testing.T) {
	assert.True(t, Flag("true"))
	assert.True(t, Flag("TRUE"))
	assert.True(t, Flag(" True "))
	assert.False(t, Flag("1"))
	assert.False(t, Flag("yes"))
	assert.False(t, Flag(""))
}

func TestExportFormValidate(t *testing.T) {
	assert.NoError(t, (&ExportForm{}).Validate())
	assert.NoError(t, (&ExportForm{Language: "en"}).Validate())
	assert.Error(t, (&ExportForm{Language: "../etc"}).Validate())
	assert.Error(t, (&ExportForm{Language: "a very long language name"}).Validate())
}

func TestEffectiveLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, ListExportsQuery{}.EffectiveLimit())
	assert.Equal(t, 5, ListExportsQuery{Limit: 5}.EffectiveLimit())
}

func TestFromExportRecord(t *testing.T) {
	d := 1.5
	now := time.Now()
	got := FromExportRecord(model.ExportRecord{
		ID: 3, Source: model.SourceYouTube, Style: model.StyleDeposition,
		DurationSec: &d, Diarized: true, DocxFilename: "lucidscript_x.docx", CreatedAt: now,
	})
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, "youtube", got.Source)
	assert.Equal(t, &d, got.DurationSec)
	assert.True(t, got.Diarized)
	assert.Equal(t, now, got.CreatedAt)
}
