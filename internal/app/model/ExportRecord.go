package model

import "time"

// Source of the audio that was exported.
const (
	SourceUpload  = "upload"
	SourceYouTube = "youtube"
	SourceText    = "text"
)

// Document styles.
const (
	StyleStandard   = "standard"
	StyleDeposition = "deposition"
)

// ExportRecord is one row of export history.
type ExportRecord struct {
	ID           int64
	Source       string
	Style        string
	Language     string
	DurationSec  *float64
	Translated   bool
	Diarized     bool
	DocxFilename string
	ErrorMessage string
	CreatedAt    time.Time
}
