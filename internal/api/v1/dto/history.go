package dto

import (
	"time"

	"lucidscript/internal/app/model"
)

// ListExportsQuery pages through export history.
type ListExportsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// DefaultLimit is used when no limit is given.
const DefaultLimit = 20

// EffectiveLimit returns the requested limit or DefaultLimit.
func (q ListExportsQuery) EffectiveLimit() int {
	if q.Limit == 0 {
		return DefaultLimit
	}
	return q.Limit
}

// ExportRecordResponse is one history entry.
type ExportRecordResponse struct {
	ID           int64     `json:"id"`
	Source       string    `json:"source"`
	Style        string    `json:"style"`
	Language     string    `json:"language,omitempty"`
	DurationSec  *float64  `json:"duration_sec"`
	Translated   bool      `json:"translated"`
	Diarized     bool      `json:"diarized"`
	DocxFilename string    `json:"docx_filename,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListExportsResponse wraps a page of history.
type ListExportsResponse struct {
	Exports []ExportRecordResponse `json:"exports"`
	Count   int                    `json:"count"`
}

// FromExportRecord converts a stored record.
func FromExportRecord(r model.ExportRecord) ExportRecordResponse {
	return ExportRecordResponse{
		ID:           r.ID,
		Source:       r.Source,
		Style:        r.Style,
		Language:     r.Language,
		DurationSec:  r.DurationSec,
		Translated:   r.Translated,
		Diarized:     r.Diarized,
		DocxFilename: r.DocxFilename,
		ErrorMessage: r.ErrorMessage,
		CreatedAt:    r.CreatedAt,
	}
}
