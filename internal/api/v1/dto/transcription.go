package dto

import (
	"mime/multipart"
	"strings"

	"lucidscript/internal/api/errors"
)

// TranscribeRequest is the multipart body of POST /transcribe.
type TranscribeRequest struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
}

// TranscribeResponse carries the plain transcript.
type TranscribeResponse struct {
	Transcript string `json:"transcript" example:"Please state your name."`
}

// FormatDocxRequest is the JSON body of POST /format_docx. RawText may be
// empty but must be present.
type FormatDocxRequest struct {
	RawText *string `json:"raw_text" binding:"required"`
}

// FormatDocxResponse points at the generated document.
type FormatDocxResponse struct {
	DocxPath string `json:"docx_path" example:"output/lucidscript_1a2b3c4d.docx"`
}

// ExportForm is the multipart body of the export endpoints. All fields are
// optional; the service decides whether enough input was given.
type ExportForm struct {
	File       *multipart.FileHeader `form:"file"`
	Language   string                `form:"language"`
	Translate  string                `form:"translate"`
	YouTubeURL string                `form:"youtube_url"`
	Diarize    string                `form:"diarize"`
}

// Validate rejects language codes that cannot be passed to a transcriber.
func (f *ExportForm) Validate() error {
	lang := strings.TrimSpace(f.Language)
	if len(lang) > 16 || strings.ContainsAny(lang, " /\\") {
		return errors.NewValidationError("Invalid export request", map[string]string{
			"language": "must be a short language code",
		})
	}
	return nil
}

// Flag reads a form flag. Only "true", in any case, enables it.
func Flag(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}
