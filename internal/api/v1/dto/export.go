package dto

// ExportResponse describes a generated document.
type ExportResponse struct {
	Message      string   `json:"message" example:"Transcription and document export complete."`
	DocxPath     string   `json:"docx_path" example:"output/lucidscript_1a2b3c4d.docx"`
	DocxFilename string   `json:"docx_filename" example:"lucidscript_1a2b3c4d.docx"`
	Language     string   `json:"language" example:"en"`
	DurationSec  *float64 `json:"duration_sec" example:"12.34"`
	Translated   bool     `json:"translated"`
	Source       string   `json:"source" example:"upload" enums:"upload,youtube"`
}
