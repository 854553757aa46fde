package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tealeg/xlsx"

	"lucidscript/internal/app/model"
)

var headers = []string{
	"ID", "Created At", "Source", "Style", "Language", "Duration (s)",
	"Translated", "Diarized", "Document", "Error Message",
}

// ToExcel writes export history to an .xlsx workbook.
func ToExcel(records []model.ExportRecord, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Exports")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().Value = h
	}

	for _, r := range records {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(r.ID)
		row.AddCell().Value = r.CreatedAt.Format(time.RFC3339)
		row.AddCell().Value = r.Source
		row.AddCell().Value = r.Style
		row.AddCell().Value = r.Language
		if r.DurationSec != nil {
			row.AddCell().Value = fmt.Sprintf("%.2f", *r.DurationSec)
		} else {
			row.AddCell().Value = ""
		}
		row.AddCell().Value = strconv.FormatBool(r.Translated)
		row.AddCell().Value = strconv.FormatBool(r.Diarized)
		row.AddCell().Value = r.DocxFilename
		row.AddCell().Value = r.ErrorMessage
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}
