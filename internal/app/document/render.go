package document

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"lucidscript/internal/app/model"
	"lucidscript/internal/app/util/files"
	"lucidscript/internal/app/util/text"
)

const (
	StandardTitle   = "LucidScript Transcript"
	DepositionTitle = "LucidScript Deposition Transcript"

	linesPerPage = 25
	wrapWidth    = 80
	bodyIndent   = "    "
)

// RenderStandard lays out a transcript as a title, a timestamp line and one
// paragraph per sentence group.
func RenderStandard(title string, now time.Time, transcript string) *Document {
	doc := New()
	doc.AddHeading(title, 0)
	doc.AddParagraph(now.Format("2006-01-02 15:04"))
	for _, p := range text.ToParagraphs(transcript) {
		doc.AddParagraph(p)
	}
	return doc
}

// RenderDeposition lays out speaker-labeled segments with a bold
// `Speaker  [mm:ss–mm:ss]` header and indented body lines wrapped at 80
// columns. A page break is inserted after every 25 body lines.
func RenderDeposition(title string, now time.Time, language string, translated bool, labeled []model.LabeledSegment) *Document {
	doc := New()
	doc.AddHeading(title, 0)
	doc.AddParagraph(MetaLine(now, language, translated))

	current := 0
	for _, seg := range labeled {
		doc.AddBoldParagraph(fmt.Sprintf("%s  [%s–%s]",
			seg.Speaker, text.FormatTimestamp(seg.Start), text.FormatTimestamp(seg.End)))

		for _, sub := range bodyLines(seg.Text) {
			if current >= linesPerPage {
				doc.AddPageBreak()
				current = 0
			}
			doc.AddParagraph(bodyIndent + sub)
			current++
		}
	}
	return doc
}

// MetaLine is the line under a deposition title.
func MetaLine(now time.Time, language string, translated bool) string {
	if language == "" {
		language = "unknown"
	}
	meta := fmt.Sprintf("%s  |  Language: %s", now.Format("2006-01-02 15:04"), language)
	if translated {
		meta += "  |  Translated→English"
	}
	return meta
}

// bodyLines splits segment text on line breaks and wraps each line. Blank
// lines survive as empty body lines.
func bodyLines(s string) []string {
	lines := splitLines(s)
	if len(lines) == 0 {
		lines = []string{""}
	}
	var out []string
	for _, line := range lines {
		wrapped := text.Wrap(line, wrapWidth)
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		out = append(out, wrapped...)
	}
	return out
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// OutputName returns a fresh `lucidscript_<8 hex>.docx` file name.
func OutputName() string {
	return "lucidscript_" + files.ShortID() + ".docx"
}

// SaveToDir saves doc under a fresh name in dir and returns the full path.
func SaveToDir(doc *Document, dir string) (string, error) {
	if err := files.EnsureDir(dir); err != nil {
		return "", err
	}
	out := filepath.Join(dir, OutputName())
	if err := doc.Save(out); err != nil {
		return "", err
	}
	return out, nil
}
