package document

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucidscript/internal/app/model"
)

var fixedNow = time.Date(2025, 3, 7, 9, 5, 0, 0, time.UTC)

func readPart(t *testing.T, path, name string) string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestRenderStandard(t *testing.T) {
	doc := RenderStandard(StandardTitle, fixedNow, "Hello there.  How are you? 3 apples.")
	paras := doc.Paragraphs()

	require.Len(t, paras, 5)
	assert.Equal(t, Paragraph{Style: "Title", Text: StandardTitle}, paras[0])
	assert.Equal(t, "2025-03-07 09:05", paras[1].Text)
	assert.Equal(t, "Hello there.", paras[2].Text)
	assert.Equal(t, "How are you?", paras[3].Text)
	assert.Equal(t, "3 apples.", paras[4].Text)
}

func TestMetaLine(t *testing.T) {
	tests := []struct {
		name       string
		language   string
		translated bool
		want       string
	}{
		{"known language", "en", false, "2025-03-07 09:05  |  Language: en"},
		{"unknown language", "", false, "2025-03-07 09:05  |  Language: unknown"},
		{"translated", "de", true, "2025-03-07 09:05  |  Language: de  |  Translated→English"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MetaLine(fixedNow, tt.language, tt.translated))
		})
	}
}

func TestRenderDeposition_HeadersAndIndent(t *testing.T) {
	labeled := []model.LabeledSegment{
		{Speaker: "SPEAKER_00", Start: 0, End: 65.4, Text: "Please state your name."},
		{Speaker: "SPEAKER_01", Start: 65.5, End: 70, Text: ""},
	}
	paras := RenderDeposition(DepositionTitle, fixedNow, "en", false, labeled).Paragraphs()

	require.Len(t, paras, 6)
	assert.Equal(t, "Title", paras[0].Style)
	assert.Equal(t, Paragraph{Text: "SPEAKER_00  [00:00–01:05]", Bold: true}, paras[2])
	assert.Equal(t, "    Please state your name.", paras[3].Text)
	assert.Equal(t, Paragraph{Text: "SPEAKER_01  [01:06–01:10]", Bold: true}, paras[4])
	assert.Equal(t, "    ", paras[5].Text)
}

func TestRenderDeposition_WrapsAt80(t *testing.T) {
	long := strings.Repeat("word ", 40)
	paras := RenderDeposition(DepositionTitle, fixedNow, "en", false, []model.LabeledSegment{
		{Speaker: "Speaker 1", Text: long},
	}).Paragraphs()

	body := paras[3:]
	require.Len(t, body, 3)
	for _, p := range body {
		assert.True(t, strings.HasPrefix(p.Text, bodyIndent))
		assert.LessOrEqual(t, len(strings.TrimPrefix(p.Text, bodyIndent)), 80)
	}
}

func TestRenderDeposition_PageBreaks(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "line"
	}
	paras := RenderDeposition(DepositionTitle, fixedNow, "en", false, []model.LabeledSegment{
		{Speaker: "Speaker 1", Text: strings.Join(lines, "\n")},
	}).Paragraphs()

	breaks := 0
	bodyBeforeBreak := 0
	for _, p := range paras[3:] {
		if p.PageBreak {
			breaks++
			break
		}
		bodyBeforeBreak++
	}
	assert.Equal(t, 1, breaks)
	assert.Equal(t, linesPerPage, bodyBeforeBreak)
	assert.Len(t, paras, 3+30+1)
}

func TestSaveToDir(t *testing.T) {
	dir := t.TempDir()
	doc := New()
	doc.AddHeading("Tom & Jerry", 0)
	doc.AddBoldParagraph("<bold>")
	doc.AddPageBreak()
	doc.AddParagraph("after")

	path, err := SaveToDir(doc, filepath.Join(dir, "out"))
	require.NoError(t, err)

	name := filepath.Base(path)
	assert.Regexp(t, `^lucidscript_[0-9a-f]{8}\.docx$`, name)

	body := readPart(t, path, "word/document.xml")
	assert.Contains(t, body, `<w:pStyle w:val="Title"/>`)
	assert.Contains(t, body, "Tom &amp; Jerry")
	assert.Contains(t, body, "<w:b/></w:rPr><w:t xml:space=\"preserve\">&lt;bold&gt;</w:t>")
	assert.Contains(t, body, `<w:br w:type="page"/>`)

	assert.Contains(t, readPart(t, path, "[Content_Types].xml"), "wordprocessingml.document.main+xml")
	assert.Contains(t, readPart(t, path, "word/styles.xml"), `w:styleId="Title"`)
}

func TestAddHeadingLevels(t *testing.T) {
	doc := New()
	doc.AddHeading("a", 1)
	doc.AddHeading("b", 12)
	paras := doc.Paragraphs()
	assert.Equal(t, "Heading1", paras[0].Style)
	assert.Equal(t, "Heading9", paras[1].Style)
}
