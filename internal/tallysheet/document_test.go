package tallysheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gambutlab/tallysheet/internal/models"
)

func paraText(p *docx.Paragraph) string {
	var sb strings.Builder
	for _, child := range p.Children {
		r, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range r.Children {
			switch tc := rc.(type) {
			case *docx.Text:
				sb.WriteString(tc.Text)
			case *docx.Tab:
				sb.WriteString("\t")
			}
		}
	}
	return sb.String()
}

func docText(d *docx.Docx) string {
	var sb strings.Builder
	for _, it := range d.Document.Body.Items {
		switch v := it.(type) {
		case *docx.Paragraph:
			sb.WriteString(paraText(v))
			sb.WriteString("\n")
		case *docx.Table:
			for _, row := range v.TableRows {
				for _, cell := range row.TableCells {
					sb.WriteString(cellText(cell))
					sb.WriteString("\n")
				}
			}
		}
	}
	return sb.String()
}

var photoItemLabels = []string{
	"1.  Air tanah, genangan atau banjir",
	"2.  Tutupan lahan, penggunaan lahan dan kondisinya",
	"3.  Keberadaan flora dan fauna yang dilindungi",
	"4.  Kondisi drainase alami dan drainase buatan",
	"5.  Kualitas Air/Kondisi Air Kanal",
	"6.  Pengukuran Tinggi Muka Air Tanah (TMAT) pada lubang bor titik pengamatan",
	"7.  Ketebalan gambut",
	"8.  Karakteristik substratum dibawah lapisan gambut",
	"9.  Perkembangan kondisi atau tingkat kerusakan lahan gambut (fungsi lindung/fungsi budidaya)",
	"10.  Karakteristik tanah dan kedalaman lapisan pirit",
	"11.  Porositas dan Kelengasan",
	"12.  Foto Tambahan",
}

func TestBuildEmptySubmission(t *testing.T) {
	doc := Build(models.NewSubmission())
	text := docText(doc)

	assert.Contains(t, text, "FORMULIR TALLYSHEET")
	assert.Contains(t, text, "A.\tHASIL PENGAMATAN LAPANGAN")
	assert.Contains(t, text, "B.\tFOTO  LAPANGAN")

	// every empty data cell renders as the underscore placeholder
	assert.Contains(t, text, "______")

	// all 32 photo slots (sketch + gallery) are placeholders
	assert.Equal(t, 32, strings.Count(text, "(no image)"))
	assert.Zero(t, strings.Count(text, "(error inserting image)"))
}

func TestBuildPhotoItemsInFixedOrder(t *testing.T) {
	text := docText(Build(models.NewSubmission()))

	last := -1
	for _, label := range photoItemLabels {
		idx := strings.Index(text, label)
		require.GreaterOrEqual(t, idx, 0, "missing photo item %q", label)
		require.Greater(t, idx, last, "photo item %q out of order", label)
		last = idx
	}
}

func TestBuildSampleSubmission(t *testing.T) {
	text := docText(Build(SampleSubmission()))

	assert.Contains(t, text, "Kelapa")
	assert.Contains(t, text, "Rafflesia")
	assert.Contains(t, text, "Orangutan")
	assert.Contains(t, text, "Januari")
	assert.Contains(t, text, "drainase tersumbat")
}

func TestBuildEmbedsUploadedPhoto(t *testing.T) {
	sub := models.NewSubmission()
	sub.Photos["foto_tmat_1"] = testPNG(t)

	text := docText(Build(sub))
	assert.Equal(t, 31, strings.Count(text, "(no image)"))
}

func TestBuildSetsPageMargins(t *testing.T) {
	doc := Build(models.NewSubmission())

	var sect *docx.SectPr
	for _, it := range doc.Document.Body.Items {
		if s, ok := it.(*docx.SectPr); ok {
			sect = s
		}
	}
	require.NotNil(t, sect, "document body has no section properties")
	require.NotNil(t, sect.PgMar, "section properties have no page margins")

	assert.EqualValues(t, 1440, sect.PgMar.Top, "top margin must be 1in")
	assert.EqualValues(t, 1440, sect.PgMar.Bottom, "bottom margin must be 1in")
	assert.EqualValues(t, 1800, sect.PgMar.Left, "left margin must be 1.25in")
	assert.EqualValues(t, 1800, sect.PgMar.Right, "right margin must be 1.25in")
}

func TestBuildSerializesToDocx(t *testing.T) {
	doc := Build(models.NewSubmission())

	var buf bytes.Buffer
	_, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	require.Greater(t, buf.Len(), 4)
	assert.Equal(t, "PK", buf.String()[:2], "a .docx file is a zip archive")
}
