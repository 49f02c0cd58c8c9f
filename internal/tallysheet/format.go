// Package tallysheet renders peatland survey submissions into the fixed
// tallysheet document layout used on the paper form.
package tallysheet

import (
	"strings"

	"github.com/fumiama/go-docx"
)

const (
	fontName = "Cambria"

	// run sizes in half-points
	sizeHeader     = "24" // 12pt part headers
	sizeBody       = "22" // 11pt labels and values
	sizeCaption    = "20" // 10pt "(no image)" caption
	sizeErrCaption = "18" // 9pt "(error inserting image)" caption

	placeholderLength = 6
)

// InputText renders a submitted value for a data cell. Blank and
// whitespace-only values become a run of underscores, the visual blank of the
// printed form.
func InputText(value string) string {
	return InputTextN(value, placeholderLength)
}

// InputTextN is InputText with an explicit placeholder length.
func InputTextN(value string, n int) string {
	if strings.TrimSpace(value) == "" {
		return strings.Repeat("_", n)
	}
	return value
}

// CheckboxMark renders a checkbox field: any non-blank submission counts as
// checked.
func CheckboxMark(value string) string {
	if strings.TrimSpace(value) == "" {
		return "_"
	}
	return "X"
}

// styleRun applies the form's font family, size and weight to a run.
func styleRun(r *docx.Run, size string, bold, italic bool) *docx.Run {
	r.Font(fontName, "", fontName, "").Size(size)
	if bold {
		r.Bold()
	}
	if italic {
		r.Italic()
	}
	return r
}
