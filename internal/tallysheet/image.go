package tallysheet

import (
	"bytes"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/fumiama/go-docx"
)

const (
	emuPerInch          = 914400
	maxImageWidthInches = 2.8
)

// insertImageCell fills a photo slot cell: a centered image capped at the
// maximum display width, or an italic caption when the slot is empty or the
// bytes do not decode. Image problems never abort document generation.
func insertImageCell(cell *docx.WTableCell, data []byte) {
	p := cell.AddParagraph().Justification("center")
	if len(data) == 0 {
		styleRun(p.AddText("(no image)"), sizeCaption, false, true)
		return
	}
	embedImage(p, data)
}

// insertImageCellFromFile is insertImageCell for an image on disk. An empty
// path counts as an absent slot; an unreadable file degrades to the error
// caption like any undecodable upload.
func insertImageCellFromFile(cell *docx.WTableCell, path string) {
	p := cell.AddParagraph().Justification("center")
	if path == "" {
		styleRun(p.AddText("(no image)"), sizeCaption, false, true)
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		styleRun(p.AddText("(error inserting image)"), sizeErrCaption, false, true)
		return
	}
	embedImage(p, data)
}

func embedImage(p *docx.Paragraph, data []byte) {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		styleRun(p.AddText("(error inserting image)"), sizeErrCaption, false, true)
		return
	}
	run, err := p.AddInlineDrawing(data)
	if err != nil {
		styleRun(p.AddText("(error inserting image)"), sizeErrCaption, false, true)
		return
	}
	clampDrawingWidth(run, int64(maxImageWidthInches*emuPerInch))
}

// clampDrawingWidth rescales an inline drawing so its displayed width does
// not exceed maxEMU, preserving the aspect ratio.
func clampDrawingWidth(r *docx.Run, maxEMU int64) {
	for _, child := range r.Children {
		d, ok := child.(*docx.Drawing)
		if !ok || d.Inline == nil || d.Inline.Extent == nil {
			continue
		}
		ext := d.Inline.Extent
		if ext.CX <= maxEMU || ext.CX == 0 {
			continue
		}
		ext.CY = ext.CY * maxEMU / ext.CX
		ext.CX = maxEMU
	}
}
