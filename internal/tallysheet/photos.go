package tallysheet

import (
	"github.com/fumiama/go-docx"

	"github.com/gambutlab/tallysheet/internal/models"
)

// photoItemTitle writes the numbered bold label above a photo block.
func photoItemTitle(doc *docx.Docx, text string) {
	styleRun(doc.AddParagraph().AddText(text), sizeBody, true, false)
}

// photoPairTable appends a two-column table with one photo slot per cell.
func photoPairTable(doc *docx.Docx, photos models.Photos, left, right string) {
	tbl := doc.AddTable(1, 2, tableWidth, nil)
	insertImageCell(cellAt(tbl, 0, 0), photos.Get(left))
	insertImageCell(cellAt(tbl, 0, 1), photos.Get(right))
}

// addFotoLapangan appends part B of the form: the gallery header and photo
// items 1-4.
func addFotoLapangan(doc *docx.Docx, photos models.Photos) {
	header := doc.AddParagraph().Justification("center")
	styleRun(header.AddText("B.\tFOTO  LAPANGAN"), sizeHeader, true, false)
	note := doc.AddParagraph().Justification("center")
	styleRun(note.AddText("Seluruh hasil foto yang diambil harus jelas dan tidak membelakangi matahari"),
		sizeErrCaption, false, true)

	photoItemTitle(doc, "1.  Air tanah, genangan atau banjir")
	photoPairTable(doc, photos, "foto_air_tanah_genangan_1", "foto_air_tanah_genangan_2")

	photoItemTitle(doc, "2.  Tutupan lahan, penggunaan lahan dan kondisinya")
	photoPairTable(doc, photos, "foto_tutupan_lahan_1", "foto_tutupan_lahan_2")

	photoItemTitle(doc, "3.  Keberadaan flora dan fauna yang dilindungi")
	photoPairTable(doc, photos, "foto_flora_fauna_1", "foto_flora_fauna_2")

	photoItemTitle(doc, "4.  Kondisi drainase alami dan drainase buatan")
	tbl := doc.AddTable(2, 2, tableWidth, nil)
	headerCell(cellAt(tbl, 0, 0), "Drainase alami")
	headerCell(cellAt(tbl, 0, 1), "Drainase buatan")
	insertImageCell(cellAt(tbl, 1, 0), photos.Get("foto_drainase_alami"))
	insertImageCell(cellAt(tbl, 1, 1), photos.Get("foto_drainase_buatan"))
}

// addFotoTambahan appends photo items 5-12: the remaining measurement photos
// and the free extra slots, two per row.
func addFotoTambahan(doc *docx.Docx, photos models.Photos) {
	photoItemTitle(doc, "5.  Kualitas Air/Kondisi Air Kanal")
	tbl := doc.AddTable(2, 3, tableWidth, nil)
	headerCell(cellAt(tbl, 0, 0), "EC")
	headerCell(cellAt(tbl, 0, 1), "TDS")
	headerCell(cellAt(tbl, 0, 2), "pH")
	insertImageCell(cellAt(tbl, 1, 0), photos.Get("foto_kualitas_air_ec"))
	insertImageCell(cellAt(tbl, 1, 1), photos.Get("foto_kualitas_air_tds"))
	insertImageCell(cellAt(tbl, 1, 2), photos.Get("foto_kualitas_air_ph"))
	doc.AddParagraph()

	photoItemTitle(doc, "6.  Pengukuran Tinggi Muka Air Tanah (TMAT) pada lubang bor titik pengamatan")
	photoPairTable(doc, photos, "foto_tmat_1", "foto_tmat_2")
	doc.AddParagraph()

	photoItemTitle(doc, "7.  Ketebalan gambut")
	photoPairTable(doc, photos, "foto_ketebalan_gambut_1", "foto_ketebalan_gambut_2")
	doc.AddParagraph()

	photoItemTitle(doc, "8.  Karakteristik substratum dibawah lapisan gambut")
	sub := doc.AddTable(2, 2, tableWidth, nil)
	headerCell(cellAt(sub, 0, 0), "EC")
	headerCell(cellAt(sub, 0, 1), "pH")
	insertImageCell(cellAt(sub, 1, 0), photos.Get("foto_substratum_ec"))
	insertImageCell(cellAt(sub, 1, 1), photos.Get("foto_substratum_ph"))
	doc.AddParagraph()

	photoItemTitle(doc, "9.  Perkembangan kondisi atau tingkat kerusakan lahan gambut (fungsi lindung/fungsi budidaya)")
	photoPairTable(doc, photos, "foto_kerusakan_lahan_gambut_1", "foto_kerusakan_lahan_gambut_2")
	doc.AddParagraph()

	photoItemTitle(doc, "10.  Karakteristik tanah dan kedalaman lapisan pirit")
	photoPairTable(doc, photos, "foto_karakteristik_tanah_pirit_1", "foto_karakteristik_tanah_pirit_2")
	doc.AddParagraph()

	photoItemTitle(doc, "11.  Porositas dan Kelengasan")
	photoPairTable(doc, photos, "foto_porositas_kelengasan_1", "foto_porositas_kelengasan_2")
	doc.AddParagraph()

	photoItemTitle(doc, "12.  Foto Tambahan")
	extra := []string{
		"foto_tambahan_1", "foto_tambahan_2", "foto_tambahan_3", "foto_tambahan_4",
		"foto_tambahan_5", "foto_tambahan_6", "foto_tambahan_7", "foto_tambahan_8",
	}
	for i := 0; i < len(extra); i += 2 {
		photoPairTable(doc, photos, extra[i], extra[i+1])
		doc.AddParagraph()
	}
}
