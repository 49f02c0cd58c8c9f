package tallysheet

import (
	"github.com/fumiama/go-docx"

	"github.com/gambutlab/tallysheet/internal/models"
)

// printable width of the page in twips; tables span it fully
const tableWidth = 9026

func cellAt(tbl *docx.Table, row, col int) *docx.WTableCell {
	return tbl.TableRows[row].TableCells[col]
}

// sectionTitle writes the numbered bold label that precedes each form block.
func sectionTitle(doc *docx.Docx, text string) {
	styleRun(doc.AddParagraph().AddText(text), sizeBody, true, false)
}

func labelCell(c *docx.WTableCell, text string) {
	styleRun(c.AddParagraph().AddText(text), sizeBody, false, false)
}

func headerCell(c *docx.WTableCell, text string) {
	p := c.AddParagraph().Justification("center")
	styleRun(p.AddText(text), sizeBody, true, false)
}

func valueCell(c *docx.WTableCell, f models.Fields, field string) {
	styleRun(c.AddParagraph().AddText(InputText(f.Get(field))), sizeBody, false, false)
}

func centerValueCell(c *docx.WTableCell, text string) {
	p := c.AddParagraph().Justification("center")
	styleRun(p.AddText(text), sizeBody, false, false)
}

// checkboxPara appends one "Label ( X )" line to a cell.
func checkboxPara(c *docx.WTableCell, f models.Fields, field, label string) {
	text := label + " ( " + CheckboxMark(f.Get(field)) + " )"
	styleRun(c.AddParagraph().AddText(text), sizeBody, false, false)
}

// addFormulirHeader writes the document title, the part A header and the
// coordinate table (section 1 of the paper form).
func addFormulirHeader(doc *docx.Docx, f models.Fields) {
	title := doc.AddParagraph().Justification("center")
	styleRun(title.AddText("FORMULIR TALLYSHEET"), sizeHeader, true, false)
	subtitle := doc.AddParagraph().Justification("center")
	styleRun(subtitle.AddText("PEMANTAUAN KONDISI EKOSISTEM GAMBUT"), sizeHeader, true, false)
	doc.AddParagraph()

	part := doc.AddParagraph()
	styleRun(part.AddText("A.\tHASIL PENGAMATAN LAPANGAN"), sizeHeader, true, false)

	sectionTitle(doc, "1.  Titik Koordinat")
	tbl := doc.AddTable(3, 5, tableWidth, nil)
	for i, h := range []string{"", "Derajat (°)", "Menit (')", "Detik (\")", "Arah"} {
		headerCell(cellAt(tbl, 0, i), h)
	}
	labelCell(cellAt(tbl, 1, 0), "Latitude")
	for i, field := range []string{"latitude_derajat", "latitude_menit", "latitude_detik", "latitude_arah"} {
		centerValueCell(cellAt(tbl, 1, i+1), InputText(f.Get(field)))
	}
	labelCell(cellAt(tbl, 2, 0), "Longitude")
	for i, field := range []string{"longitude_derajat", "longitude_menit", "longitude_detik", "longitude_arah"} {
		centerValueCell(cellAt(tbl, 2, i+1), InputText(f.Get(field)))
	}
	doc.AddParagraph()
}

func addElevasiLahan(doc *docx.Docx, f models.Fields) {
	sectionTitle(doc, "2.  Elevasi Lahan")
	tbl := doc.AddTable(1, 2, tableWidth, nil)
	labelCell(cellAt(tbl, 0, 0), "Elevasi lahan (mdpl)")
	valueCell(cellAt(tbl, 0, 1), f, "elevasi_lahan")
	doc.AddParagraph()
}

func addKondisiAirTanah(doc *docx.Docx, f models.Fields) {
	sectionTitle(doc, "3.  Kondisi Air Tanah, Genangan dan Banjir")
	tbl := doc.AddTable(6, 2, tableWidth, nil)

	labelCell(cellAt(tbl, 0, 0), "Kedalaman air tanah (cm)")
	valueCell(cellAt(tbl, 0, 1), f, "kedalaman_air_tanah")

	labelCell(cellAt(tbl, 1, 0), "Tinggi genangan (cm)")
	valueCell(cellAt(tbl, 1, 1), f, "genangan")

	labelCell(cellAt(tbl, 2, 0), "Banjir - bulan kejadian")
	valueCell(cellAt(tbl, 2, 1), f, "banjir_bulan")

	labelCell(cellAt(tbl, 3, 0), "Banjir - lama kejadian (hari)")
	valueCell(cellAt(tbl, 3, 1), f, "banjir_lama_hari")

	labelCell(cellAt(tbl, 4, 0), "Banjir - ketinggian air (cm)")
	valueCell(cellAt(tbl, 4, 1), f, "banjir_ketinggian_air")

	labelCell(cellAt(tbl, 5, 0), "Sumber air")
	src := cellAt(tbl, 5, 1)
	checkboxPara(src, f, "sumber_air_hujan", "Hujan")
	checkboxPara(src, f, "sumber_air_limpasan_sungai", "Limpasan sungai")
	checkboxPara(src, f, "sumber_air_kiriman_hulu", "Kiriman dari hulu")
	lainnya := "Lainnya ( " + CheckboxMark(f.Get("sumber_air_lainnya_checkbox")) + " ) : " +
		InputText(f.Get("sumber_air_lainnya_text"))
	styleRun(src.AddParagraph().AddText(lainnya), sizeBody, false, false)
	doc.AddParagraph()
}

func addTutupanLahan(doc *docx.Docx, f models.Fields) {
	sectionTitle(doc, "4.  Tutupan Lahan, Penggunaan Lahan dan Kondisinya")
	tbl := doc.AddTable(4, 2, tableWidth, nil)

	labelCell(cellAt(tbl, 0, 0), "Jenis tanaman")
	valueCell(cellAt(tbl, 0, 1), f, "jenis_tanaman")

	labelCell(cellAt(tbl, 1, 0), "Status pengelolaan")
	status := cellAt(tbl, 1, 1)
	checkboxPara(status, f, "status_masyarakat", "Masyarakat")
	checkboxPara(status, f, "status_perusahaan", "Perusahaan")

	labelCell(cellAt(tbl, 2, 0), "Nama perusahaan")
	valueCell(cellAt(tbl, 2, 1), f, "nama_perusahaan")

	labelCell(cellAt(tbl, 3, 0), "Luas konsesi (ha)")
	valueCell(cellAt(tbl, 3, 1), f, "luas_konsesi")
	doc.AddParagraph()
}

func addFloraFauna(doc *docx.Docx, f models.Fields) {
	sectionTitle(doc, "5.  Keberadaan Flora dan Fauna yang Dilindungi")
	tbl := doc.AddTable(2, 2, tableWidth, nil)

	labelCell(cellAt(tbl, 0, 0), "Flora")
	flora := cellAt(tbl, 0, 1)
	checkboxPara(flora, f, "flora_tidak_ada", "Tidak ada")
	line := "Ada ( " + CheckboxMark(f.Get("flora_ada")) + " ), jenis: " + InputText(f.Get("flora_jenis"))
	styleRun(flora.AddParagraph().AddText(line), sizeBody, false, false)

	labelCell(cellAt(tbl, 1, 0), "Fauna")
	fauna := cellAt(tbl, 1, 1)
	checkboxPara(fauna, f, "fauna_tidak_ada", "Tidak ada")
	line = "Ada ( " + CheckboxMark(f.Get("fauna_ada")) + " ), jenis: " + InputText(f.Get("fauna_jenis"))
	styleRun(fauna.AddParagraph().AddText(line), sizeBody, false, false)
	doc.AddParagraph()
}

func addDrainase(doc *docx.Docx, f models.Fields) {
	sectionTitle(doc, "6.  Kondisi Drainase Alami dan Drainase Buatan")
	tbl := doc.AddTable(3, 2, tableWidth, nil)

	labelCell(cellAt(tbl, 0, 0), "Drainase alami")
	alami := cellAt(tbl, 0, 1)
	checkboxPara(alami, f, "drainase_alami_tidak_ada", "Tidak ada")
	checkboxPara(alami, f, "drainase_alami_ada", "Ada")

	labelCell(cellAt(tbl, 1, 0), "Drainase buatan")
	buatan := cellAt(tbl, 1, 1)
	checkboxPara(buatan, f, "drainase_buatan_tidak_ada", "Tidak ada")
	checkboxPara(buatan, f, "drainase_buatan_ada", "Ada")
	checkboxPara(buatan, f, "drainase_buatan_saluran_terbuka", "Saluran terbuka")
	checkboxPara(buatan, f, "drainase_buatan_saluran_terkontrol", "Saluran terkontrol")

	labelCell(cellAt(tbl, 2, 0), "Tinggi muka air saluran (cm)")
	valueCell(cellAt(tbl, 2, 1), f, "tinggi_muka_air_saluran")
	doc.AddParagraph()
}

func addKualitasAir(doc *docx.Docx, f models.Fields) {
	sectionTitle(doc, "7.  Kualitas Air/Kondisi Air Kanal")
	tbl := doc.AddTable(4, 3, tableWidth, nil)
	headerCell(cellAt(tbl, 0, 0), "")
	headerCell(cellAt(tbl, 0, 1), "Air tanah")
	headerCell(cellAt(tbl, 0, 2), "Air saluran")

	labelCell(cellAt(tbl, 1, 0), "pH")
	centerValueCell(cellAt(tbl, 1, 1), InputText(f.Get("kualitas_air_tanah_ph")))
	centerValueCell(cellAt(tbl, 1, 2), InputText(f.Get("kualitas_air_saluran_ph")))

	labelCell(cellAt(tbl, 2, 0), "EC (µS/cm)")
	centerValueCell(cellAt(tbl, 2, 1), InputText(f.Get("kualitas_air_tanah_ec")))
	centerValueCell(cellAt(tbl, 2, 2), InputText(f.Get("kualitas_air_saluran_ec")))

	labelCell(cellAt(tbl, 3, 0), "TDS (ppm)")
	centerValueCell(cellAt(tbl, 3, 1), InputText(f.Get("kualitas_air_tanah_tds")))
	centerValueCell(cellAt(tbl, 3, 2), InputText(f.Get("kualitas_air_saluran_tds")))
	doc.AddParagraph()
}

func addSubstratumTanahLiat(doc *docx.Docx, f models.Fields) {
	sectionTitle(doc, "8.  Substratum Tanah Liat")
	tbl := doc.AddTable(2, 2, tableWidth, nil)
	labelCell(cellAt(tbl, 0, 0), "pH")
	valueCell(cellAt(tbl, 0, 1), f, "substratum_tanah_liat_ph")
	labelCell(cellAt(tbl, 1, 0), "EC (µS/cm)")
	valueCell(cellAt(tbl, 1, 1), f, "substratum_tanah_liat_ec")
	doc.AddParagraph()
}

func addTipeLuapan(doc *docx.Docx, f models.Fields) {
	sectionTitle(doc, "9.  Tipe Luapan")
	tbl := doc.AddTable(3, 5, tableWidth, nil)
	for i, h := range []string{"", "A", "B", "C", "D"} {
		headerCell(cellAt(tbl, 0, i), h)
	}
	labelCell(cellAt(tbl, 1, 0), "Musim kemarau")
	for i, field := range []string{"tipe_luapan_kemarau_a", "tipe_luapan_kemarau_b", "tipe_luapan_kemarau_c", "tipe_luapan_kemarau_d"} {
		centerValueCell(cellAt(tbl, 1, i+1), CheckboxMark(f.Get(field)))
	}
	labelCell(cellAt(tbl, 2, 0), "Musim hujan")
	for i, field := range []string{"tipe_luapan_hujan_a", "tipe_luapan_hujan_b", "tipe_luapan_hujan_c", "tipe_luapan_hujan_d"} {
		centerValueCell(cellAt(tbl, 2, i+1), CheckboxMark(f.Get(field)))
	}
	doc.AddParagraph()
}

func addKetebalanGambut(doc *docx.Docx, f models.Fields) {
	sectionTitle(doc, "10.  Ketebalan Gambut dan Tingkat Perombakan")
	tbl := doc.AddTable(2, 2, tableWidth, nil)

	labelCell(cellAt(tbl, 0, 0), "Ketebalan gambut (cm)")
	valueCell(cellAt(tbl, 0, 1), f, "ketebalan_gambut_cm")

	labelCell(cellAt(tbl, 1, 0), "Tingkat perombakan")
	tingkat := cellAt(tbl, 1, 1)
	checkboxPara(tingkat, f, "tingkat_perombakan_saprik", "Saprik")
	checkboxPara(tingkat, f, "tingkat_perombakan_hemik", "Hemik")
	checkboxPara(tingkat, f, "tingkat_perombakan_fibrik", "Fibrik")
	doc.AddParagraph()
}

func addSubstratumBawahGambut(doc *docx.Docx, f models.Fields) {
	sectionTitle(doc, "11.  Substratum di Bawah Lapisan Gambut")
	tbl := doc.AddTable(5, 1, tableWidth, nil)
	checkboxPara(cellAt(tbl, 0, 0), f, "substratum_pasir_kwarsa", "Pasir kwarsa")
	checkboxPara(cellAt(tbl, 1, 0), f, "substratum_clay_sedimen_sungai", "Clay/sedimen sungai")
	checkboxPara(cellAt(tbl, 2, 0), f, "substratum_sedimen_berpirit", "Sedimen berpirit")
	checkboxPara(cellAt(tbl, 3, 0), f, "substratum_granit", "Granit")
	lainnya := "Lainnya ( " + CheckboxMark(f.Get("substratum_lainnya_checkbox")) + " ) : " +
		InputText(f.Get("substratum_lainnya_text"))
	styleRun(cellAt(tbl, 4, 0).AddParagraph().AddText(lainnya), sizeBody, false, false)
	doc.AddParagraph()
}

func addPerkembanganKerusakan(doc *docx.Docx, f models.Fields) {
	sectionTitle(doc, "12.  Perkembangan Kondisi atau Tingkat Kerusakan Lahan Gambut")
	tbl := doc.AddTable(3, 2, tableWidth, nil)

	labelCell(cellAt(tbl, 0, 0), "Kerusakan lahan")
	rusak := cellAt(tbl, 0, 1)
	checkboxPara(rusak, f, "kerusakan_drainase_buatan", "Terdapat drainase buatan")
	checkboxPara(rusak, f, "kerusakan_terekspos_sedimen", "Terekspos sedimen berpirit/kwarsa")

	labelCell(cellAt(tbl, 1, 0), "Kondisi tanaman")
	tanaman := cellAt(tbl, 1, 1)
	checkboxPara(tanaman, f, "kondisi_tanaman_tidak_normal", "Tidak normal")
	checkboxPara(tanaman, f, "kondisi_tanaman_tidak_produktif", "Tidak produktif")
	checkboxPara(tanaman, f, "kondisi_tanaman_miring_tumbang", "Miring/tumbang")
	subsiden := "Terjadi subsiden ( " + CheckboxMark(f.Get("kondisi_tanaman_terjadi_subsiden_checkbox")) +
		" ), besar subsiden (cm): " + InputText(f.Get("kondisi_tanaman_subsiden_cm"))
	styleRun(tanaman.AddParagraph().AddText(subsiden), sizeBody, false, false)

	labelCell(cellAt(tbl, 2, 0), "Kerapatan tajuk (%)")
	valueCell(cellAt(tbl, 2, 1), f, "kerapatan_tajuk")
	doc.AddParagraph()
}

func addInformasiKebakaran(doc *docx.Docx, f models.Fields) {
	sectionTitle(doc, "13.  Informasi Kebakaran dan Hujan Terakhir")
	tbl := doc.AddTable(6, 2, tableWidth, nil)

	labelCell(cellAt(tbl, 0, 0), "Kebakaran terakhir (tanggal/bulan/tahun)")
	kebakaran := InputText(f.Get("kebakaran_tanggal")) + " / " +
		InputText(f.Get("kebakaran_bulan")) + " / " +
		InputText(f.Get("kebakaran_tahun"))
	labelCell(cellAt(tbl, 0, 1), kebakaran)

	labelCell(cellAt(tbl, 1, 0), "Lama kejadian kebakaran (bulan)")
	valueCell(cellAt(tbl, 1, 1), f, "kebakaran_lama_kejadian_bulan")

	labelCell(cellAt(tbl, 2, 0), "Upaya pemadaman")
	padam := cellAt(tbl, 2, 1)
	checkboxPara(padam, f, "pemadaman_swadaya_masyarakat", "Swadaya masyarakat")
	checkboxPara(padam, f, "pemadaman_bantuan_pemerintah", "Bantuan pemerintah")

	labelCell(cellAt(tbl, 3, 0), "Hujan terakhir (tanggal/bulan/tahun)")
	hujan := InputText(f.Get("hujan_tanggal")) + " / " +
		InputText(f.Get("hujan_bulan")) + " / " +
		InputText(f.Get("hujan_tahun"))
	labelCell(cellAt(tbl, 3, 1), hujan)

	labelCell(cellAt(tbl, 4, 0), "Lama kejadian hujan (jam)")
	valueCell(cellAt(tbl, 4, 1), f, "hujan_lama_kejadian_jam")

	labelCell(cellAt(tbl, 5, 0), "Intensitas hujan")
	intensitas := cellAt(tbl, 5, 1)
	checkboxPara(intensitas, f, "intensitas_hujan_tinggi", "Tinggi")
	checkboxPara(intensitas, f, "intensitas_hujan_sedang", "Sedang")
	checkboxPara(intensitas, f, "intensitas_hujan_rendah", "Rendah")
	doc.AddParagraph()
}

func addAnalisisLabHeader(doc *docx.Docx) {
	p := doc.AddParagraph()
	styleRun(p.AddText("HASIL ANALISIS LABORATORIUM"), sizeHeader, true, false)
	note := doc.AddParagraph()
	styleRun(note.AddText("(diisi setelah hasil analisis laboratorium diterima)"), sizeErrCaption, false, true)
}

func addPorositas(doc *docx.Docx, f models.Fields) {
	sectionTitle(doc, "14.  Porositas")
	tbl := doc.AddTable(1, 2, tableWidth, nil)
	labelCell(cellAt(tbl, 0, 0), "Bobot isi (g/cm³)")
	valueCell(cellAt(tbl, 0, 1), f, "porositas_bobot_isi")
	doc.AddParagraph()
}

func addKelengasan(doc *docx.Docx, f models.Fields) {
	sectionTitle(doc, "15.  Kelengasan")
	tbl := doc.AddTable(1, 2, tableWidth, nil)
	labelCell(cellAt(tbl, 0, 0), "Kadar air (%)")
	valueCell(cellAt(tbl, 0, 1), f, "kelengasan_kadar_air")
	doc.AddParagraph()
}

func addCOrganik(doc *docx.Docx, f models.Fields) {
	sectionTitle(doc, "16.  C-Organik")
	tbl := doc.AddTable(1, 2, tableWidth, nil)
	labelCell(cellAt(tbl, 0, 0), "C-Organik (%)")
	valueCell(cellAt(tbl, 0, 1), f, "c_organik")
	doc.AddParagraph()
}

func addSketsaLokasi(doc *docx.Docx, sketch []byte) {
	sectionTitle(doc, "17.  Sketsa Lokasi")
	tbl := doc.AddTable(1, 1, tableWidth, nil)
	insertImageCell(cellAt(tbl, 0, 0), sketch)
	doc.AddParagraph()
}
