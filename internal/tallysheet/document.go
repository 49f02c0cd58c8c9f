package tallysheet

import (
	"github.com/fumiama/go-docx"

	"github.com/gambutlab/tallysheet/internal/models"
)

// page margins in twips: 1in top/bottom, 1.25in left/right
const (
	marginTopBottom = 1440
	marginLeftRight = 1800
)

// newDocument returns an empty A4 document with the form's page margins.
// WithA4Page appends the section properties to the body; the margins are set
// on that same SectPr.
func newDocument() *docx.Docx {
	doc := docx.New().WithDefaultTheme().WithA4Page()
	for _, it := range doc.Document.Body.Items {
		if sect, ok := it.(*docx.SectPr); ok {
			sect.PgMar = &docx.PgMar{
				Top:    marginTopBottom,
				Bottom: marginTopBottom,
				Left:   marginLeftRight,
				Right:  marginLeftRight,
			}
		}
	}
	return doc
}

// Build renders a submission into a fresh tallysheet document mirroring the
// paper form: part A (sections 1-17) followed by the part B photo gallery.
// Builders only ever append; a failed photo degrades to a caption and never
// aborts the document.
func Build(sub *models.Submission) *docx.Docx {
	doc := newDocument()
	f := sub.Fields

	addFormulirHeader(doc, f)
	addElevasiLahan(doc, f)
	addKondisiAirTanah(doc, f)
	addTutupanLahan(doc, f)
	addFloraFauna(doc, f)
	addDrainase(doc, f)
	addKualitasAir(doc, f)
	addSubstratumTanahLiat(doc, f)
	addTipeLuapan(doc, f)
	addKetebalanGambut(doc, f)
	addSubstratumBawahGambut(doc, f)
	addPerkembanganKerusakan(doc, f)
	addInformasiKebakaran(doc, f)
	addAnalisisLabHeader(doc)
	addPorositas(doc, f)
	addKelengasan(doc, f)
	addCOrganik(doc, f)
	addSketsaLokasi(doc, sub.Photos.Get("sketsa_lokasi_image"))

	addFotoLapangan(doc, sub.Photos)
	addFotoTambahan(doc, sub.Photos)

	return doc
}
