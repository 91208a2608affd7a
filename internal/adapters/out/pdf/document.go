package pdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"labeling/internal/core/domain/model/render"
)

const pageMargin = 3.0

// document wraps one gofpdf instance under construction. All drawing happens
// sequentially on the calling goroutine.
type document struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// newDocument creates an empty PDF sized to the format's exact geometry.
// The size is passed as-is, so the orientation is already baked into the
// width and height rather than handled by gofpdf's page rotation.
func newDocument(format render.Format) *document {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size: gofpdf.SizeType{
			Wd: format.WidthMM(),
			Ht: format.HeightMM(),
		},
	})
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)

	return &document{
		pdf: pdf,
		// Core fonts are cp1252; the translator keeps accented Portuguese
		// field values intact.
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (d *document) output(w io.Writer) error {
	return d.pdf.Output(w)
}

// addLabelPage draws one volume label in the job's visual template.
func (d *document) addLabelPage(p preparedPage, style render.LayoutStyle) {
	d.pdf.AddPage()

	switch style {
	case render.StyleCompact:
		d.drawCompactLabel(p)
	default:
		// The branded template shares the enhanced geometry; its carrier
		// band is already resolved into the display fields.
		d.drawEnhancedLabel(p)
	}
}

// drawEnhancedLabel is the full-readability template: sender band, prominent
// invoice number, destination block, QR with the code underneath, sequence
// and weight boxes, and the dangerous-goods strip when the cargo carries one.
func (d *document) drawEnhancedLabel(p preparedPage) {
	pdf, tr := d.pdf, d.tr
	w, h := pdf.GetPageSize()

	qrSide := h * 0.42
	if qrSide > 32 {
		qrSide = 32
	}
	textWidth := w - qrSide - 3*pageMargin

	// Sender band
	pdf.SetXY(pageMargin, pageMargin)
	pdf.SetFont("Helvetica", "", 5)
	pdf.CellFormat(textWidth, 2.4, tr("REMETENTE"), "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(textWidth, 3.6, tr(clip(p.fields.Sender, 48)), "", 2, "L", false, 0, "")

	// Invoice number, the biggest element on the label
	pdf.SetFont("Helvetica", "", 5)
	pdf.CellFormat(textWidth, 2.4, tr("NOTA FISCAL"), "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(textWidth, 6.4, tr(p.invoiceNumber), "", 2, "L", false, 0, "")

	// Destination block
	pdf.SetFont("Helvetica", "", 5)
	pdf.CellFormat(textWidth, 2.4, tr("DESTINATÁRIO"), "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(textWidth, 3.4, tr(clip(p.fields.Recipient, 48)), "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 6)
	pdf.CellFormat(textWidth, 2.8, tr(clip(p.fields.Address, 56)), "", 2, "L", false, 0, "")
	pdf.CellFormat(textWidth, 2.8, tr(fmt.Sprintf("%s - %s", clip(p.fields.City, 32), p.fields.State)), "", 2, "L", false, 0, "")

	// Carrier and storage area
	pdf.SetFont("Helvetica", "", 5)
	pdf.CellFormat(textWidth, 2.4, tr("TRANSPORTADORA"), "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(textWidth, 3.0, tr(clip(p.fields.Carrier, 40)), "", 2, "L", false, 0, "")

	// QR code column with the volume code underneath
	qrX := w - pageMargin - qrSide
	d.drawQR(p.qr, p.code, qrX, pageMargin, qrSide)
	pdf.SetXY(qrX-6, pageMargin+qrSide+0.6)
	pdf.SetFont("Courier", "B", 6)
	pdf.CellFormat(qrSide+6, 2.6, p.code, "", 0, "C", false, 0, "")

	// Bottom row: sequence, weight, area
	bottomY := h - pageMargin - 7.2
	pdf.SetXY(pageMargin, bottomY)
	pdf.SetFont("Helvetica", "", 5)
	pdf.CellFormat(16, 2.4, tr("VOLUME"), "", 0, "L", false, 0, "")
	pdf.CellFormat(20, 2.4, tr("PESO TOTAL"), "", 0, "L", false, 0, "")
	pdf.CellFormat(12, 2.4, tr("ÁREA"), "", 1, "L", false, 0, "")

	pdf.SetX(pageMargin)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(16, 4.8, p.sequenceLabel, "", 0, "L", false, 0, "")
	pdf.CellFormat(20, 4.8, tr(p.fields.Weight), "", 0, "L", false, 0, "")
	pdf.CellFormat(12, 4.8, tr(p.fields.Area), "", 0, "L", false, 0, "")

	d.drawHazardStrip(p, bottomY)
}

// drawCompactLabel is the dense template for small rolls: code, invoice,
// destination and sequence only, with a smaller QR.
func (d *document) drawCompactLabel(p preparedPage) {
	pdf, tr := d.pdf, d.tr
	w, h := pdf.GetPageSize()

	qrSide := h * 0.5
	if qrSide > 24 {
		qrSide = 24
	}
	textWidth := w - qrSide - 3*pageMargin

	pdf.SetXY(pageMargin, pageMargin)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(textWidth, 5.2, tr(p.invoiceNumber), "", 2, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(textWidth, 3.2, tr(clip(p.fields.Recipient, 40)), "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 6)
	pdf.CellFormat(textWidth, 2.8, tr(fmt.Sprintf("%s - %s", clip(p.fields.City, 28), p.fields.State)), "", 2, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(textWidth, 5.0, p.sequenceLabel, "", 2, "L", false, 0, "")

	pdf.SetFont("Courier", "B", 6)
	pdf.SetXY(pageMargin, h-pageMargin-3)
	pdf.CellFormat(textWidth, 3, p.code, "", 0, "L", false, 0, "")

	d.drawQR(p.qr, p.code, w-pageMargin-qrSide, pageMargin, qrSide)
}

// drawHazardStrip draws the dangerous-goods line above the bottom row when
// the volume is classified. Unclassified cargo gets no strip at all.
func (d *document) drawHazardStrip(p preparedPage, bottomY float64) {
	if p.fields.UNNumber == "" {
		return
	}

	pdf, tr := d.pdf, d.tr

	pdf.SetXY(pageMargin, bottomY-3.4)
	pdf.SetFont("Helvetica", "B", 6)
	pdf.CellFormat(
		0, 3,
		tr(fmt.Sprintf("PRODUTO PERIGOSO  ONU: %s  RISCO: %s", p.fields.UNNumber, p.fields.RiskCode)),
		"", 0, "L", false, 0, "",
	)
}

// addMasterPage draws the single consolidation page of a master-label job.
func (d *document) addMasterPage(p preparedPage, job render.Job) {
	pdf, tr := d.pdf, d.tr
	pdf.AddPage()

	master := job.Master()
	w, h := pdf.GetPageSize()

	title := "ETIQUETA MÃE"
	if master.Kind().Storage() == "pallet" {
		title = "PALLET"
	}

	pdf.SetXY(pageMargin, pageMargin)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 4, tr(title), "", 2, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 7, master.Code(), "", 2, "L", false, 0, "")

	if master.Description() != "" {
		pdf.SetFont("Helvetica", "", 7)
		pdf.CellFormat(0, 3.2, tr(clip(master.Description(), 60)), "", 2, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("VOLUMES: %d", master.VolumeCount())), "", 2, "L", false, 0, "")

	// Linked codes, as many as the page fits
	pdf.SetFont("Courier", "", 6)
	maxRows := int((h - pdf.GetY() - pageMargin) / 2.6)
	for i, code := range master.LinkedVolumes() {
		if i >= maxRows {
			break
		}
		pdf.CellFormat(0, 2.6, code.String(), "", 2, "L", false, 0, "")
	}

	qrSide := h * 0.4
	if qrSide > 34 {
		qrSide = 34
	}
	d.drawQR(p.qr, p.code, w-pageMargin-qrSide, pageMargin, qrSide)
}

func (d *document) drawQR(png []byte, name string, x, y, side float64) {
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	d.pdf.ImageOptions(name, x, y, side, side, false, opts, 0, "")
}

// clip truncates a display value so one field can never overrun its box.
func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
