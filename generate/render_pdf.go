package generate

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Page geometry in millimetres (US Letter, portrait).
const (
	pageMargin   = 20.0
	letterWidth  = 215.9
	bodyLineHt   = 6.0
	ruledLineGap = 10.0
	ruledLines   = 5
)

// renderPDF lays the document out as a paginated PDF. The body word-wraps
// to the printable width and overflows onto new pages automatically. A
// worksheet gets ruled answer lines after the body; the answer key, when
// present, always starts on a fresh page so it never shares a sheet with
// the student-facing content.
func renderPDF(doc layout) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	if doc.Title != "" {
		pdf.SetTitle(doc.Title, true)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	if doc.Title != "" {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.MultiCell(0, 9, tr(doc.Title), "", "C", false)
		pdf.Ln(1)
	}
	if doc.Meta != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(doc.Meta), "", "C", false)
	}
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.MultiCell(0, 5, tr("Generated on "+doc.Timestamp), "", "C", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	if doc.Body != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, bodyLineHt, tr(doc.Body), "", "L", false)
	}

	if doc.DocType == Worksheet {
		drawRuledLines(pdf)
	}

	if doc.AnswerKey != "" {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 8, "Answer Key", "", "C", false)
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, bodyLineHt, tr(doc.AnswerKey), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

// drawRuledLines appends blank answer lines after a worksheet body.
func drawRuledLines(pdf *fpdf.Fpdf) {
	pdf.Ln(6)
	pdf.SetDrawColor(150, 150, 150)
	for i := 0; i < ruledLines; i++ {
		// Let auto page break handle overflow between lines.
		pdf.Ln(ruledLineGap)
		y := pdf.GetY()
		pdf.Line(pageMargin, y, letterWidth-pageMargin, y)
	}
	pdf.SetDrawColor(0, 0, 0)
}
