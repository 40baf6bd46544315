// Package pdf renders a submitted waiver as a fixed-layout, two-page
// printable document.
//
// Layout is deterministic: the same waiver and audit metadata always produce
// byte-identical output (the document creation date is pinned to the
// submitted-at timestamp), which is what makes the stored content digest
// meaningful. Section and field ordering are part of that contract; fonts and
// sizes are presentation detail.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/jjenkins/waiver/internal/audit"
	"github.com/jjenkins/waiver/internal/model"
)

const (
	headingSize = 12
	bodySize    = 10
	legalSize   = 8.5
	stampSize   = 8
)

type field struct {
	label string
	value string
}

// fields returns page 1 in presentation order: everything except the legal
// text and signature, which belong to page 2.
func fields(w model.Waiver) []field {
	return []field{
		{"Child Name", w.ChildName},
		{"Parent Name", w.ParentName},
		{"Parent Email", w.ParentEmail},
		{"Parent Phone", w.ParentPhone},
		{"Child DOB", w.ChildDOB},
		{"Child Address", w.ChildAddress},
		{"Child Medical Notes", w.ChildMedicalNotes},
		{"Child Doctor", w.ChildDoctor},
		{"Child Insurance", w.ChildInsurance},
		{"Emergency Contact", w.EmergencyName},
		{"Emergency Contact Phone", w.EmergencyPhone},
	}
}

// Render produces the printable release document: one page of labeled form
// fields followed by a page with the verbatim legal text, the signature, and
// the audit annotations.
func Render(w model.Waiver, meta audit.Metadata) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCreationDate(meta.SubmittedAt)
	doc.SetModificationDate(meta.SubmittedAt)
	doc.SetCatalogSort(true)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	for _, f := range fields(w) {
		doc.SetFont("Helvetica", "B", headingSize)
		doc.MultiCell(0, 6, tr(f.label), "", "L", false)
		doc.SetFont("Helvetica", "", bodySize)
		doc.MultiCell(0, 5, tr(orDash(f.value)), "", "L", false)
		doc.Ln(3)
	}

	doc.AddPage()
	doc.SetFont("Helvetica", "", legalSize)
	doc.MultiCell(0, 4, tr(w.LiabilityText), "", "L", false)
	doc.Ln(3)

	doc.SetFont("Helvetica", "B", headingSize)
	doc.MultiCell(0, 6, "Signature", "", "L", false)
	doc.SetFont("Helvetica", "", bodySize)
	doc.MultiCell(0, 5, tr(w.Signature), "", "L", false)
	doc.Ln(3)

	doc.SetFont("Helvetica", "", stampSize)
	for _, line := range []string{
		"Digitally signed on: " + w.DateSigned,
		"Submitted at:  " + meta.SubmittedAt.Format(time.RFC3339),
		"IP Address:    " + meta.IP,
		"User-Agent:    " + meta.UserAgent,
		"Referrer URL:  " + meta.Referer,
	} {
		doc.MultiCell(0, 4, tr(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render waiver pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// orDash keeps optional fields visible on the printed form.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
