// Package export renders a tailored resume as a single-column PDF.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"tailor-backend/internal/tailoring"
)

const (
	fontFamily = "Helvetica"

	sizeName         = 16
	sizeSectionTitle = 12
	sizeJobTitle     = 11
	sizeBody         = 10

	pageMargin = 15
	lineRight  = 200 // right edge of the section underline, in mm
)

// doc wraps the fpdf page with the codepage translator the core fonts need.
// Strings pass through cleanText first, so everything reaching the page is
// ASCII or Latin-1 and the translator can always represent it.
type doc struct {
	*fpdf.Fpdf
	tr func(string) string
}

func (d *doc) text(s string) string {
	return d.tr(cleanText(s))
}

// RenderPDF lays the resume out on A4: centered name, pipe-joined contact
// line, then SKILLS, EXPERIENCE, PROJECTS, and EDUCATION sections. Empty
// sections are skipped entirely. A render failure is returned as an error;
// the caller decides what to show.
func RenderPDF(resume tailoring.TailoredResume) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()
	d := &doc{Fpdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	d.heading(resume.PersonalInfo)

	if len(resume.Skills) > 0 {
		d.sectionTitle("SKILLS")
		d.SetFont(fontFamily, "", sizeBody)
		d.MultiCell(0, 5, d.text(joinPresent(", ", resume.Skills...)), "", "L", false)
	}

	if len(resume.Experience) > 0 {
		d.sectionTitle("EXPERIENCE")
		for _, exp := range resume.Experience {
			d.jobEntry(exp.Role, exp.Company, exp.Duration, exp.Location, exp.Points)
		}
	}

	if len(resume.Projects) > 0 {
		d.sectionTitle("PROJECTS")
		for _, proj := range resume.Projects {
			d.jobEntry(proj.Title, proj.Role, proj.Duration, "", proj.Points)
		}
	}

	if len(resume.Education) > 0 {
		d.sectionTitle("EDUCATION")
		for _, edu := range resume.Education {
			d.educationEntry(edu.School, edu.Degree, edu.Duration, edu.Location)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *doc) heading(info tailoring.PersonalInfo) {
	name := strings.TrimSpace(info.Name)
	if name == "" {
		name = "Resume"
	}
	d.SetFont(fontFamily, "B", sizeName)
	d.CellFormat(0, 10, d.text(name), "", 1, "C", false, 0, "")

	contact := joinPresent(" | ", info.Phone, info.Email, info.LinkedIn, info.GitHub, info.Location)
	if contact != "" {
		d.SetFont(fontFamily, "", sizeBody)
		d.CellFormat(0, 5, d.text(contact), "", 1, "C", false, 0, "")
	}
	d.Ln(5)
}

func (d *doc) sectionTitle(label string) {
	d.Ln(5)
	d.SetFont(fontFamily, "B", sizeSectionTitle)
	d.CellFormat(0, 6, label, "", 1, "L", false, 0, "")
	d.Line(d.GetX(), d.GetY(), lineRight, d.GetY())
	d.Ln(2)
}

// jobEntry renders one experience or project block: the title row with the
// duration right-aligned, an optional subtitle row, then dash bullets.
func (d *doc) jobEntry(title, subtitle, duration, location string, points []string) {
	d.SetFont(fontFamily, "B", sizeJobTitle)
	d.CellFormat(100, 5, d.text(title), "", 0, "L", false, 0, "")
	d.SetFont(fontFamily, "I", sizeBody)
	d.CellFormat(0, 5, d.text(duration), "", 1, "R", false, 0, "")

	if subtitle != "" || location != "" {
		d.SetFont(fontFamily, "I", sizeJobTitle)
		d.CellFormat(100, 5, d.text(subtitle), "", 0, "L", false, 0, "")
		d.SetFont(fontFamily, "I", sizeBody)
		d.CellFormat(0, 5, d.text(location), "", 1, "R", false, 0, "")
	}

	d.SetFont(fontFamily, "", sizeBody)
	for _, point := range points {
		d.SetX(pageMargin)
		d.MultiCell(175, 5, "- "+d.text(point), "", "L", false)
	}
	d.Ln(3)
}

func (d *doc) educationEntry(school, degree, duration, location string) {
	d.SetFont(fontFamily, "B", sizeJobTitle)
	d.CellFormat(120, 5, d.text(school), "", 0, "L", false, 0, "")
	d.SetFont(fontFamily, "I", sizeBody)
	d.CellFormat(0, 5, d.text(duration), "", 1, "R", false, 0, "")

	d.SetFont(fontFamily, "", sizeBody)
	d.CellFormat(120, 5, d.text(degree), "", 0, "L", false, 0, "")
	d.SetFont(fontFamily, "I", sizeBody)
	d.CellFormat(0, 5, d.text(location), "", 1, "R", false, 0, "")
	d.Ln(3)
}

// joinPresent joins non-empty items with sep, skipping blanks so the
// contact line never shows dangling separators.
func joinPresent(sep string, items ...string) string {
	present := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			present = append(present, trimmed)
		}
	}
	return strings.Join(present, sep)
}
