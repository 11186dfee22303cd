package export

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"

	"tailor-backend/internal/tailoring"
)

func sampleResume() tailoring.TailoredResume {
	return tailoring.TailoredResume{
		ExecutiveSummary: []string{"Platform engineer"},
		PersonalInfo: tailoring.PersonalInfo{
			Name:     "Ada Example",
			Email:    "ada@example.com",
			Phone:    "555-0100",
			LinkedIn: "in/ada",
			GitHub:   "ada",
			Location: "Remote",
		},
		Skills: []string{"Go", "Postgres", "Kubernetes"},
		Experience: []tailoring.ExperienceEntry{
			{
				Company:  "Acme",
				Role:     "Senior Engineer",
				Duration: "2020-2024",
				Location: "NYC",
				Points:   []string{"Cut p99 latency in half", "Led the billing rewrite"},
			},
		},
		Projects: []tailoring.ProjectEntry{
			{Title: "Sidecar", Role: "Author", Duration: "2023", Points: []string{"Open sourced"}},
		},
		Education: []tailoring.EducationEntry{
			{School: "State U", Degree: "BSc CS", Duration: "2016-2020", Location: "Albany"},
		},
	}
}

func extractAll(t *testing.T, data []byte) string {
	t.Helper()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open rendered pdf: %v", err)
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		t.Fatalf("extract text: %v", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		t.Fatalf("read text: %v", err)
	}
	return buf.String()
}

func TestRenderPDFRoundTrip(t *testing.T) {
	data, err := RenderPDF(sampleResume())
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not start with PDF magic: %q", data[:8])
	}

	text := extractAll(t, data)
	for _, want := range []string{
		"Ada Example",
		"ada@example.com",
		"SKILLS",
		"Go, Postgres, Kubernetes",
		"EXPERIENCE",
		"Senior Engineer",
		"Acme",
		"Cut p99 latency in half",
		"PROJECTS",
		"Sidecar",
		"EDUCATION",
		"State U",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered text missing %q", want)
		}
	}
}

func TestRenderPDFEmptySectionsSkipped(t *testing.T) {
	resume := tailoring.TailoredResume{
		PersonalInfo: tailoring.PersonalInfo{Name: "Ada Example"},
		Skills:       []string{"Go"},
	}
	data, err := RenderPDF(resume)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	text := extractAll(t, data)
	if strings.Contains(text, "EXPERIENCE") || strings.Contains(text, "EDUCATION") {
		t.Errorf("empty sections rendered: %q", text)
	}
	if !strings.Contains(text, "SKILLS") {
		t.Error("skills section missing")
	}
}

func TestRenderPDFEmptyResume(t *testing.T) {
	data, err := RenderPDF(tailoring.TailoredResume{})
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	text := extractAll(t, data)
	if !strings.Contains(text, "Resume") {
		t.Errorf("fallback title missing from %q", text)
	}
}

func TestRenderPDFTransliterates(t *testing.T) {
	resume := tailoring.TailoredResume{
		PersonalInfo: tailoring.PersonalInfo{Name: "Ada “Ace” Example"},
		Skills:       []string{"Go – distributed systems"},
	}
	data, err := RenderPDF(resume)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	text := extractAll(t, data)
	if !strings.Contains(text, `Ada "Ace" Example`) {
		t.Errorf("smart quotes not transliterated: %q", text)
	}
	if !strings.Contains(text, "Go - distributed systems") {
		t.Errorf("dash not transliterated: %q", text)
	}
}

func TestRenderPDFLatin1RoundTrip(t *testing.T) {
	resume := tailoring.TailoredResume{
		PersonalInfo: tailoring.PersonalInfo{Name: "Café Zürich", Location: "São Paulo"},
		Skills:       []string{"Résumé tailoring"},
	}
	data, err := RenderPDF(resume)
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	text := extractAll(t, data)
	for _, want := range []string{"Café Zürich", "São Paulo", "Résumé tailoring"} {
		if !strings.Contains(text, want) {
			t.Errorf("accented text lost or corrupted, want %q in %q", want, text)
		}
	}
	if strings.Contains(text, "Ã") {
		t.Errorf("double-encoded output: %q", text)
	}
}
