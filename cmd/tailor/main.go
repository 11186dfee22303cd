// Command tailor runs one tailoring pass from the command line, without the
// HTTP server or the free-tier gate.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tailor-backend/internal/export"
	"tailor-backend/internal/extract"
	"tailor-backend/internal/jobs"
	"tailor-backend/internal/llm"
	"tailor-backend/internal/shared/config"
	"tailor-backend/internal/tailoring"
)

func main() {
	cfg := config.Load()

	resumePath := flag.String("resume", "", "Path to resume file (pdf or docx)")
	jobURL := flag.String("job-url", "", "Job posting URL")
	jobPath := flag.String("job-text", "", "Path to a plain-text job description")
	provider := flag.String("provider", cfg.DefaultProvider, "LLM provider (google, openai, anthropic)")
	apiKey := flag.String("api-key", "", "API key override (defaults to the provider's env var)")
	outPath := flag.String("out", "", "Path to write tailored resume JSON (default stdout)")
	pdfPath := flag.String("pdf", "", "Also render the result as a PDF at this path (optional)")
	flag.Parse()

	if strings.TrimSpace(*resumePath) == "" {
		exitErr("resume path is required")
	}
	if (*jobURL == "") == (*jobPath == "") {
		exitErr("provide exactly one of -job-url or -job-text")
	}

	ctx := context.Background()

	resumeBytes, err := os.ReadFile(*resumePath)
	if err != nil {
		exitErr(fmt.Sprintf("read resume: %v", err))
	}
	mimeType, err := mimeFromExt(*resumePath)
	if err != nil {
		exitErr(err.Error())
	}
	resumeText, err := extract.TextFromBytes(ctx, resumeBytes, mimeType, filepath.Base(*resumePath))
	if err != nil {
		exitErr(fmt.Sprintf("extract resume text: %v", err))
	}

	var jobText string
	if *jobURL != "" {
		jobText, err = jobs.NewFetcher().FetchText(ctx, *jobURL)
		if err != nil {
			exitErr(fmt.Sprintf("fetch job description: %v", err))
		}
	} else {
		jdBytes, err := os.ReadFile(*jobPath)
		if err != nil {
			exitErr(fmt.Sprintf("read job description: %v", err))
		}
		jobText = jobs.Normalize(string(jdBytes))
	}

	backend, err := tailoring.NewBackend(ctx, config.Providers(), *provider, *apiKey)
	if err != nil {
		exitErr(err.Error())
	}

	raw, err := backend.TailorResume(ctx, llm.TailorInput{ResumeText: resumeText, JobText: jobText})
	if err != nil {
		exitErr(fmt.Sprintf("backend call: %v", err))
	}

	result, err := tailoring.Parse(raw)
	if err != nil {
		exitErr(fmt.Sprintf("parse response: %v", err))
	}
	if len(result.DefaultedFields) > 0 {
		fmt.Fprintf(os.Stderr, "warning: defaulted fields: %s\n", strings.Join(result.DefaultedFields, ", "))
	}

	encoded, err := json.MarshalIndent(result.Resume, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("encode result: %v", err))
	}
	if *outPath != "" {
		if err := os.WriteFile(*outPath, encoded, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	} else {
		fmt.Println(string(encoded))
	}

	if *pdfPath != "" {
		data, err := export.RenderPDF(result.Resume)
		if err != nil {
			exitErr(fmt.Sprintf("render pdf: %v", err))
		}
		if err := os.WriteFile(*pdfPath, data, 0o644); err != nil {
			exitErr(fmt.Sprintf("write pdf: %v", err))
		}
	}
}

func mimeFromExt(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf", nil
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document", nil
	default:
		return "", fmt.Errorf("unsupported resume extension: %s", filepath.Ext(path))
	}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, "error: "+msg)
	os.Exit(1)
}
