package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextFromBytesDocx(t *testing.T) {
	doc := buildDocx(t, `<w:document><w:body><w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p><w:p><w:r><w:t>Software Engineer</w:t></w:r></w:p></w:body></w:document>`)

	text, err := TextFromBytes(context.Background(), doc, mimeDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	if !strings.Contains(text, "Jane Doe") || !strings.Contains(text, "Software Engineer") {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestTextFromBytesDocxFromZipMime(t *testing.T) {
	doc := buildDocx(t, `<w:document><w:body><w:p><w:r><w:t>hello</w:t></w:r></w:p></w:body></w:document>`)

	if _, err := TextFromBytes(context.Background(), doc, "application/zip", "resume.docx"); err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
}

func TestTextFromBytesPlainZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = TextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error for zip")
	}
	var extractErr *Error
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if !strings.Contains(err.Error(), "unsupported mime type") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTextFromBytesGarbagePDF(t *testing.T) {
	_, err := TextFromBytes(context.Background(), []byte("not a pdf"), mimePDF, "resume.pdf")
	if err == nil {
		t.Fatal("expected error for invalid pdf bytes")
	}
	var extractErr *Error
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if extractErr.FileName != "resume.pdf" {
		t.Fatalf("error file name = %q", extractErr.FileName)
	}
}

func TestTextFromBytesEmptyDocx(t *testing.T) {
	doc := buildDocx(t, `<w:document><w:body></w:body></w:document>`)

	_, err := TextFromBytes(context.Background(), doc, mimeDOCX, "resume.docx")
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
}

func TestTextFromBytesMimeFromExtension(t *testing.T) {
	doc := buildDocx(t, `<w:document><w:body><w:p><w:r><w:t>x</w:t></w:r></w:p></w:body></w:document>`)

	if _, err := TextFromBytes(context.Background(), doc, "application/octet-stream", "resume.docx"); err != nil {
		t.Fatalf("expected extension fallback, got %v", err)
	}
}
