package services

import (
	"bytes"
	"errors"
	"testing"
)

func TestPDFExporter_Export(t *testing.T) {
	data, err := BuildDocumentExportData(testProfile(), testClient(), testDocument())
	if err != nil {
		t.Fatalf("BuildDocumentExportData() error = %v", err)
	}

	exp := PDFExporter{Layout: DefaultPDFLayout()}
	out, err := exp.Export(data)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output does not start with %%PDF-")
	}
}

func TestPDFExporter_MinimalLayoutAndLogo(t *testing.T) {
	profile := testProfile()
	profile.Logo = pngDataURL(t, 800, 200)
	doc := testDocument()
	doc.LineItems = nil

	data, err := BuildDocumentExportData(profile, testClient(), doc)
	if err != nil {
		t.Fatalf("BuildDocumentExportData() error = %v", err)
	}

	for _, layout := range []PDFLayout{DefaultPDFLayout(), {}} {
		out, err := PDFExporter{Layout: layout}.Export(data)
		if err != nil {
			t.Fatalf("Export() error = %v", err)
		}
		if len(out) == 0 {
			t.Fatal("Export() returned empty bytes")
		}
	}
}

func TestPDFExporter_BadLogoIsSkipped(t *testing.T) {
	profile := testProfile()
	profile.Logo = "data:image/png;base64,bm90IGFuIGltYWdl"

	data, err := BuildDocumentExportData(profile, testClient(), testDocument())
	if err != nil {
		t.Fatalf("BuildDocumentExportData() error = %v", err)
	}
	if _, err := (PDFExporter{Layout: DefaultPDFLayout()}).Export(data); err != nil {
		t.Fatalf("Export() should skip an undecodable logo, got %v", err)
	}
}

func TestExporterFor(t *testing.T) {
	tests := []struct {
		format string
		ext    string
	}{
		{"pdf", "pdf"},
		{"xlsx", "xlsx"},
	}
	for _, tt := range tests {
		exp, err := ExporterFor(tt.format, DefaultPDFLayout())
		if err != nil {
			t.Fatalf("ExporterFor(%s) error = %v", tt.format, err)
		}
		if exp.Extension() != tt.ext {
			t.Errorf("Extension() = %q, want %q", exp.Extension(), tt.ext)
		}
	}
	if _, err := ExporterFor("docx", DefaultPDFLayout()); !errors.Is(err, ErrUnknownExportFormat) {
		t.Errorf("expected ErrUnknownExportFormat, got %v", err)
	}
}
