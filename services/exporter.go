package services

import (
	"errors"
	"fmt"
)

// ErrUnknownExportFormat is returned by ExporterFor for unsupported formats.
var ErrUnknownExportFormat = errors.New("unknown export format")

// Exporter renders a document to a downloadable file.
type Exporter interface {
	Export(data *DocumentExportData) ([]byte, error)
	ContentType() string
	Extension() string
}

// ExporterFor returns the exporter for a format name ("pdf" or "xlsx").
func ExporterFor(format string, layout PDFLayout) (Exporter, error) {
	switch format {
	case "pdf":
		return PDFExporter{Layout: layout}, nil
	case "xlsx":
		return ExcelExporter{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownExportFormat, format)
}
