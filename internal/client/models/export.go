package models

import (
	"fmt"
	"strings"
)

// ExportFormat selects the backend rendering of a submission export.
type ExportFormat string

const (
	ExportCSV    ExportFormat = "csv"
	ExportDOCX   ExportFormat = "docx"
	ExportSocial ExportFormat = "social"
)

// ExportFormats lists the supported formats.
var ExportFormats = []ExportFormat{ExportCSV, ExportDOCX, ExportSocial}

// Extension returns the file extension used when the backend does not name
// the file: social exports are plain text, others use the format name.
func (f ExportFormat) Extension() string {
	if f == ExportSocial {
		return "txt"
	}
	return string(f)
}

// ParseExportFormat accepts a format tag case-insensitively.
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ExportFormats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// Export is a downloaded export payload.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}
