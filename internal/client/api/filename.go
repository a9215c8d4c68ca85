package api

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/leo/internal/client/models"
)

var filenameRE = regexp.MustCompile(`(?i)filename=([^;]+)`)

// ParseFilename extracts the filename= directive of a Content-Disposition
// header value. The match is case-insensitive; surrounding whitespace and
// double quotes are removed. It reports false when the header has no
// usable filename.
//
//	ParseFilename("attachment; filename=report.csv")     // "report.csv", true
//	ParseFilename(`attachment; FILENAME="my copy.docx"`) // "my copy.docx", true
//	ParseFilename("inline")                              // "", false
func ParseFilename(disposition string) (string, bool) {
	m := filenameRE.FindStringSubmatch(disposition)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	name = strings.Trim(name, `"`)
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	return name, true
}

// FallbackFilename is the name used when the backend does not provide one:
// submission-{id}.{ext}, where ext is "txt" for social exports and the
// format name otherwise.
func FallbackFilename(id string, format models.ExportFormat) string {
	return fmt.Sprintf("submission-%s.%s", id, format.Extension())
}

// ResolveFilename returns ParseFilename(disposition) or, failing that,
// FallbackFilename(id, format).
func ResolveFilename(disposition, id string, format models.ExportFormat) string {
	if name, ok := ParseFilename(disposition); ok {
		return name
	}
	return FallbackFilename(id, format)
}
