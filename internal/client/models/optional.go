package models

import "strings"

// Optional returns a pointer to the trimmed s, or nil when s is empty or
// whitespace-only. Nil optional fields are omitted from request payloads.
func Optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// normalize applies Optional to an already optional field.
func normalize(p *string) *string {
	if p == nil {
		return nil
	}
	return Optional(*p)
}

// Value dereferences p, returning "" for nil.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
