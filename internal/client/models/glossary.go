package models

import "strings"

// GlossaryEntry is a canonical source-term to Thai-term mapping enforced by
// the backend during draft generation.
type GlossaryEntry struct {
	ID           string  `json:"id"`
	SourceTerm   string  `json:"source_term"`
	ThaiTerm     string  `json:"thai_term"`
	PartOfSpeech *string `json:"part_of_speech,omitempty"`
	Context      *string `json:"context,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	IsSensitive  bool    `json:"is_sensitive"`
}

// Matches reports whether the lowercased query is a substring of either
// term. An empty query matches everything.
func (e GlossaryEntry) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.SourceTerm), q) ||
		strings.Contains(strings.ToLower(e.ThaiTerm), q)
}

// GlossaryEntryCreate is the payload of POST /glossary.
type GlossaryEntryCreate struct {
	SourceTerm   string  `json:"source_term"`
	ThaiTerm     string  `json:"thai_term"`
	PartOfSpeech *string `json:"part_of_speech,omitempty"`
	Context      *string `json:"context,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	IsSensitive  bool    `json:"is_sensitive"`
}

// Normalized returns a copy with trimmed terms and blank optional fields
// removed.
func (c GlossaryEntryCreate) Normalized() GlossaryEntryCreate {
	c.SourceTerm = strings.TrimSpace(c.SourceTerm)
	c.ThaiTerm = strings.TrimSpace(c.ThaiTerm)
	c.PartOfSpeech = normalize(c.PartOfSpeech)
	c.Context = normalize(c.Context)
	c.Notes = normalize(c.Notes)
	return c
}

// GlossaryEntryUpdate is the sparse payload of PUT /glossary/{id}. Nil
// fields are left untouched by the backend.
type GlossaryEntryUpdate struct {
	ThaiTerm     *string `json:"thai_term,omitempty"`
	PartOfSpeech *string `json:"part_of_speech,omitempty"`
	Context      *string `json:"context,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	IsSensitive  *bool   `json:"is_sensitive,omitempty"`
}

// Normalized returns a copy with blank string fields removed.
func (u GlossaryEntryUpdate) Normalized() GlossaryEntryUpdate {
	u.ThaiTerm = normalize(u.ThaiTerm)
	u.PartOfSpeech = normalize(u.PartOfSpeech)
	u.Context = normalize(u.Context)
	u.Notes = normalize(u.Notes)
	return u
}

// Empty reports whether the update carries no field at all.
func (u GlossaryEntryUpdate) Empty() bool {
	return u.ThaiTerm == nil && u.PartOfSpeech == nil && u.Context == nil &&
		u.Notes == nil && u.IsSensitive == nil
}

// GlossaryList is the envelope returned by GET /glossary.
type GlossaryList struct {
	Items []GlossaryEntry `json:"items"`
	Total int             `json:"total"`
}
