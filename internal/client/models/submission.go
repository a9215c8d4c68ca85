package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/leo/internal/timex"
)

// SubmissionStatus is the workflow state of a submission.
type SubmissionStatus string

const (
	StatusEditing      SubmissionStatus = "editing"
	StatusInReview     SubmissionStatus = "in_review"
	StatusApproved     SubmissionStatus = "approved"
	StatusNeedsChanges SubmissionStatus = "needs_changes"
)

// StatusOrder is the order in which submission groups are displayed.
var StatusOrder = []SubmissionStatus{
	StatusEditing,
	StatusInReview,
	StatusNeedsChanges,
	StatusApproved,
}

// Valid reports whether s is a known status.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case StatusEditing, StatusInReview, StatusApproved, StatusNeedsChanges:
		return true
	}
	return false
}

// ParseSubmissionStatus accepts a status value case-insensitively. The
// empty string and "all" parse to the empty status, meaning no filter.
func ParseSubmissionStatus(s string) (SubmissionStatus, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == "all" {
		return "", nil
	}
	st := SubmissionStatus(v)
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

// Submission is a unit of source content moving through the
// editing, review and approval workflow.
type Submission struct {
	ID                string           `json:"id"`
	Title             string           `json:"title"`
	SourceText        string           `json:"source_text"`
	Tone              *string          `json:"tone,omitempty"`
	Audience          *string          `json:"audience,omitempty"`
	Channel           *string          `json:"channel,omitempty"`
	ThaiDraft         string           `json:"thai_draft"`
	ThaiFinal         *string          `json:"thai_final,omitempty"`
	TranslationPrompt *string          `json:"translation_prompt,omitempty"`
	ProviderName      *string          `json:"provider_name,omitempty"`
	UsageTokens       *int             `json:"usage_tokens,omitempty"`
	CostUSD           *float64         `json:"cost_usd,omitempty"`
	GlossaryTerms     []string         `json:"glossary_terms"`
	Warnings          []string         `json:"warnings"`
	Notes             *string          `json:"notes,omitempty"`
	Status            SubmissionStatus `json:"status"`
	ReviewerNotes     *string          `json:"reviewer_notes,omitempty"`
	LastReviewedAt    *timex.Time      `json:"last_reviewed_at,omitempty"`
	CreatedAt         timex.Time       `json:"created_at"`
	UpdatedAt         timex.Time       `json:"updated_at"`
}

// SubmissionCreate is the payload of POST /submissions.
type SubmissionCreate struct {
	Title      string  `json:"title"`
	SourceText string  `json:"source_text"`
	Tone       *string `json:"tone,omitempty"`
	Audience   *string `json:"audience,omitempty"`
	Channel    *string `json:"channel,omitempty"`
}

// Normalized returns a copy with trimmed required fields and blank optional
// fields removed.
func (c SubmissionCreate) Normalized() SubmissionCreate {
	c.Title = strings.TrimSpace(c.Title)
	c.SourceText = strings.TrimSpace(c.SourceText)
	c.Tone = normalize(c.Tone)
	c.Audience = normalize(c.Audience)
	c.Channel = normalize(c.Channel)
	return c
}

// SubmissionUpdate is the sparse payload of PUT /submissions/{id}.
type SubmissionUpdate struct {
	ThaiFinal     *string           `json:"thai_final,omitempty"`
	Status        *SubmissionStatus `json:"status,omitempty"`
	ReviewerNotes *string           `json:"reviewer_notes,omitempty"`
}

// Normalized returns a copy with blank text fields and an empty status
// removed.
func (u SubmissionUpdate) Normalized() SubmissionUpdate {
	u.ThaiFinal = normalize(u.ThaiFinal)
	u.ReviewerNotes = normalize(u.ReviewerNotes)
	if u.Status != nil && *u.Status == "" {
		u.Status = nil
	}
	return u
}

// SubmissionList is the envelope returned by GET /submissions.
type SubmissionList struct {
	Items []Submission `json:"items"`
	Total int          `json:"total"`
}
