package models

import "strings"

// TranslateRequest is the payload of POST /translate, an ad hoc draft that
// is not stored as a submission.
type TranslateRequest struct {
	Text     string  `json:"text"`
	Tone     *string `json:"tone,omitempty"`
	Audience *string `json:"audience,omitempty"`
	Channel  *string `json:"channel,omitempty"`
}

// Normalized returns a copy with trimmed text and blank optional fields
// removed.
func (r TranslateRequest) Normalized() TranslateRequest {
	r.Text = strings.TrimSpace(r.Text)
	r.Tone = normalize(r.Tone)
	r.Audience = normalize(r.Audience)
	r.Channel = normalize(r.Channel)
	return r
}

// TranslateResult is the backend's draft for a TranslateRequest.
type TranslateResult struct {
	ThaiText             string   `json:"thai_text"`
	GlossaryTermsApplied []string `json:"glossary_terms_applied"`
	Notes                *string  `json:"notes,omitempty"`
	Prompt               *string  `json:"prompt,omitempty"`
	ProviderName         *string  `json:"provider_name,omitempty"`
	UsageTokens          *int     `json:"usage_tokens,omitempty"`
	CostUSD              *float64 `json:"cost_usd,omitempty"`
	Warnings             []string `json:"warnings"`
}
