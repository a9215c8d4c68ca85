package models

import "github.com/dmitrijs2005/leo/internal/timex"

// MetricsOverview is a read-only aggregate snapshot regenerated by the
// backend on every fetch.
type MetricsOverview struct {
	GeneratedAt             timex.Time     `json:"generated_at"`
	TotalSubmissions        int            `json:"total_submissions"`
	SubmissionsByStatus     map[string]int `json:"submissions_by_status"`
	SubmissionsWithWarnings int            `json:"submissions_with_warnings"`
	ApprovalRate            float64        `json:"approval_rate"`
	AverageTokens           *float64       `json:"average_tokens"`
	TotalTokens             int            `json:"total_tokens"`
	TotalCostUSD            float64        `json:"total_cost_usd"`
}
