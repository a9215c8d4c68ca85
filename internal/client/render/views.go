package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/leo/internal/client/models"
	"github.com/dmitrijs2005/leo/internal/client/views"
)

// Glossary writes the glossary table.
func (r *Renderer) Glossary(entries []models.GlossaryEntry) {
	r.heading(r.tr.T("heading.glossary", nil))
	if len(entries) == 0 {
		r.Line("%s", r.tr.T("empty.glossary", nil))
		return
	}

	tw := r.table()
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		r.tr.T("col.id", nil), r.tr.T("col.source", nil), r.tr.T("col.thai", nil),
		r.tr.T("col.part_of_speech", nil), r.tr.T("col.sensitive", nil))
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.SourceTerm, e.ThaiTerm, models.Value(e.PartOfSpeech), r.yesNo(e.IsSensitive))
	}
	tw.Flush()
}

// Submissions writes the board grouped by status.
func (r *Renderer) Submissions(groups []views.Group) {
	r.heading(r.tr.T("heading.submissions", nil))
	if len(groups) == 0 {
		r.Line("%s", r.tr.T("empty.submissions", nil))
		return
	}

	titleWidth := max(r.width-48, 20)
	for i, g := range groups {
		if i > 0 {
			r.Line("")
		}
		r.Line("%s (%d)", r.tr.Status(g.Status), len(g.Items))

		tw := r.table()
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n",
			r.tr.T("col.id", nil), r.tr.T("col.title", nil), r.tr.T("col.channel", nil),
			r.tr.T("col.updated", nil), r.tr.T("col.warnings", nil))
		for _, s := range g.Items {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%d\n",
				s.ID, Truncate(s.Title, titleWidth), models.Value(s.Channel), r.Date(s.UpdatedAt), len(s.Warnings))
		}
		tw.Flush()
	}
}

// Submission writes a single submission with its review fields.
func (r *Renderer) Submission(s *models.Submission) {
	r.heading(s.Title)
	r.field("col.id", s.ID)
	r.field("label.status", r.tr.Status(s.Status))
	r.field("label.tone", models.Value(s.Tone))
	r.field("label.audience", models.Value(s.Audience))
	r.field("label.channel", models.Value(s.Channel))
	r.field("label.created", r.Date(s.CreatedAt))
	r.field("label.updated", r.Date(s.UpdatedAt))
	if s.LastReviewedAt != nil {
		r.field("label.last_reviewed", r.Date(*s.LastReviewedAt))
	}
	r.field("label.provider", models.Value(s.ProviderName))
	if s.UsageTokens != nil {
		r.field("label.tokens", r.Number(*s.UsageTokens))
	}
	if s.CostUSD != nil {
		r.field("label.cost", r.Cost(*s.CostUSD))
	}
	r.field("label.glossary_terms", strings.Join(s.GlossaryTerms, ", "))

	r.Line("")
	r.block("label.source", s.SourceText)
	r.block("label.draft", s.ThaiDraft)
	r.block("label.final", models.Value(s.ThaiFinal))
	r.block("label.notes", models.Value(s.Notes))
	r.block("label.reviewer_notes", models.Value(s.ReviewerNotes))
	r.warnings(s.Warnings)
}

func (r *Renderer) warnings(ws []string) {
	if len(ws) == 0 {
		return
	}
	r.Line("%s:", r.tr.T("label.warnings", nil))
	for _, w := range ws {
		r.Line("  ! %s", w)
	}
}

// Metrics writes the overview for a window of days (0 is all time).
func (r *Renderer) Metrics(m *models.MetricsOverview, days int) {
	window := r.tr.T("metrics.window_all", nil)
	if days > 0 {
		window = r.tr.T("metrics.window_days", map[string]any{"Days": days})
	}
	r.heading(r.tr.T("heading.metrics", nil) + " (" + window + ")")

	tw := r.table()
	row := func(key, value string) {
		fmt.Fprintf(tw, "%s\t%s\n", r.tr.T(key, nil), value)
	}
	row("metrics.total", r.Number(m.TotalSubmissions))
	row("metrics.approval_rate", r.Percent(m.ApprovalRate))
	row("metrics.with_warnings", r.Number(m.SubmissionsWithWarnings))
	row("metrics.avg_tokens", r.Decimal(m.AverageTokens))
	row("metrics.total_tokens", r.Number(m.TotalTokens))
	row("metrics.total_cost", r.Cost(m.TotalCostUSD))
	row("metrics.generated", r.Date(m.GeneratedAt))
	tw.Flush()

	if len(m.SubmissionsByStatus) == 0 {
		return
	}
	r.Line("")
	tw = r.table()
	seen := map[string]bool{}
	for _, st := range models.StatusOrder {
		seen[string(st)] = true
		fmt.Fprintf(tw, "  %s\t%s\n", r.tr.Status(st), r.Number(m.SubmissionsByStatus[string(st)]))
	}
	var extra []string
	for k := range m.SubmissionsByStatus {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		fmt.Fprintf(tw, "  %s\t%s\n", k, r.Number(m.SubmissionsByStatus[k]))
	}
	tw.Flush()
}

// Translation writes an ad-hoc translation result.
func (r *Renderer) Translation(t *models.TranslateResult) {
	r.heading(r.tr.T("heading.translation", nil))
	r.Line("%s", t.ThaiText)
	r.Line("")
	r.field("label.glossary_terms", strings.Join(t.GlossaryTermsApplied, ", "))
	r.field("label.provider", models.Value(t.ProviderName))
	if t.UsageTokens != nil {
		r.field("label.tokens", r.Number(*t.UsageTokens))
	}
	if t.CostUSD != nil {
		r.field("label.cost", r.Cost(*t.CostUSD))
	}
	r.block("label.notes", models.Value(t.Notes))
	r.warnings(t.Warnings)
}
