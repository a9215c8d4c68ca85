package views

import (
	"context"

	"github.com/dmitrijs2005/leo/internal/client/api"
	"github.com/dmitrijs2005/leo/internal/client/models"
)

// fakeAPI implements every gateway surface the views use. Unset hooks
// panic, so each test wires only what it expects to be called.
type fakeAPI struct {
	listGlossary   func(ctx context.Context, q api.GlossaryQuery) (*models.GlossaryList, error)
	createGlossary func(ctx context.Context, e models.GlossaryEntryCreate) (*models.GlossaryEntry, error)
	updateGlossary func(ctx context.Context, id string, u models.GlossaryEntryUpdate) (*models.GlossaryEntry, error)
	deleteGlossary func(ctx context.Context, id string) error

	listSubmissions  func(ctx context.Context, status models.SubmissionStatus) (*models.SubmissionList, error)
	getSubmission    func(ctx context.Context, id string) (*models.Submission, error)
	createSubmission func(ctx context.Context, s models.SubmissionCreate) (*models.Submission, error)
	updateSubmission func(ctx context.Context, id string, u models.SubmissionUpdate) (*models.Submission, error)
	exportSubmission func(ctx context.Context, id string, f models.ExportFormat, s api.Saver) (string, error)

	metrics   func(ctx context.Context, days int) (*models.MetricsOverview, error)
	translate func(ctx context.Context, r models.TranslateRequest) (*models.TranslateResult, error)
}

func (f *fakeAPI) ListGlossary(ctx context.Context, q api.GlossaryQuery) (*models.GlossaryList, error) {
	return f.listGlossary(ctx, q)
}

func (f *fakeAPI) CreateGlossaryEntry(ctx context.Context, e models.GlossaryEntryCreate) (*models.GlossaryEntry, error) {
	return f.createGlossary(ctx, e)
}

func (f *fakeAPI) UpdateGlossaryEntry(ctx context.Context, id string, u models.GlossaryEntryUpdate) (*models.GlossaryEntry, error) {
	return f.updateGlossary(ctx, id, u)
}

func (f *fakeAPI) DeleteGlossaryEntry(ctx context.Context, id string) error {
	return f.deleteGlossary(ctx, id)
}

func (f *fakeAPI) ListSubmissions(ctx context.Context, status models.SubmissionStatus) (*models.SubmissionList, error) {
	return f.listSubmissions(ctx, status)
}

func (f *fakeAPI) GetSubmission(ctx context.Context, id string) (*models.Submission, error) {
	return f.getSubmission(ctx, id)
}

func (f *fakeAPI) CreateSubmission(ctx context.Context, s models.SubmissionCreate) (*models.Submission, error) {
	return f.createSubmission(ctx, s)
}

func (f *fakeAPI) UpdateSubmission(ctx context.Context, id string, u models.SubmissionUpdate) (*models.Submission, error) {
	return f.updateSubmission(ctx, id, u)
}

func (f *fakeAPI) ExportSubmission(ctx context.Context, id string, format models.ExportFormat, s api.Saver) (string, error) {
	return f.exportSubmission(ctx, id, format, s)
}

func (f *fakeAPI) MetricsOverview(ctx context.Context, days int) (*models.MetricsOverview, error) {
	return f.metrics(ctx, days)
}

func (f *fakeAPI) Translate(ctx context.Context, r models.TranslateRequest) (*models.TranslateResult, error) {
	return f.translate(ctx, r)
}

func str(s string) *string { return &s }

func entries(terms ...string) *models.GlossaryList {
	list := &models.GlossaryList{}
	for i := 0; i+1 < len(terms); i += 2 {
		list.Items = append(list.Items, models.GlossaryEntry{
			ID:         terms[i],
			SourceTerm: terms[i],
			ThaiTerm:   terms[i+1],
		})
	}
	list.Total = len(list.Items)
	return list
}
