package views

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/leo/internal/client/api"
	"github.com/dmitrijs2005/leo/internal/client/models"
)

var (
	ErrBusy       = errors.New("another request is in progress")
	ErrValidation = errors.New("validation error")
)

// validationError is a user-facing form error matching ErrValidation.
type validationError string

func (e validationError) Error() string { return string(e) }

func (e validationError) Is(target error) bool { return target == ErrValidation }

// Message turns err into the text shown inline on a screen: transport
// failures become fallback, everything else keeps its own message
// (backend body text for request errors).
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, api.ErrUnavailable) {
		return fallback
	}
	return err.Error()
}

// canceled reports whether the caller gave up on ctx; results must not be
// applied then.
func canceled(ctx context.Context) bool {
	return ctx.Err() != nil
}

// guard is a non-blocking busy flag.
type guard struct {
	mu sync.Mutex
	on bool
}

func (g *guard) acquire() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.on {
		return ErrBusy
	}
	g.on = true
	return nil
}

func (g *guard) release() {
	g.mu.Lock()
	g.on = false
	g.mu.Unlock()
}

func (g *guard) busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.on
}

// GlossaryAPI is the gateway surface used by GlossaryView.
type GlossaryAPI interface {
	ListGlossary(ctx context.Context, q api.GlossaryQuery) (*models.GlossaryList, error)
	CreateGlossaryEntry(ctx context.Context, entry models.GlossaryEntryCreate) (*models.GlossaryEntry, error)
	UpdateGlossaryEntry(ctx context.Context, id string, update models.GlossaryEntryUpdate) (*models.GlossaryEntry, error)
	DeleteGlossaryEntry(ctx context.Context, id string) error
}

// SubmissionsAPI is the gateway surface used by SubmissionsView.
type SubmissionsAPI interface {
	ListSubmissions(ctx context.Context, status models.SubmissionStatus) (*models.SubmissionList, error)
}

// SubmissionAPI is the gateway surface used by SubmissionDetailView.
type SubmissionAPI interface {
	GetSubmission(ctx context.Context, id string) (*models.Submission, error)
	UpdateSubmission(ctx context.Context, id string, update models.SubmissionUpdate) (*models.Submission, error)
	ExportSubmission(ctx context.Context, id string, format models.ExportFormat, saver api.Saver) (string, error)
}

// CreateSubmissionAPI is the gateway surface used by ComposeView.
type CreateSubmissionAPI interface {
	CreateSubmission(ctx context.Context, s models.SubmissionCreate) (*models.Submission, error)
}

// MetricsAPI is the gateway surface used by MetricsView.
type MetricsAPI interface {
	MetricsOverview(ctx context.Context, days int) (*models.MetricsOverview, error)
}

// TranslateAPI is the gateway surface used by TranslateView.
type TranslateAPI interface {
	Translate(ctx context.Context, req models.TranslateRequest) (*models.TranslateResult, error)
}
