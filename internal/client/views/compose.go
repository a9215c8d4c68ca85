package views

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/leo/internal/client/models"
)

const errTitleRequired = validationError("Title and source content are required")

// SubmissionForm is the raw input of the new submission form.
type SubmissionForm struct {
	Title      string
	SourceText string
	Tone       string
	Audience   string
	Channel    string
}

// ComposeState is a snapshot of the new submission screen.
type ComposeState struct {
	Created *models.Submission
	Loading bool
	Error   string
}

// ComposeView creates submissions, which the backend translates on
// arrival.
type ComposeView struct {
	api   CreateSubmissionAPI
	guard guard

	mu    sync.Mutex
	state ComposeState
}

func NewComposeView(a CreateSubmissionAPI) *ComposeView {
	return &ComposeView{api: a}
}

func (v *ComposeView) State() ComposeState {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.state
	s.Loading = v.guard.busy()
	return s
}

// Submit validates form and creates the submission.
func (v *ComposeView) Submit(ctx context.Context, form SubmissionForm) (*models.Submission, error) {
	if strings.TrimSpace(form.Title) == "" || strings.TrimSpace(form.SourceText) == "" {
		v.mu.Lock()
		v.state.Error = errTitleRequired.Error()
		v.mu.Unlock()
		return nil, errTitleRequired
	}

	if err := v.guard.acquire(); err != nil {
		return nil, err
	}
	defer v.guard.release()

	v.mu.Lock()
	v.state.Error = ""
	v.mu.Unlock()

	sub, err := v.api.CreateSubmission(ctx, models.SubmissionCreate{
		Title:      strings.TrimSpace(form.Title),
		SourceText: strings.TrimSpace(form.SourceText),
		Tone:       models.Optional(form.Tone),
		Audience:   models.Optional(form.Audience),
		Channel:    models.Optional(form.Channel),
	})
	if canceled(ctx) {
		return nil, ctx.Err()
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state.Error = Message(err, "Failed to create submission")
		return nil, err
	}
	v.state.Created = sub
	return sub, nil
}
