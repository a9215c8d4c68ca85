package views

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/leo/internal/client/api"
	"github.com/dmitrijs2005/leo/internal/client/models"
)

var ErrNotLoaded = errors.New("no submission loaded")

// Editor holds the editable part of a submission.
type Editor struct {
	ThaiFinal     string
	Status        models.SubmissionStatus
	ReviewerNotes string
}

// SubmissionDetailState is a snapshot of the submission detail screen.
type SubmissionDetailState struct {
	Submission *models.Submission
	Editor     Editor
	Loading    bool
	Exporting  bool
	Error      string
	// Notice is the outcome of the last save or export.
	Notice string
}

// SubmissionDetailView manages review and export of a single submission.
type SubmissionDetailView struct {
	api    SubmissionAPI
	saver  api.Saver
	guard  guard
	export guard

	mu    sync.Mutex
	state SubmissionDetailState
}

func NewSubmissionDetailView(a SubmissionAPI, saver api.Saver) *SubmissionDetailView {
	return &SubmissionDetailView{api: a, saver: saver}
}

func (v *SubmissionDetailView) State() SubmissionDetailState {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.state
	if v.state.Submission != nil {
		cp := *v.state.Submission
		s.Submission = &cp
	}
	s.Loading = v.guard.busy()
	s.Exporting = v.export.busy()
	return s
}

// SetEditor replaces the editor contents.
func (v *SubmissionDetailView) SetEditor(e Editor) {
	v.mu.Lock()
	v.state.Editor = e
	v.mu.Unlock()
}

// Load fetches the submission and primes the editor from it.
func (v *SubmissionDetailView) Load(ctx context.Context, id string) error {
	if err := v.guard.acquire(); err != nil {
		return err
	}
	defer v.guard.release()

	v.mu.Lock()
	v.state.Error = ""
	v.state.Notice = ""
	v.mu.Unlock()

	sub, err := v.api.GetSubmission(ctx, id)
	if canceled(ctx) {
		return ctx.Err()
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state.Error = Message(err, "Failed to load submission")
		return err
	}
	v.apply(sub)
	return nil
}

// apply stores sub and resets the editor; callers hold mu.
func (v *SubmissionDetailView) apply(sub *models.Submission) {
	v.state.Submission = sub
	v.state.Editor = Editor{
		ThaiFinal:     models.Value(sub.ThaiFinal),
		Status:        sub.Status,
		ReviewerNotes: models.Value(sub.ReviewerNotes),
	}
}

// Save sends the editor contents. Blank text fields are left untouched on
// the backend.
func (v *SubmissionDetailView) Save(ctx context.Context) (*models.Submission, error) {
	if err := v.guard.acquire(); err != nil {
		return nil, err
	}
	defer v.guard.release()

	v.mu.Lock()
	if v.state.Submission == nil {
		v.mu.Unlock()
		return nil, ErrNotLoaded
	}
	id := v.state.Submission.ID
	ed := v.state.Editor
	v.state.Notice = ""
	v.mu.Unlock()

	status := ed.Status
	update := models.SubmissionUpdate{
		ThaiFinal:     models.Optional(ed.ThaiFinal),
		Status:        &status,
		ReviewerNotes: models.Optional(ed.ReviewerNotes),
	}

	sub, err := v.api.UpdateSubmission(ctx, id, update)
	if canceled(ctx) {
		return nil, ctx.Err()
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state.Notice = Message(err, "Failed to save submission")
		return nil, err
	}
	v.apply(sub)
	v.state.Notice = "Submission updated"
	return sub, nil
}

// Export downloads the loaded submission in format and returns where it was
// saved. Exports run independently of load and save.
func (v *SubmissionDetailView) Export(ctx context.Context, format models.ExportFormat) (string, error) {
	if err := v.export.acquire(); err != nil {
		return "", err
	}
	defer v.export.release()

	v.mu.Lock()
	if v.state.Submission == nil {
		v.mu.Unlock()
		return "", ErrNotLoaded
	}
	id := v.state.Submission.ID
	v.state.Notice = ""
	v.mu.Unlock()

	loc, err := v.api.ExportSubmission(ctx, id, format, v.saver)
	if canceled(ctx) {
		return "", ctx.Err()
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state.Notice = Message(err, "Export failed")
		return "", err
	}
	v.state.Notice = "Saved " + loc
	return loc, nil
}
