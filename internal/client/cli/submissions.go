package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/leo/internal/client/models"
	"github.com/dmitrijs2005/leo/internal/client/views"
)

// List prints the submissions board, optionally for one status.
func (a *App) List(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return a.usage("list [status|all]")
	}

	var status models.SubmissionStatus
	if len(args) == 1 {
		st, err := models.ParseSubmissionStatus(args[0])
		if err != nil {
			return a.fail(ctx, err, "")
		}
		status = st
	}

	if err := a.board.Load(ctx, status); err != nil {
		return a.fail(ctx, err, a.board.State().Error)
	}
	a.r.Submissions(a.board.Groups())
	return nil
}

// New prompts for a submission and creates it. The backend translates it
// before answering.
func (a *App) New(ctx context.Context) error {
	var form views.SubmissionForm
	var err error

	if form.Title, err = GetSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if form.SourceText, err = GetMultiline(a.reader, "Source content", a.out); err != nil {
		return err
	}
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Tone (optional)", &form.Tone},
		{"Audience (optional)", &form.Audience},
		{"Channel (optional)", &form.Channel},
	} {
		if *f.dst, err = GetSimpleText(a.reader, f.prompt, a.out); err != nil {
			return err
		}
	}

	a.println("Translating...")
	sub, err := a.compose.Submit(ctx, form)
	if err != nil {
		return a.fail(ctx, err, a.compose.State().Error)
	}
	a.r.Submission(sub)
	return nil
}

// Show prints one submission.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("show <id>")
	}
	if err := a.detail.Load(ctx, args[0]); err != nil {
		return a.fail(ctx, err, a.detail.State().Error)
	}
	a.r.Submission(a.detail.State().Submission)
	return nil
}

// Review loads a submission, prompts for the final text, status and
// reviewer notes, and saves them.
func (a *App) Review(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("review <id>")
	}
	if err := a.detail.Load(ctx, args[0]); err != nil {
		return a.fail(ctx, err, a.detail.State().Error)
	}

	st := a.detail.State()
	a.r.Submission(st.Submission)
	ed := st.Editor

	final, err := GetMultiline(a.reader, "Thai final text (empty keeps the current text)", a.out)
	if err != nil {
		return err
	}
	if final != "" {
		ed.ThaiFinal = final
	}

	options := make([]string, len(models.StatusOrder))
	for i, s := range models.StatusOrder {
		options[i] = string(s)
	}
	raw, err := GetWithDefault(a.reader, "Status ("+strings.Join(options, ", ")+")", string(ed.Status), a.out)
	if err != nil {
		return err
	}
	status, err := models.ParseSubmissionStatus(raw)
	if err != nil || status == "" {
		return a.fail(ctx, views.ErrValidation, "unknown status "+raw)
	}
	ed.Status = status

	if ed.ReviewerNotes, err = GetWithDefault(a.reader, "Reviewer notes", ed.ReviewerNotes, a.out); err != nil {
		return err
	}

	a.detail.SetEditor(ed)
	if _, err := a.detail.Save(ctx); err != nil {
		return a.fail(ctx, err, a.detail.State().Notice)
	}
	a.println(a.detail.State().Notice)
	return nil
}

// Export saves a submission export into the download directory.
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return a.usage("export <id> <csv|docx|social>")
	}
	format, err := models.ParseExportFormat(args[1])
	if err != nil {
		return a.fail(ctx, err, "")
	}

	if err := a.detail.Load(ctx, args[0]); err != nil {
		return a.fail(ctx, err, a.detail.State().Error)
	}
	if _, err := a.detail.Export(ctx, format); err != nil {
		return a.fail(ctx, err, a.detail.State().Notice)
	}
	a.println(a.detail.State().Notice)
	return nil
}
