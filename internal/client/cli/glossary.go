package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/leo/internal/client/models"
	"github.com/dmitrijs2005/leo/internal/client/views"
)

// Glossary fetches the glossary and prints the entries matching the
// optional search words.
func (a *App) Glossary(ctx context.Context, args []string) error {
	if err := a.glossary.Load(ctx); err != nil {
		return a.fail(ctx, err, a.glossary.State().Error)
	}
	a.glossary.SetSearch(strings.Join(args, " "))
	a.r.Glossary(a.glossary.Filtered())
	return nil
}

// AddTerm prompts for a new glossary entry and creates it.
func (a *App) AddTerm(ctx context.Context) error {
	var form views.GlossaryForm
	var err error

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Source term", &form.SourceTerm},
		{"Thai term", &form.ThaiTerm},
		{"Part of speech (optional)", &form.PartOfSpeech},
		{"Context (optional)", &form.Context},
		{"Notes (optional)", &form.Notes},
	}
	for _, f := range fields {
		if *f.dst, err = GetSimpleText(a.reader, f.prompt, a.out); err != nil {
			return err
		}
	}
	if form.IsSensitive, err = GetYesNo(a.reader, "Sensitive term?", a.out); err != nil {
		return err
	}

	entry, err := a.glossary.Create(ctx, form)
	if err != nil {
		return a.fail(ctx, err, a.glossary.State().Error)
	}
	a.println("Added term", entry.SourceTerm, "→", entry.ThaiTerm, "(id "+entry.ID+")")
	return nil
}

// EditTerm prompts for new values of an entry, keeping the current value
// for empty answers, and sends only what changed.
func (a *App) EditTerm(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("editterm <id>")
	}

	entry, err := a.backend.GetGlossaryEntry(ctx, args[0])
	if err != nil {
		return a.fail(ctx, err, views.Message(err, "Failed to load glossary entry"))
	}
	a.println("Editing", entry.SourceTerm, "(empty answer keeps the current value)")

	thai, err := GetWithDefault(a.reader, "Thai term", entry.ThaiTerm, a.out)
	if err != nil {
		return err
	}
	pos, err := GetWithDefault(a.reader, "Part of speech", models.Value(entry.PartOfSpeech), a.out)
	if err != nil {
		return err
	}
	contextNote, err := GetWithDefault(a.reader, "Context", models.Value(entry.Context), a.out)
	if err != nil {
		return err
	}
	notes, err := GetWithDefault(a.reader, "Notes", models.Value(entry.Notes), a.out)
	if err != nil {
		return err
	}
	current := "no"
	if entry.IsSensitive {
		current = "yes"
	}
	answer, err := GetWithDefault(a.reader, "Sensitive (yes/no)", current, a.out)
	if err != nil {
		return err
	}
	sensitive := strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")

	var update models.GlossaryEntryUpdate
	changed := func(dst **string, v, current string) {
		if v != current {
			*dst = &v
		}
	}
	changed(&update.ThaiTerm, thai, entry.ThaiTerm)
	changed(&update.PartOfSpeech, pos, models.Value(entry.PartOfSpeech))
	changed(&update.Context, contextNote, models.Value(entry.Context))
	changed(&update.Notes, notes, models.Value(entry.Notes))
	if sensitive != entry.IsSensitive {
		update.IsSensitive = &sensitive
	}

	update = update.Normalized()
	if update.Empty() {
		a.println("Nothing to update.")
		return nil
	}

	if _, err := a.glossary.Update(ctx, entry.ID, update); err != nil {
		return a.fail(ctx, err, a.glossary.State().Error)
	}
	a.println("Updated term", entry.SourceTerm)
	return nil
}

// DeleteTerm removes an entry after confirmation.
func (a *App) DeleteTerm(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return a.usage("delterm <id>")
	}

	ok, err := GetYesNo(a.reader, "Delete glossary entry "+args[0]+"?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.println("Not deleted.")
		return nil
	}

	if err := a.glossary.Delete(ctx, args[0]); err != nil {
		return a.fail(ctx, err, a.glossary.State().Error)
	}
	a.println("Deleted.")
	return nil
}
