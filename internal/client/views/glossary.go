package views

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/leo/internal/client/api"
	"github.com/dmitrijs2005/leo/internal/client/models"
)

const errTermsRequired = validationError("Source and Thai terms are required")

// GlossaryForm is the raw input of the glossary admin form.
type GlossaryForm struct {
	SourceTerm   string
	ThaiTerm     string
	PartOfSpeech string
	Context      string
	Notes        string
	IsSensitive  bool
}

func (f GlossaryForm) payload() models.GlossaryEntryCreate {
	return models.GlossaryEntryCreate{
		SourceTerm:   strings.TrimSpace(f.SourceTerm),
		ThaiTerm:     strings.TrimSpace(f.ThaiTerm),
		PartOfSpeech: models.Optional(f.PartOfSpeech),
		Context:      models.Optional(f.Context),
		Notes:        models.Optional(f.Notes),
		IsSensitive:  f.IsSensitive,
	}
}

// GlossaryState is a snapshot of the glossary admin screen.
type GlossaryState struct {
	Entries []models.GlossaryEntry
	Search  string
	Loading bool
	Error   string
}

// GlossaryView manages the glossary admin screen: the full list is fetched
// once per load and searched locally.
type GlossaryView struct {
	api   GlossaryAPI
	guard guard

	mu    sync.Mutex
	state GlossaryState
}

func NewGlossaryView(a GlossaryAPI) *GlossaryView {
	return &GlossaryView{api: a}
}

// State returns a copy of the current state.
func (v *GlossaryView) State() GlossaryState {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.state
	s.Entries = append([]models.GlossaryEntry(nil), v.state.Entries...)
	s.Loading = v.guard.busy()
	return s
}

// SetSearch sets the local search text.
func (v *GlossaryView) SetSearch(search string) {
	v.mu.Lock()
	v.state.Search = search
	v.mu.Unlock()
}

// Filtered returns the fetched entries matching the search text on either
// term, case-insensitively.
func (v *GlossaryView) Filtered() []models.GlossaryEntry {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.GlossaryEntry, 0, len(v.state.Entries))
	for _, e := range v.state.Entries {
		if e.Matches(v.state.Search) {
			out = append(out, e)
		}
	}
	return out
}

// Load fetches the glossary.
func (v *GlossaryView) Load(ctx context.Context) error {
	if err := v.guard.acquire(); err != nil {
		return err
	}
	defer v.guard.release()

	v.setError("")
	return v.reload(ctx, "Failed to load glossary")
}

// reload fetches the list; callers hold the guard.
func (v *GlossaryView) reload(ctx context.Context, fallback string) error {
	list, err := v.api.ListGlossary(ctx, api.GlossaryQuery{})
	if canceled(ctx) {
		return ctx.Err()
	}
	if err != nil {
		v.setError(Message(err, fallback))
		return err
	}

	v.mu.Lock()
	v.state.Entries = list.Items
	v.mu.Unlock()
	return nil
}

// Create validates form, creates the entry and reloads the list.
func (v *GlossaryView) Create(ctx context.Context, form GlossaryForm) (*models.GlossaryEntry, error) {
	if strings.TrimSpace(form.SourceTerm) == "" || strings.TrimSpace(form.ThaiTerm) == "" {
		v.setError(errTermsRequired.Error())
		return nil, errTermsRequired
	}

	if err := v.guard.acquire(); err != nil {
		return nil, err
	}
	defer v.guard.release()

	v.setError("")
	entry, err := v.api.CreateGlossaryEntry(ctx, form.payload())
	if canceled(ctx) {
		return nil, ctx.Err()
	}
	if err != nil {
		v.setError(Message(err, "Failed to create entry"))
		return nil, err
	}

	if err := v.reload(ctx, "Failed to load glossary"); err != nil {
		return entry, err
	}
	return entry, nil
}

// Update applies a sparse update to an entry and reloads the list.
func (v *GlossaryView) Update(ctx context.Context, id string, update models.GlossaryEntryUpdate) (*models.GlossaryEntry, error) {
	if err := v.guard.acquire(); err != nil {
		return nil, err
	}
	defer v.guard.release()

	v.setError("")
	entry, err := v.api.UpdateGlossaryEntry(ctx, id, update)
	if canceled(ctx) {
		return nil, ctx.Err()
	}
	if err != nil {
		v.setError(Message(err, "Failed to update entry"))
		return nil, err
	}

	if err := v.reload(ctx, "Failed to load glossary"); err != nil {
		return entry, err
	}
	return entry, nil
}

// Delete removes an entry and reloads the list.
func (v *GlossaryView) Delete(ctx context.Context, id string) error {
	if err := v.guard.acquire(); err != nil {
		return err
	}
	defer v.guard.release()

	v.setError("")
	err := v.api.DeleteGlossaryEntry(ctx, id)
	if canceled(ctx) {
		return ctx.Err()
	}
	if err != nil {
		v.setError(Message(err, "Failed to delete entry"))
		return err
	}

	return v.reload(ctx, "Failed to load glossary")
}

func (v *GlossaryView) setError(msg string) {
	v.mu.Lock()
	v.state.Error = msg
	v.mu.Unlock()
}
