package views

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/leo/internal/client/models"
)

// Group is one status column of the submissions board.
type Group struct {
	Status models.SubmissionStatus
	Items  []models.Submission
}

// SubmissionsState is a snapshot of the submissions board.
type SubmissionsState struct {
	Items   []models.Submission
	Filter  models.SubmissionStatus
	Loading bool
	Error   string
}

// SubmissionsView manages the submissions board.
type SubmissionsView struct {
	api   SubmissionsAPI
	guard guard

	mu    sync.Mutex
	state SubmissionsState
}

func NewSubmissionsView(a SubmissionsAPI) *SubmissionsView {
	return &SubmissionsView{api: a}
}

func (v *SubmissionsView) State() SubmissionsState {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.state
	s.Items = append([]models.Submission(nil), v.state.Items...)
	s.Loading = v.guard.busy()
	return s
}

// Load fetches submissions with the given status; an empty status means all.
func (v *SubmissionsView) Load(ctx context.Context, status models.SubmissionStatus) error {
	if err := v.guard.acquire(); err != nil {
		return err
	}
	defer v.guard.release()

	v.mu.Lock()
	v.state.Filter = status
	v.state.Error = ""
	v.mu.Unlock()

	list, err := v.api.ListSubmissions(ctx, status)
	if canceled(ctx) {
		return ctx.Err()
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state.Error = Message(err, "Failed to load submissions")
		return err
	}
	v.state.Items = list.Items
	return nil
}

// Groups buckets the loaded submissions by status in board order. With a
// filter set only that status is shown; empty groups are omitted.
func (v *SubmissionsView) Groups() []Group {
	v.mu.Lock()
	defer v.mu.Unlock()

	var groups []Group
	for _, st := range models.StatusOrder {
		if v.state.Filter != "" && st != v.state.Filter {
			continue
		}
		var items []models.Submission
		for _, s := range v.state.Items {
			if s.Status == st {
				items = append(items, s)
			}
		}
		if len(items) > 0 {
			groups = append(groups, Group{Status: st, Items: items})
		}
	}
	return groups
}
