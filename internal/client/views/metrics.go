package views

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/leo/internal/client/models"
)

// MetricsWindows are the selectable reporting windows in days; 0 is all time.
var MetricsWindows = []int{0, 7, 30}

// MetricsState is a snapshot of the metrics dashboard.
type MetricsState struct {
	Metrics *models.MetricsOverview
	Days    int
	Loading bool
	Error   string
}

// MetricsView manages the metrics dashboard.
type MetricsView struct {
	api   MetricsAPI
	guard guard

	mu    sync.Mutex
	state MetricsState
}

func NewMetricsView(a MetricsAPI) *MetricsView {
	return &MetricsView{api: a}
}

func (v *MetricsView) State() MetricsState {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.state
	s.Loading = v.guard.busy()
	return s
}

// Load fetches the overview for the last days days, or all time when days
// is not positive.
func (v *MetricsView) Load(ctx context.Context, days int) error {
	if days < 0 {
		days = 0
	}
	if err := v.guard.acquire(); err != nil {
		return err
	}
	defer v.guard.release()

	v.mu.Lock()
	v.state.Days = days
	v.state.Error = ""
	v.mu.Unlock()

	m, err := v.api.MetricsOverview(ctx, days)
	if canceled(ctx) {
		return ctx.Err()
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state.Error = Message(err, "Failed to load metrics")
		return err
	}
	v.state.Metrics = m
	return nil
}
