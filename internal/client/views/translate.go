package views

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/leo/internal/client/models"
)

const errTextRequired = validationError("Text is required")

// TranslateState is a snapshot of the ad-hoc translation screen.
type TranslateState struct {
	Result  *models.TranslateResult
	Loading bool
	Error   string
}

// TranslateView runs one-off translations that are not stored as
// submissions.
type TranslateView struct {
	api   TranslateAPI
	guard guard

	mu    sync.Mutex
	state TranslateState
}

func NewTranslateView(a TranslateAPI) *TranslateView {
	return &TranslateView{api: a}
}

func (v *TranslateView) State() TranslateState {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.state
	s.Loading = v.guard.busy()
	return s
}

func (v *TranslateView) Translate(ctx context.Context, req models.TranslateRequest) (*models.TranslateResult, error) {
	if strings.TrimSpace(req.Text) == "" {
		v.mu.Lock()
		v.state.Error = errTextRequired.Error()
		v.mu.Unlock()
		return nil, errTextRequired
	}

	if err := v.guard.acquire(); err != nil {
		return nil, err
	}
	defer v.guard.release()

	v.mu.Lock()
	v.state.Error = ""
	v.mu.Unlock()

	res, err := v.api.Translate(ctx, req.Normalized())
	if canceled(ctx) {
		return nil, ctx.Err()
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state.Error = Message(err, "Translation failed")
		return nil, err
	}
	v.state.Result = res
	return res, nil
}
