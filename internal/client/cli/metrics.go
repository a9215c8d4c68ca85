package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/leo/internal/client/models"
)

// Metrics prints the overview for the last N days, or all time without an
// argument.
func (a *App) Metrics(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return a.usage("metrics [days]")
	}

	days := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return a.usage("metrics [days], days is a non-negative number")
		}
		days = n
	}

	if err := a.metrics.Load(ctx, days); err != nil {
		return a.fail(ctx, err, a.metrics.State().Error)
	}
	st := a.metrics.State()
	a.r.Metrics(st.Metrics, st.Days)
	return nil
}

// Translate prompts for text and prints its translation without storing
// it.
func (a *App) Translate(ctx context.Context) error {
	var req models.TranslateRequest

	text, err := GetMultiline(a.reader, "Text to translate", a.out)
	if err != nil {
		return err
	}
	req.Text = text

	for _, f := range []struct {
		prompt string
		dst    **string
	}{
		{"Tone (optional)", &req.Tone},
		{"Audience (optional)", &req.Audience},
		{"Channel (optional)", &req.Channel},
	} {
		v, err := GetSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = models.Optional(v)
	}

	res, err := a.translate.Translate(ctx, req)
	if err != nil {
		return a.fail(ctx, err, a.translate.State().Error)
	}
	a.r.Translation(res)
	return nil
}

// Ping checks the backend health endpoint.
func (a *App) Ping(ctx context.Context) error {
	if err := a.backend.Health(ctx); err != nil {
		a.setMode(ModeOffline)
		return a.fail(ctx, err, fmt.Sprintf("backend is unreachable (%v)", err))
	}
	a.setMode(ModeOnline)
	a.println("Backend is reachable.")
	return nil
}
