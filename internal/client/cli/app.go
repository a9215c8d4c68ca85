package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/leo/internal/client/api"
	"github.com/dmitrijs2005/leo/internal/client/i18n"
	"github.com/dmitrijs2005/leo/internal/client/models"
	"github.com/dmitrijs2005/leo/internal/client/render"
	"github.com/dmitrijs2005/leo/internal/client/views"
	"github.com/dmitrijs2005/leo/internal/logging"
)

type Mode string

const (
	ModeUnknown Mode = ""
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// Backend is everything the CLI needs from the Leo backend. *api.Gateway
// satisfies it.
type Backend interface {
	views.GlossaryAPI
	views.SubmissionsAPI
	views.SubmissionAPI
	views.CreateSubmissionAPI
	views.MetricsAPI
	views.TranslateAPI
	GetGlossaryEntry(ctx context.Context, id string) (*models.GlossaryEntry, error)
	Health(ctx context.Context) error
}

// Deps are the collaborators of an App.
type Deps struct {
	Backend    Backend
	Saver      api.Saver
	Translator *i18n.Translator
	Renderer   *render.Renderer
	In         io.Reader
	Out        io.Writer
	Log        logging.Logger
}

type App struct {
	backend Backend
	tr      *i18n.Translator
	r       *render.Renderer
	reader  *bufio.Reader
	out     io.Writer
	log     logging.Logger

	glossary  *views.GlossaryView
	board     *views.SubmissionsView
	detail    *views.SubmissionDetailView
	compose   *views.ComposeView
	metrics   *views.MetricsView
	translate *views.TranslateView

	mu   sync.Mutex
	mode Mode
}

func NewApp(d Deps) *App {
	log := d.Log
	if log == nil {
		log = logging.Nop()
	}
	return &App{
		backend:   d.Backend,
		tr:        d.Translator,
		r:         d.Renderer,
		reader:    bufio.NewReader(d.In),
		out:       d.Out,
		log:       log,
		glossary:  views.NewGlossaryView(d.Backend),
		board:     views.NewSubmissionsView(d.Backend),
		detail:    views.NewSubmissionDetailView(d.Backend, d.Saver),
		compose:   views.NewComposeView(d.Backend),
		metrics:   views.NewMetricsView(d.Backend),
		translate: views.NewTranslateView(d.Backend),
	}
}

// Run starts the health watcher (when interval is positive) and the REPL,
// and blocks until the user exits or ctx is done.
func (a *App) Run(ctx context.Context, healthInterval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.checkHealth(ctx)
	if healthInterval > 0 {
		go a.StartHealthWatcher(ctx, healthInterval)
	}

	printlnFn("Leo localization CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

// Mode reports whether the backend answered the last health probe.
func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "backend status changed", "mode", string(mode))
	}
}

func (a *App) status() string {
	if m := a.Mode(); m != ModeUnknown {
		return "(" + string(m) + ")"
	}
	return ""
}

func (a *App) checkHealth(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.backend.Health(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartHealthWatcher probes the backend every interval until ctx is done.
func (a *App) StartHealthWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkHealth(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// fail reports err to the user. inline is the message the view recorded
// for it, if any.
func (a *App) fail(ctx context.Context, err error, inline string) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		a.println("Canceled.")
	case errors.Is(err, views.ErrBusy):
		a.println("Busy: another request is still running.")
	case inline != "":
		a.println("Error:", inline)
	default:
		a.println("Error:", err.Error())
	}
	a.log.Debug(ctx, "command failed", "error", err)
	return err
}

var errUsage = errors.New("usage")

func (a *App) usage(text string) error {
	a.println("Usage:", text)
	return errUsage
}
