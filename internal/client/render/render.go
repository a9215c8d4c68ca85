// Package render formats Leo client views for a terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/leo/internal/client/i18n"
	"github.com/dmitrijs2005/leo/internal/timex"
	"golang.org/x/term"
	"golang.org/x/text/message"
)

const (
	defaultWidth = 80
	dateLayout   = "2006-01-02 15:04"
	placeholder  = "–"
)

// Renderer writes human-readable output to w.
type Renderer struct {
	w     io.Writer
	tr    *i18n.Translator
	p     *message.Printer
	loc   *time.Location
	width int
}

type Option func(*Renderer)

// WithLocation sets the time zone dates are shown in. Default is time.Local.
func WithLocation(loc *time.Location) Option {
	return func(r *Renderer) { r.loc = loc }
}

// WithWidth fixes the output width instead of probing the terminal.
func WithWidth(n int) Option {
	return func(r *Renderer) { r.width = n }
}

func New(w io.Writer, tr *i18n.Translator, opts ...Option) *Renderer {
	r := &Renderer{
		w:   w,
		tr:  tr,
		p:   message.NewPrinter(tr.Tag()),
		loc: time.Local,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.width <= 0 {
		r.width = TerminalWidth(w)
	}
	return r
}

// TerminalWidth reports the column count of w when it is a terminal, or a
// default of 80.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}

// Date formats t in the renderer's time zone.
func (r *Renderer) Date(t timex.Time) string {
	if t.IsZero() {
		return placeholder
	}
	return t.In(r.loc).Format(dateLayout)
}

// Percent formats a 0..1 ratio with one decimal.
func (r *Renderer) Percent(ratio float64) string {
	return r.p.Sprintf("%.1f%%", ratio*100)
}

// Cost formats a USD amount with two decimals.
func (r *Renderer) Cost(usd float64) string {
	return r.p.Sprintf("$%.2f", usd)
}

// Number formats an integer with locale grouping.
func (r *Renderer) Number(n int) string {
	return r.p.Sprintf("%d", n)
}

// Decimal formats an optional value with one decimal, or a dash.
func (r *Renderer) Decimal(v *float64) string {
	if v == nil {
		return placeholder
	}
	return r.p.Sprintf("%.1f", *v)
}

func (r *Renderer) yesNo(b bool) string {
	if b {
		return r.tr.T("yes", nil)
	}
	return r.tr.T("no", nil)
}

// Line writes one line of text.
func (r *Renderer) Line(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

func (r *Renderer) heading(title string) {
	fmt.Fprintln(r.w, title)
	fmt.Fprintln(r.w, strings.Repeat("=", utf8.RuneCountInString(title)))
}

func (r *Renderer) table() *tabwriter.Writer {
	return tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
}

// field writes "label: value", skipping empty values.
func (r *Renderer) field(key, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(r.w, "%s: %s\n", r.tr.T(key, nil), value)
}

// block writes a labeled multi-line text.
func (r *Renderer) block(key, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	fmt.Fprintf(r.w, "%s:\n", r.tr.T(key, nil))
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(r.w, "  %s\n", line)
	}
}
