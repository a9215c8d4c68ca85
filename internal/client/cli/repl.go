package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// commandContext derives the context a single command runs under. Ctrl-C
// cancels it; outside a command the default interrupt handling applies.
var commandContext = func(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt)
}

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Glossary(ctx context.Context, args []string) error
	AddTerm(ctx context.Context) error
	EditTerm(ctx context.Context, args []string) error
	DeleteTerm(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	New(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Review(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Metrics(ctx context.Context, args []string) error
	Translate(ctx context.Context) error
	Ping(ctx context.Context) error
}

const helpText = `Available commands:
  glossary [search]        list glossary terms, optionally filtered
  addterm                  add a glossary term
  editterm <id>            edit a glossary term
  delterm <id>             delete a glossary term
  list [status|all]        show submissions grouped by status
  new                      create a submission
  show <id>                show a submission
  review <id>              edit final text, status and reviewer notes
  export <id> <format>     save an export (csv, docx, social)
  metrics [days]           metrics overview (all time, 7 or 30 days)
  translate                translate text without saving it
  ping                     check the backend
  exit | quit              leave the program`

// runREPL reads commands line by line from reader and dispatches them to
// a. The loop exits on EOF, on "exit" or "quit", or when ctx is done.
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("leo %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		cmdCtx, stop := commandContext(ctx)
		dispatch(cmdCtx, a, cmd, args)
		stop()
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) {
	switch cmd {
	case "help":
		printlnFn(helpText)

	case "glossary", "g":
		_ = a.Glossary(ctx, args)

	case "addterm":
		_ = a.AddTerm(ctx)

	case "editterm":
		_ = a.EditTerm(ctx, args)

	case "delterm":
		_ = a.DeleteTerm(ctx, args)

	case "list", "l":
		_ = a.List(ctx, args)

	case "new":
		_ = a.New(ctx)

	case "show":
		_ = a.Show(ctx, args)

	case "review":
		_ = a.Review(ctx, args)

	case "export":
		_ = a.Export(ctx, args)

	case "metrics":
		_ = a.Metrics(ctx, args)

	case "translate":
		_ = a.Translate(ctx)

	case "ping":
		_ = a.Ping(ctx)

	default:
		printlnFn("Unknown command:", cmd)
	}
}
