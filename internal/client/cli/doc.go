// Package cli provides the interactive Leo command-line client.
//
// It wires the backend gateway, the per-screen views, terminal rendering
// and an interactive REPL. A background watcher probes the backend and
// shows whether it is reachable in the prompt.
//
// Key features:
//   - Glossary admin: search, add, edit and delete terms
//   - Submissions board grouped by status
//   - Review a submission and save the final text, status and notes
//   - Export a submission as csv, docx or social caption
//   - Metrics overview for all time, 7 or 30 days
//   - Ad-hoc translation
//
// Pressing Ctrl-C while a command waits on the backend cancels that
// request and returns to the prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
