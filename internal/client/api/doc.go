// Package api is the typed gateway between the Leo client and its backend.
//
// # Overview
//
// Gateway translates typed calls into HTTP requests against a configurable
// base URL and HTTP responses back into models or errors:
//
//   - Glossary:     ListGlossary, GetGlossaryEntry, CreateGlossaryEntry,
//     UpdateGlossaryEntry, DeleteGlossaryEntry
//   - Submissions:  ListSubmissions, GetSubmission, CreateSubmission,
//     UpdateSubmission, FetchExport, ExportSubmission
//   - Metrics:      MetricsOverview
//   - Misc:         Translate, Health
//
// Empty filters are never sent, reads always bypass intermediate caches and
// create/update payloads are normalized so blank optional fields stay absent.
//
// # Error Handling
//
// Every non-2xx response becomes a *RequestError whose message is the
// response body text, or the HTTP status phrase when the body is empty.
// 404 responses also match ErrNotFound. Transport failures match
// ErrUnavailable. JSON decoding happens only for 2xx responses and decode
// errors are returned as-is.
//
// There are no retries, timeouts or caches; callers bound requests with the
// context they pass in.
package api
