// Package models defines the data-transfer shapes exchanged with the Leo
// backend: glossary entries, submissions, metrics snapshots and exports.
//
// All entities are authoritative on the backend. The client only normalizes
// outgoing payloads (see the Normalized methods) and never derives state.
package models
