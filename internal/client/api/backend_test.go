package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/leo/internal/client/models"
	"github.com/dmitrijs2005/leo/internal/timex"
)

// fakeBackend is an in-memory stand-in for the Leo backend covering the
// routes the gateway talks to.
type fakeBackend struct {
	mu          sync.Mutex
	seq         int
	glossary    []models.GlossaryEntry
	submissions []models.Submission
	requests    []*http.Request
}

func newFakeBackend(t *testing.T) (*fakeBackend, *httptest.Server) {
	t.Helper()
	b := &fakeBackend{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /glossary", b.listGlossary)
	mux.HandleFunc("POST /glossary", b.createGlossary)
	mux.HandleFunc("DELETE /glossary/{id}", b.deleteGlossary)
	mux.HandleFunc("GET /submissions", b.listSubmissions)
	mux.HandleFunc("POST /submissions", b.createSubmission)
	mux.HandleFunc("GET /submissions/{id}", b.getSubmission)
	mux.HandleFunc("GET /metrics/overview", b.metrics)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests = append(b.requests, r.Clone(r.Context()))
		b.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)
	return b, ts
}

func (b *fakeBackend) nextID() string {
	b.seq++
	return fmt.Sprintf("id-%d", b.seq)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (b *fakeBackend) listGlossary(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	search := r.URL.Query().Get("search")
	items := make([]models.GlossaryEntry, 0, len(b.glossary))
	for _, e := range b.glossary {
		if e.Matches(search) {
			items = append(items, e)
		}
	}
	writeJSON(w, http.StatusOK, models.GlossaryList{Items: items, Total: len(items)})
}

func (b *fakeBackend) createGlossary(w http.ResponseWriter, r *http.Request) {
	var in models.GlossaryEntryCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, e := range b.glossary {
		if e.SourceTerm == in.SourceTerm {
			http.Error(w, "Glossary entry already exists", http.StatusConflict)
			return
		}
	}
	e := models.GlossaryEntry{
		ID:           b.nextID(),
		SourceTerm:   in.SourceTerm,
		ThaiTerm:     in.ThaiTerm,
		PartOfSpeech: in.PartOfSpeech,
		Context:      in.Context,
		Notes:        in.Notes,
		IsSensitive:  in.IsSensitive,
	}
	b.glossary = append(b.glossary, e)
	writeJSON(w, http.StatusCreated, e)
}

func (b *fakeBackend) deleteGlossary(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := r.PathValue("id")
	for i, e := range b.glossary {
		if e.ID == id {
			b.glossary = append(b.glossary[:i], b.glossary[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.Error(w, "Entry not found", http.StatusNotFound)
}

func (b *fakeBackend) listSubmissions(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	status := models.SubmissionStatus(r.URL.Query().Get("status"))
	items := make([]models.Submission, 0, len(b.submissions))
	for _, s := range b.submissions {
		if status == "" || s.Status == status {
			items = append(items, s)
		}
	}
	writeJSON(w, http.StatusOK, models.SubmissionList{Items: items, Total: len(items)})
}

func (b *fakeBackend) createSubmission(w http.ResponseWriter, r *http.Request) {
	var in models.SubmissionCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := timex.Time{Time: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	s := models.Submission{
		ID:            b.nextID(),
		Title:         in.Title,
		SourceText:    in.SourceText,
		Tone:          in.Tone,
		Audience:      in.Audience,
		Channel:       in.Channel,
		ThaiDraft:     "ร่าง: " + in.SourceText,
		GlossaryTerms: []string{},
		Warnings:      []string{},
		Status:        models.StatusEditing,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	b.submissions = append(b.submissions, s)
	writeJSON(w, http.StatusCreated, s)
}

func (b *fakeBackend) getSubmission(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, s := range b.submissions {
		if s.ID == r.PathValue("id") {
			writeJSON(w, http.StatusOK, s)
			return
		}
	}
	http.Error(w, "Not found", http.StatusNotFound)
}

func (b *fakeBackend) metrics(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	byStatus := map[string]int{}
	for _, st := range models.StatusOrder {
		byStatus[string(st)] = 0
	}
	approved := 0
	for _, s := range b.submissions {
		byStatus[string(s.Status)]++
		if s.Status == models.StatusApproved {
			approved++
		}
	}
	rate := 0.0
	if len(b.submissions) > 0 {
		rate = float64(approved) / float64(len(b.submissions))
	}
	writeJSON(w, http.StatusOK, models.MetricsOverview{
		TotalSubmissions:    len(b.submissions),
		SubmissionsByStatus: byStatus,
		ApprovalRate:        rate,
	})
}
