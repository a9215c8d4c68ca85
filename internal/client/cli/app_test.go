package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/leo/internal/client/api"
	"github.com/dmitrijs2005/leo/internal/client/i18n"
	"github.com/dmitrijs2005/leo/internal/client/models"
	"github.com/dmitrijs2005/leo/internal/client/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memBackend is an in-memory Backend.
type memBackend struct {
	glossary    []models.GlossaryEntry
	submissions []models.Submission
	metrics     models.MetricsOverview
	healthErr   error
	createErr   error

	lastGlossaryUpdate models.GlossaryEntryUpdate
	lastUpdate         models.SubmissionUpdate
	lastStatus         models.SubmissionStatus
	lastDays           int
	lastExport         models.ExportFormat
	lastTranslate      models.TranslateRequest
}

func (m *memBackend) ListGlossary(context.Context, api.GlossaryQuery) (*models.GlossaryList, error) {
	items := append([]models.GlossaryEntry(nil), m.glossary...)
	return &models.GlossaryList{Items: items, Total: len(items)}, nil
}

func (m *memBackend) GetGlossaryEntry(_ context.Context, id string) (*models.GlossaryEntry, error) {
	for _, e := range m.glossary {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, &api.RequestError{StatusCode: 404, StatusText: "Not Found", Body: "Entry not found"}
}

func (m *memBackend) CreateGlossaryEntry(_ context.Context, in models.GlossaryEntryCreate) (*models.GlossaryEntry, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	e := models.GlossaryEntry{
		ID:           fmt.Sprintf("g%d", len(m.glossary)+1),
		SourceTerm:   in.SourceTerm,
		ThaiTerm:     in.ThaiTerm,
		PartOfSpeech: in.PartOfSpeech,
		Context:      in.Context,
		Notes:        in.Notes,
		IsSensitive:  in.IsSensitive,
	}
	m.glossary = append(m.glossary, e)
	return &e, nil
}

func (m *memBackend) UpdateGlossaryEntry(_ context.Context, id string, u models.GlossaryEntryUpdate) (*models.GlossaryEntry, error) {
	m.lastGlossaryUpdate = u
	for i := range m.glossary {
		if m.glossary[i].ID == id {
			if u.ThaiTerm != nil {
				m.glossary[i].ThaiTerm = *u.ThaiTerm
			}
			if u.IsSensitive != nil {
				m.glossary[i].IsSensitive = *u.IsSensitive
			}
			e := m.glossary[i]
			return &e, nil
		}
	}
	return nil, &api.RequestError{StatusCode: 404, Body: "Entry not found"}
}

func (m *memBackend) DeleteGlossaryEntry(_ context.Context, id string) error {
	for i, e := range m.glossary {
		if e.ID == id {
			m.glossary = append(m.glossary[:i], m.glossary[i+1:]...)
			return nil
		}
	}
	return &api.RequestError{StatusCode: 404, Body: "Entry not found"}
}

func (m *memBackend) ListSubmissions(_ context.Context, status models.SubmissionStatus) (*models.SubmissionList, error) {
	m.lastStatus = status
	var items []models.Submission
	for _, s := range m.submissions {
		if status == "" || s.Status == status {
			items = append(items, s)
		}
	}
	return &models.SubmissionList{Items: items, Total: len(items)}, nil
}

func (m *memBackend) GetSubmission(_ context.Context, id string) (*models.Submission, error) {
	for _, s := range m.submissions {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, &api.RequestError{StatusCode: 404, StatusText: "Not Found", Body: "Not found"}
}

func (m *memBackend) CreateSubmission(_ context.Context, in models.SubmissionCreate) (*models.Submission, error) {
	s := models.Submission{
		ID:         fmt.Sprintf("s%d", len(m.submissions)+1),
		Title:      in.Title,
		SourceText: in.SourceText,
		Channel:    in.Channel,
		ThaiDraft:  "ร่าง",
		Status:     models.StatusEditing,
	}
	m.submissions = append(m.submissions, s)
	return &s, nil
}

func (m *memBackend) UpdateSubmission(_ context.Context, id string, u models.SubmissionUpdate) (*models.Submission, error) {
	m.lastUpdate = u
	for i := range m.submissions {
		if m.submissions[i].ID == id {
			if u.ThaiFinal != nil {
				m.submissions[i].ThaiFinal = u.ThaiFinal
			}
			if u.Status != nil {
				m.submissions[i].Status = *u.Status
			}
			if u.ReviewerNotes != nil {
				m.submissions[i].ReviewerNotes = u.ReviewerNotes
			}
			s := m.submissions[i]
			return &s, nil
		}
	}
	return nil, &api.RequestError{StatusCode: 404, Body: "Not found"}
}

func (m *memBackend) ExportSubmission(ctx context.Context, id string, f models.ExportFormat, saver api.Saver) (string, error) {
	m.lastExport = f
	return saver.Save(ctx, api.FallbackFilename(id, f), []byte("data"))
}

func (m *memBackend) MetricsOverview(_ context.Context, days int) (*models.MetricsOverview, error) {
	m.lastDays = days
	out := m.metrics
	return &out, nil
}

func (m *memBackend) Translate(_ context.Context, r models.TranslateRequest) (*models.TranslateResult, error) {
	m.lastTranslate = r
	return &models.TranslateResult{ThaiText: "สวัสดี", GlossaryTermsApplied: []string{}}, nil
}

func (m *memBackend) Health(context.Context) error { return m.healthErr }

type memSaver struct {
	names []string
}

func (s *memSaver) Save(_ context.Context, name string, _ []byte) (string, error) {
	s.names = append(s.names, name)
	return "/exports/" + name, nil
}

func newTestApp(b *memBackend, input string) (*App, *bytes.Buffer, *memSaver) {
	var out bytes.Buffer
	saver := &memSaver{}
	tr := i18n.NewTranslator("en", nil)
	app := NewApp(Deps{
		Backend:    b,
		Saver:      saver,
		Translator: tr,
		Renderer:   render.New(&out, tr, render.WithWidth(100), render.WithLocation(time.UTC)),
		In:         strings.NewReader(input),
		Out:        &out,
	})
	return app, &out, saver
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func TestApp_Glossary(t *testing.T) {
	b := &memBackend{glossary: []models.GlossaryEntry{
		{ID: "g1", SourceTerm: "Checkout", ThaiTerm: "ชำระเงิน"},
		{ID: "g2", SourceTerm: "Cart", ThaiTerm: "ตะกร้า"},
	}}
	app, out, _ := newTestApp(b, "")

	require.NoError(t, app.Glossary(context.Background(), []string{"check"}))
	assert.Contains(t, out.String(), "Checkout")
	assert.NotContains(t, out.String(), "Cart")
}

func TestApp_AddTerm(t *testing.T) {
	b := &memBackend{}
	app, out, _ := newTestApp(b, lines("Checkout", "ชำระเงิน", "noun", "", "", "y"))

	require.NoError(t, app.AddTerm(context.Background()))
	require.Len(t, b.glossary, 1)
	e := b.glossary[0]
	assert.Equal(t, "Checkout", e.SourceTerm)
	assert.Equal(t, "noun", models.Value(e.PartOfSpeech))
	assert.Nil(t, e.Context)
	assert.True(t, e.IsSensitive)
	assert.Contains(t, out.String(), "Added term Checkout")
}

func TestApp_AddTerm_Errors(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		app, out, _ := newTestApp(&memBackend{}, lines("", "", "", "", "", "n"))

		require.Error(t, app.AddTerm(context.Background()))
		assert.Contains(t, out.String(), "Error: Source and Thai terms are required")
	})

	t.Run("backend message", func(t *testing.T) {
		b := &memBackend{createErr: &api.RequestError{StatusCode: 409, Body: "Glossary entry already exists"}}
		app, out, _ := newTestApp(b, lines("a", "b", "", "", "", "n"))

		require.Error(t, app.AddTerm(context.Background()))
		assert.Contains(t, out.String(), "Error: Glossary entry already exists")
	})

	t.Run("transport failure", func(t *testing.T) {
		b := &memBackend{createErr: fmt.Errorf("%w: connection refused", api.ErrUnavailable)}
		app, out, _ := newTestApp(b, lines("a", "b", "", "", "", "n"))

		require.Error(t, app.AddTerm(context.Background()))
		assert.Contains(t, out.String(), "Error: Failed to create entry")
	})
}

func TestApp_EditTerm(t *testing.T) {
	b := &memBackend{glossary: []models.GlossaryEntry{
		{ID: "g1", SourceTerm: "Checkout", ThaiTerm: "ชำระเงิน", IsSensitive: true},
	}}
	app, out, _ := newTestApp(b, lines("เช็คเอาท์", "", "", "", ""))

	require.NoError(t, app.EditTerm(context.Background(), []string{"g1"}))
	require.NotNil(t, b.lastGlossaryUpdate.ThaiTerm)
	assert.Equal(t, "เช็คเอาท์", *b.lastGlossaryUpdate.ThaiTerm)
	assert.Nil(t, b.lastGlossaryUpdate.IsSensitive)
	assert.Nil(t, b.lastGlossaryUpdate.Notes)
	assert.True(t, b.glossary[0].IsSensitive)
	assert.Contains(t, out.String(), "Updated term Checkout")
}

func TestApp_EditTerm_NothingToUpdate(t *testing.T) {
	b := &memBackend{glossary: []models.GlossaryEntry{{ID: "g1", SourceTerm: "Cart", ThaiTerm: "ตะกร้า"}}}
	app, out, _ := newTestApp(b, lines("", "", "", "", ""))

	require.NoError(t, app.EditTerm(context.Background(), []string{"g1"}))
	assert.Contains(t, out.String(), "Nothing to update.")
}

func TestApp_EditTerm_Missing(t *testing.T) {
	app, out, _ := newTestApp(&memBackend{}, "")

	require.Error(t, app.EditTerm(context.Background(), []string{"nope"}))
	assert.Contains(t, out.String(), "Error: Entry not found")

	require.Error(t, app.EditTerm(context.Background(), nil))
	assert.Contains(t, out.String(), "Usage: editterm <id>")
}

func TestApp_DeleteTerm(t *testing.T) {
	b := &memBackend{glossary: []models.GlossaryEntry{{ID: "g1"}, {ID: "g2"}}}
	app, out, _ := newTestApp(b, lines("n", "yes"))

	require.NoError(t, app.DeleteTerm(context.Background(), []string{"g1"}))
	assert.Len(t, b.glossary, 2)
	assert.Contains(t, out.String(), "Not deleted.")

	require.NoError(t, app.DeleteTerm(context.Background(), []string{"g1"}))
	require.Len(t, b.glossary, 1)
	assert.Equal(t, "g2", b.glossary[0].ID)
}

func TestApp_List(t *testing.T) {
	b := &memBackend{submissions: []models.Submission{
		{ID: "s1", Title: "Promo", Status: models.StatusApproved},
		{ID: "s2", Title: "Banner", Status: models.StatusEditing},
	}}
	app, out, _ := newTestApp(b, "")

	require.NoError(t, app.List(context.Background(), nil))
	assert.Contains(t, out.String(), "Editing (1)")
	assert.Contains(t, out.String(), "Approved (1)")

	out.Reset()
	require.NoError(t, app.List(context.Background(), []string{"approved"}))
	assert.Equal(t, models.StatusApproved, b.lastStatus)
	assert.NotContains(t, out.String(), "Banner")

	out.Reset()
	require.Error(t, app.List(context.Background(), []string{"archived"}))
	assert.Contains(t, out.String(), `unknown status "archived"`)
}

func TestApp_New(t *testing.T) {
	b := &memBackend{}
	app, out, _ := newTestApp(b, lines("Summer promo", "Buy one", "get one", "", "", "", "email"))

	require.NoError(t, app.New(context.Background()))
	require.Len(t, b.submissions, 1)
	s := b.submissions[0]
	assert.Equal(t, "Summer promo", s.Title)
	assert.Equal(t, "Buy one\nget one", s.SourceText)
	assert.Equal(t, "email", models.Value(s.Channel))
	assert.Contains(t, out.String(), "Summer promo\n============")
}

func TestApp_New_Validation(t *testing.T) {
	b := &memBackend{}
	app, out, _ := newTestApp(b, lines("", "", "", "", ""))

	require.Error(t, app.New(context.Background()))
	assert.Empty(t, b.submissions)
	assert.Contains(t, out.String(), "Error: Title and source content are required")
}

func TestApp_Show(t *testing.T) {
	app, out, _ := newTestApp(&memBackend{}, "")

	require.Error(t, app.Show(context.Background(), []string{"s9"}))
	assert.Contains(t, out.String(), "Error: Not found")
}

func TestApp_Review(t *testing.T) {
	b := &memBackend{submissions: []models.Submission{
		{ID: "s1", Title: "Promo", ThaiDraft: "ร่าง", Status: models.StatusInReview},
	}}
	app, out, _ := newTestApp(b, lines("ฉบับจริง", "", "approved", "Looks good"))

	require.NoError(t, app.Review(context.Background(), []string{"s1"}))
	require.NotNil(t, b.lastUpdate.ThaiFinal)
	assert.Equal(t, "ฉบับจริง", *b.lastUpdate.ThaiFinal)
	assert.Equal(t, models.StatusApproved, *b.lastUpdate.Status)
	assert.Equal(t, "Looks good", *b.lastUpdate.ReviewerNotes)
	assert.Contains(t, out.String(), "Submission updated")
}

func TestApp_Review_KeepsCurrentValues(t *testing.T) {
	b := &memBackend{submissions: []models.Submission{
		{ID: "s1", Title: "Promo", ThaiFinal: ptr("เดิม"), Status: models.StatusNeedsChanges},
	}}
	app, _, _ := newTestApp(b, lines("", "", "", ""))

	require.NoError(t, app.Review(context.Background(), []string{"s1"}))
	assert.Equal(t, "เดิม", *b.lastUpdate.ThaiFinal)
	assert.Equal(t, models.StatusNeedsChanges, *b.lastUpdate.Status)
	assert.Nil(t, b.lastUpdate.ReviewerNotes)
}

func TestApp_Review_InvalidStatus(t *testing.T) {
	b := &memBackend{submissions: []models.Submission{{ID: "s1", Status: models.StatusEditing}}}
	app, out, _ := newTestApp(b, lines("", "done", ""))

	require.Error(t, app.Review(context.Background(), []string{"s1"}))
	assert.Contains(t, out.String(), "Error: unknown status done")
	assert.Nil(t, b.lastUpdate.Status)
}

func TestApp_Export(t *testing.T) {
	b := &memBackend{submissions: []models.Submission{{ID: "s1"}}}
	app, out, saver := newTestApp(b, "")

	require.NoError(t, app.Export(context.Background(), []string{"s1", "social"}))
	assert.Equal(t, models.ExportSocial, b.lastExport)
	assert.Equal(t, []string{"submission-s1.txt"}, saver.names)
	assert.Contains(t, out.String(), "Saved /exports/submission-s1.txt")

	require.Error(t, app.Export(context.Background(), []string{"s1", "pdf"}))
	assert.Contains(t, out.String(), `unsupported export format "pdf"`)

	require.Error(t, app.Export(context.Background(), []string{"s1"}))
	assert.Contains(t, out.String(), "Usage: export <id> <csv|docx|social>")
}

func TestApp_Metrics(t *testing.T) {
	b := &memBackend{metrics: models.MetricsOverview{TotalSubmissions: 3, ApprovalRate: 0.5}}
	app, out, _ := newTestApp(b, "")

	require.NoError(t, app.Metrics(context.Background(), []string{"30"}))
	assert.Equal(t, 30, b.lastDays)
	assert.Contains(t, out.String(), "Last 30 days")
	assert.Contains(t, out.String(), "50.0%")

	require.NoError(t, app.Metrics(context.Background(), nil))
	assert.Equal(t, 0, b.lastDays)

	require.Error(t, app.Metrics(context.Background(), []string{"-1"}))
	require.Error(t, app.Metrics(context.Background(), []string{"week"}))
}

func TestApp_Translate(t *testing.T) {
	b := &memBackend{}
	app, out, _ := newTestApp(b, lines("Hello", "", "friendly", "", ""))

	require.NoError(t, app.Translate(context.Background()))
	assert.Equal(t, "Hello", b.lastTranslate.Text)
	assert.Equal(t, "friendly", models.Value(b.lastTranslate.Tone))
	assert.Nil(t, b.lastTranslate.Audience)
	assert.Contains(t, out.String(), "สวัสดี")
}

func TestApp_PingAndMode(t *testing.T) {
	b := &memBackend{}
	app, out, _ := newTestApp(b, "")
	assert.Equal(t, "", app.status())

	require.NoError(t, app.Ping(context.Background()))
	assert.Equal(t, ModeOnline, app.Mode())
	assert.Equal(t, "(online)", app.status())
	assert.Contains(t, out.String(), "Backend is reachable.")

	b.healthErr = fmt.Errorf("%w: refused", api.ErrUnavailable)
	require.Error(t, app.Ping(context.Background()))
	assert.Equal(t, ModeOffline, app.Mode())
	assert.Contains(t, out.String(), "backend is unreachable")
}

func TestApp_HealthWatcher(t *testing.T) {
	b := &memBackend{healthErr: api.ErrUnavailable}
	app, _, _ := newTestApp(b, "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.StartHealthWatcher(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return app.Mode() == ModeOffline }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestApp_CanceledCommand(t *testing.T) {
	b := &memBackend{glossary: []models.GlossaryEntry{{ID: "g1", SourceTerm: "x", ThaiTerm: "y"}}}
	app, out, _ := newTestApp(b, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, app.Glossary(ctx, nil))
	assert.Contains(t, out.String(), "Canceled.")
}

func TestApp_Run(t *testing.T) {
	capturePrintln(t)
	plainCommandContext(t)

	b := &memBackend{}
	app, out, _ := newTestApp(b, lines("ping", "exit"))

	app.Run(context.Background(), 0)
	assert.Equal(t, ModeOnline, app.Mode())
	assert.Contains(t, out.String(), "Backend is reachable.")
}

func ptr[T any](v T) *T { return &v }
