package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/leo/internal/client/models"
)

// GlossaryQuery filters GET /glossary. Zero fields are not sent.
type GlossaryQuery struct {
	Search string
	Limit  int
	Offset int
}

func (q GlossaryQuery) values() url.Values {
	v := url.Values{}
	if s := strings.TrimSpace(q.Search); s != "" {
		v.Set("search", s)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	return v
}

// ListGlossary returns glossary entries matching q.
func (g *Gateway) ListGlossary(ctx context.Context, q GlossaryQuery) (*models.GlossaryList, error) {
	return fetch[models.GlossaryList](ctx, g, call{
		method: http.MethodGet,
		path:   "/glossary",
		query:  q.values(),
	})
}

// GetGlossaryEntry returns one entry.
func (g *Gateway) GetGlossaryEntry(ctx context.Context, id string) (*models.GlossaryEntry, error) {
	return fetch[models.GlossaryEntry](ctx, g, call{
		method: http.MethodGet,
		path:   "/glossary/{id}",
		id:     id,
	})
}

// CreateGlossaryEntry creates an entry and returns it as stored by the
// backend, including the server-assigned id.
func (g *Gateway) CreateGlossaryEntry(ctx context.Context, entry models.GlossaryEntryCreate) (*models.GlossaryEntry, error) {
	return fetch[models.GlossaryEntry](ctx, g, call{
		method: http.MethodPost,
		path:   "/glossary",
		body:   entry.Normalized(),
	})
}

// UpdateGlossaryEntry applies a sparse update and returns the full entry.
func (g *Gateway) UpdateGlossaryEntry(ctx context.Context, id string, update models.GlossaryEntryUpdate) (*models.GlossaryEntry, error) {
	return fetch[models.GlossaryEntry](ctx, g, call{
		method: http.MethodPut,
		path:   "/glossary/{id}",
		id:     id,
		body:   update.Normalized(),
	})
}

// DeleteGlossaryEntry removes an entry.
func (g *Gateway) DeleteGlossaryEntry(ctx context.Context, id string) error {
	_, err := g.send(ctx, call{
		method: http.MethodDelete,
		path:   "/glossary/{id}",
		id:     id,
	})
	return err
}
