package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/leo/internal/client/models"
)

// ListSubmissions returns submissions, restricted to status unless it is
// empty.
func (g *Gateway) ListSubmissions(ctx context.Context, status models.SubmissionStatus) (*models.SubmissionList, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}
	return fetch[models.SubmissionList](ctx, g, call{
		method: http.MethodGet,
		path:   "/submissions",
		query:  q,
	})
}

// GetSubmission returns one submission. A missing submission yields a
// *RequestError matching ErrNotFound.
func (g *Gateway) GetSubmission(ctx context.Context, id string) (*models.Submission, error) {
	return fetch[models.Submission](ctx, g, call{
		method: http.MethodGet,
		path:   "/submissions/{id}",
		id:     id,
	})
}

// CreateSubmission creates a submission; the backend generates the Thai
// draft before responding.
func (g *Gateway) CreateSubmission(ctx context.Context, s models.SubmissionCreate) (*models.Submission, error) {
	return fetch[models.Submission](ctx, g, call{
		method: http.MethodPost,
		path:   "/submissions",
		body:   s.Normalized(),
	})
}

// UpdateSubmission sends only the fields set in update and returns the full
// updated submission.
func (g *Gateway) UpdateSubmission(ctx context.Context, id string, update models.SubmissionUpdate) (*models.Submission, error) {
	return fetch[models.Submission](ctx, g, call{
		method: http.MethodPut,
		path:   "/submissions/{id}",
		id:     id,
		body:   update.Normalized(),
	})
}
