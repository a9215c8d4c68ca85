package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/leo/internal/client/models"
)

// Translate asks the backend for an ad hoc Thai draft without creating a
// submission.
func (g *Gateway) Translate(ctx context.Context, req models.TranslateRequest) (*models.TranslateResult, error) {
	return fetch[models.TranslateResult](ctx, g, call{
		method: http.MethodPost,
		path:   "/translate",
		body:   req.Normalized(),
	})
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health probes GET /health. Any status other than "ok" is reported as
// ErrUnavailable.
func (g *Gateway) Health(ctx context.Context) error {
	h, err := fetch[healthResponse](ctx, g, call{method: http.MethodGet, path: "/health"})
	if err != nil {
		return err
	}
	if h.Status != "ok" {
		return ErrUnavailable
	}
	return nil
}
