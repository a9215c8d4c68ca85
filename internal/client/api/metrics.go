package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/leo/internal/client/models"
)

// MetricsOverview returns the aggregate snapshot over the last days days,
// or over all time when days is not positive.
func (g *Gateway) MetricsOverview(ctx context.Context, days int) (*models.MetricsOverview, error) {
	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	return fetch[models.MetricsOverview](ctx, g, call{
		method: http.MethodGet,
		path:   "/metrics/overview",
		query:  q,
	})
}
