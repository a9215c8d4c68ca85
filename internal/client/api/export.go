package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/leo/internal/client/models"
)

// Saver stores a downloaded export under name and returns where it went.
type Saver interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// FetchExport downloads the binary export of a submission. The body is
// never parsed; a non-2xx status yields a *RequestError like any other call.
func (g *Gateway) FetchExport(ctx context.Context, id string, format models.ExportFormat) (*models.Export, error) {
	resp, err := g.send(ctx, call{
		method: http.MethodGet,
		path:   "/submissions/{id}/export",
		id:     id,
		query:  url.Values{"format": []string{string(format)}},
		accept: "*/*",
	})
	if err != nil {
		return nil, err
	}

	return &models.Export{
		Filename:    ResolveFilename(resp.Header().Get("Content-Disposition"), id, format),
		ContentType: resp.Header().Get("Content-Type"),
		Data:        resp.Body(),
	}, nil
}

// ExportSubmission downloads an export and hands it to saver under the
// resolved filename. It returns the saver's location.
func (g *Gateway) ExportSubmission(ctx context.Context, id string, format models.ExportFormat, saver Saver) (string, error) {
	exp, err := g.FetchExport(ctx, id, format)
	if err != nil {
		return "", err
	}

	location, err := saver.Save(ctx, exp.Filename, exp.Data)
	if err != nil {
		return "", fmt.Errorf("save export %s: %w", exp.Filename, err)
	}

	g.log.Info(ctx, "export saved", "submission_id", id, "format", format, "location", location, "bytes", len(exp.Data))
	return location, nil
}
