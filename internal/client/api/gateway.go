package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/leo/internal/logging"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID carries a per-request correlation id.
	HeaderRequestID = "X-Request-ID"

	defaultUserAgent = "leo-cli"
)

var ErrEmptyID = errors.New("empty id")

// Gateway is the single point of contact with the Leo backend. It is safe
// for concurrent use.
type Gateway struct {
	baseURL string
	http    *resty.Client
	log     logging.Logger
}

type options struct {
	httpClient *http.Client
	log        logging.Logger
	userAgent  string
}

// Option customizes a Gateway.
type Option func(*options)

// WithHTTPClient makes the gateway send requests through c.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// New returns a Gateway for the backend at baseURL. The base URL must be
// absolute; a path prefix such as "/api" is preserved.
func New(baseURL string, opts ...Option) (*Gateway, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("api: invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api: invalid base url %q: scheme and host are required", baseURL)
	}

	o := options{log: logging.Nop(), userAgent: defaultUserAgent}
	for _, opt := range opts {
		opt(&o)
	}

	var c *resty.Client
	if o.httpClient != nil {
		c = resty.NewWithClient(o.httpClient)
	} else {
		c = resty.New()
	}

	base := strings.TrimRight(baseURL, "/")
	c.SetBaseURL(base).
		SetRetryCount(0).
		SetLogger(restyLogger{log: o.log}).
		SetHeader("User-Agent", o.userAgent)

	return &Gateway{baseURL: base, http: c, log: o.log.With("component", "api")}, nil
}

// BaseURL returns the backend base URL without a trailing slash.
func (g *Gateway) BaseURL() string { return g.baseURL }

// call describes one backend request.
type call struct {
	method string
	// path may contain an {id} placeholder filled from id.
	path   string
	id     string
	query  url.Values
	body   any
	accept string
}

// send executes c and returns the response only when the status is 2xx.
func (g *Gateway) send(ctx context.Context, c call) (*resty.Response, error) {
	if strings.Contains(c.path, "{id}") && strings.TrimSpace(c.id) == "" {
		return nil, ErrEmptyID
	}

	requestID := uuid.NewString()
	accept := c.accept
	if accept == "" {
		accept = "application/json"
	}

	req := g.http.R().
		SetContext(ctx).
		SetHeader(HeaderRequestID, requestID).
		SetHeader("Accept", accept)

	if c.method == http.MethodGet {
		req.SetHeader("Cache-Control", "no-cache, no-store").
			SetHeader("Pragma", "no-cache")
	}
	if c.id != "" {
		req.SetPathParam("id", c.id)
	}
	if len(c.query) > 0 {
		req.SetQueryParamsFromValues(c.query)
	}
	if c.body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(c.body)
	}

	start := time.Now()
	resp, err := req.Execute(c.method, c.path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		g.log.Warn(ctx, "api request failed", "method", c.method, "path", c.path, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	g.log.Debug(ctx, "api request",
		"method", c.method,
		"url", resp.Request.URL,
		"status", resp.StatusCode(),
		"duration", time.Since(start),
		"request_id", requestID,
	)

	if !resp.IsSuccess() {
		return nil, &RequestError{
			Method:     c.method,
			Path:       c.path,
			StatusCode: resp.StatusCode(),
			StatusText: statusPhrase(resp.Status(), resp.StatusCode()),
			Body:       string(resp.Body()),
		}
	}
	return resp, nil
}

// fetch sends c and decodes a 2xx JSON body into T.
func fetch[T any](ctx context.Context, g *Gateway, c call) (*T, error) {
	resp, err := g.send(ctx, c)
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(resp.Body(), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// restyLogger routes resty's internal messages into logging.Logger.
type restyLogger struct {
	log logging.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error(context.Background(), fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn(context.Background(), fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug(context.Background(), fmt.Sprintf(format, v...), "component", "resty")
}
