package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/mugiliam/hatchrelclient/pkg/api"
	"github.com/mugiliam/hatchrelclient/pkg/catalogerrors"
	"github.com/rs/zerolog/log"
)

const (
	HeaderRequestID   = "X-Request-ID"
	HeaderCallerID    = "X-Caller-ID"
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	HeaderUserAgent   = "User-Agent"

	contentTypeJSON = "application/json"
)

var defaultUserAgent = "hatchrelclient/" + api.ClientVersion

type OptionsConfig struct {
	HTTPClient *http.Client
	Headers    map[string]string
	Timeout    time.Duration
	UserAgent  string
}

type Options func(*OptionsConfig)

func WithHTTPClient(c *http.Client) Options {
	return func(cfg *OptionsConfig) {
		cfg.HTTPClient = c
	}
}

// WithHeaders sets headers sent on every request. Per-call headers win.
func WithHeaders(h map[string]string) Options {
	return func(cfg *OptionsConfig) {
		if cfg.Headers == nil {
			cfg.Headers = make(map[string]string, len(h))
		}
		for k, v := range h {
			cfg.Headers[k] = v
		}
	}
}

func WithTimeout(d time.Duration) Options {
	return func(cfg *OptionsConfig) {
		cfg.Timeout = d
	}
}

func WithUserAgent(ua string) Options {
	return func(cfg *OptionsConfig) {
		cfg.UserAgent = ua
	}
}

// HTTPClient is the net/http implementation of Client.
type HTTPClient struct {
	baseURL   string
	client    *http.Client
	headers   map[string]string
	userAgent string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client for the catalog service at serverURI.
func NewHTTPClient(serverURI string, opts ...Options) (*HTTPClient, error) {
	u, err := url.Parse(serverURI)
	if err != nil {
		return nil, catalogerrors.ErrIllegalArgument.MsgErr("invalid server uri "+serverURI, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, catalogerrors.ErrIllegalArgument.Msg("server uri must be http or https: " + serverURI)
	}

	cfg := &OptionsConfig{UserAgent: defaultUserAgent}
	for _, opt := range opts {
		opt(cfg)
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	if cfg.Timeout > 0 {
		c := *hc
		c.Timeout = cfg.Timeout
		hc = &c
	}

	return &HTTPClient{
		baseURL:   strings.TrimRight(serverURI, "/"),
		client:    hc,
		headers:   cfg.Headers,
		userAgent: cfg.UserAgent,
	}, nil
}

func (c *HTTPClient) Get(ctx context.Context, path string, query url.Values, resp any, headers map[string]string, handler ErrorHandler) error {
	return c.execute(ctx, http.MethodGet, path, query, nil, resp, headers, handler)
}

func (c *HTTPClient) Post(ctx context.Context, path string, body any, resp any, headers map[string]string, handler ErrorHandler) error {
	return c.execute(ctx, http.MethodPost, path, nil, body, resp, headers, handler)
}

func (c *HTTPClient) Delete(ctx context.Context, path string, query url.Values, resp any, headers map[string]string, handler ErrorHandler) error {
	return c.execute(ctx, http.MethodDelete, path, query, nil, resp, headers, handler)
}

func (c *HTTPClient) execute(ctx context.Context, method, path string, query url.Values,
	body any, resp any, headers map[string]string, handler ErrorHandler) error {

	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	logger := log.Ctx(ctx).With().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Logger()

	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			logger.Error().Err(err).Msg("unable to marshal request body")
			return catalogerrors.ErrIllegalArgument.MsgErr("unable to marshal request body", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		logger.Error().Err(err).Msg("unable to build request")
		return catalogerrors.ErrIllegalArgument.MsgErr("unable to build request", err)
	}
	c.setHeaders(ctx, req, requestID, body != nil, headers)

	start := time.Now()
	rsp, err := c.client.Do(req)
	if err != nil {
		// transport failures are returned untouched
		logger.Error().Err(err).Msg("request failed")
		return err
	}
	defer rsp.Body.Close()

	payload, err := io.ReadAll(rsp.Body)
	if err != nil {
		logger.Error().Err(err).Msg("unable to read response")
		return err
	}
	logger.Debug().
		Int("status", rsp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("catalog request")

	if rsp.StatusCode < 200 || rsp.StatusCode > 299 {
		if handler == nil {
			handler = DefaultErrorHandler
		}
		return handler.Accept(rsp.StatusCode, payload)
	}

	if resp == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, resp); err != nil {
		logger.Error().Err(err).Msg("unable to decode response")
		return catalogerrors.ErrRest.MsgErr("unable to decode response from "+path, err)
	}
	return nil
}

func (c *HTTPClient) setHeaders(ctx context.Context, req *http.Request, requestID string, hasBody bool, headers map[string]string) {
	req.Header.Set(HeaderAccept, contentTypeJSON)
	if hasBody {
		req.Header.Set(HeaderContentType, contentTypeJSON)
	}
	if c.userAgent != "" {
		req.Header.Set(HeaderUserAgent, c.userAgent)
	}
	req.Header.Set(HeaderRequestID, requestID)
	if callerID := CallerIDFromContext(ctx); callerID != "" {
		req.Header.Set(HeaderCallerID, callerID)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
}

// DefaultErrorHandler is used when a call supplies no handler.
var DefaultErrorHandler ErrorHandler = ErrorHandlerFunc(func(statusCode int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(statusCode)
	}
	return catalogerrors.ErrRest.Msg(fmt.Sprintf("status %d: %s", statusCode, msg))
})
