package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fivetwenty-io/igdb/internal/auth"
	"github.com/fivetwenty-io/igdb/internal/constants"
	"github.com/fivetwenty-io/igdb/pkg/igdb"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/fivetwenty-io/igdb/internal/http"

// Client is the HTTP transport shared by every endpoint client.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	tokenManager auth.TokenManager
	clientID     string
	userAgent    string
	logger       igdb.Logger
	debug        bool
	timeout      time.Duration
	interceptors *igdb.InterceptorChain
	tracer       trace.Tracer
}

// Option configures the client.
type Option func(*Client)

// Request is a call against the API root.
type Request struct {
	Method string
	Path   string
	Body   any
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// NewClient creates a transport for baseURL. A nil tokenManager sends no
// Authorization header. Retries are disabled until WithRetryConfig is used.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   retryClient,
		tokenManager: tokenManager,
		userAgent:    constants.DefaultUserAgent,
		tracer:       otel.Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.timeout > 0 && client.httpClient.HTTPClient.Timeout == 0 {
		client.httpClient.HTTPClient.Timeout = client.timeout
	}

	if client.debug && client.logger != nil {
		client.httpClient.Logger = &leveledLogger{logger: client.logger}
	}

	return client
}

// WithLogger sets the logger.
func WithLogger(logger igdb.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithClientID sets the Client-ID header sent with every API call.
func WithClientID(clientID string) Option {
	return func(c *Client) {
		c.clientID = clientID
	}
}

// WithRetryConfig enables retries of connection errors and 5xx responses.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax

		if waitMin > 0 {
			c.httpClient.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.httpClient.RetryWaitMax = waitMax
		}
	}
}

// WithTimeout sets the per-request timeout of the underlying http.Client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient uses a copy of httpClient for every call, including image
// fetches. The caller's client is never modified.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			copied := *httpClient
			c.httpClient.HTTPClient = &copied
		}
	}
}

// WithInterceptors runs the chain around every API call.
func WithInterceptors(chain *igdb.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithTracerProvider creates the span tracer from provider instead of the
// global OpenTelemetry provider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(c *Client) {
		if provider != nil {
			c.tracer = provider.Tracer(tracerName)
		}
	}
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Post sends body to path as text/plain. Only string and []byte bodies are accepted.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Do executes req. A non-success status returns the response together with
// a *igdb.ResponseError. A 401 triggers one token refresh and replay when
// the token manager supports it.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	ctx, span := c.tracer.Start(ctx, "igdb "+req.Path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("igdb.path", req.Path),
		),
	)
	defer span.End()

	start := time.Now()

	resp, err := c.doWithReplay(ctx, req, body, contentType)
	if err != nil {
		recordRequest(req.Path, errorLabel(err, resp), start)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		if resp != nil {
			span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
		}

		return resp, err
	}

	recordRequest(req.Path, statusLabel(resp.StatusCode), start)
	span.SetAttributes(
		attribute.Int("http.response.status_code", resp.StatusCode),
		attribute.Int("igdb.response.bytes", len(resp.Body)),
	)

	return resp, nil
}

func (c *Client) doWithReplay(ctx context.Context, req *Request, body []byte, contentType string) (*Response, error) {
	resp, err := c.doOnce(ctx, req, body, contentType)
	if err != nil || resp.StatusCode != constants.HTTPStatusUnauthorized || c.tokenManager == nil {
		return c.checkStatus(resp, err)
	}

	refreshErr := c.tokenManager.RefreshToken(ctx)
	if refreshErr != nil {
		c.logDebug("Token refresh failed", map[string]interface{}{"error": refreshErr.Error()})

		return c.checkStatus(resp, nil)
	}

	c.logDebug("Replaying request with refreshed token", map[string]interface{}{"path": req.Path})

	return c.checkStatus(c.doOnce(ctx, req, body, contentType))
}

func (c *Client) checkStatus(resp *Response, err error) (*Response, error) {
	if err != nil {
		return resp, err
	}

	if resp.StatusCode >= constants.HTTPStatusBadRequest {
		return resp, igdb.ParseResponseError(resp.StatusCode, resp.Body)
	}

	return resp, nil
}

func (c *Client) doOnce(ctx context.Context, req *Request, body []byte, contentType string) (*Response, error) {
	intercepted := &igdb.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: make(http.Header),
		Body:    body,
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", igdb.ErrTransport, err)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, c.buildURL(req), intercepted.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", igdb.ErrTransport, err)
	}

	httpReq.Header.Set("Accept", constants.ContentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.clientID != "" {
		httpReq.Header.Set(constants.HeaderClientID, c.clientID)
	}

	if c.tokenManager != nil {
		token, tokenErr := c.tokenManager.GetToken(ctx)
		if tokenErr != nil {
			return nil, ClassifyError(ctx, fmt.Errorf("getting access token: %w", tokenErr))
		}

		httpReq.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}

	for key, values := range intercepted.Headers {
		for _, value := range values {
			httpReq.Header.Set(key, value)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    httpReq.URL.String(),
			"body":   string(intercepted.Body),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		err = ClassifyError(ctx, err)
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &igdb.Response{Error: err})

		return nil, err
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, ClassifyError(ctx, fmt.Errorf("reading response body: %w", err))
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"bytes":  len(respBody),
		})
	}

	interceptedResp := &igdb.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}

	err = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, interceptedResp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", igdb.ErrTransport, err)
	}

	return resp, nil
}

// Stream fetches an absolute URL, typically on the image CDN, and returns
// the open body. No credentials are sent. The caller closes the body.
func (c *Client) Stream(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	ctx, span := c.tracer.Start(ctx, "igdb media",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("url.full", rawURL)),
	)

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		span.End()

		return nil, fmt.Errorf("%w: creating request: %w", igdb.ErrTransport, err)
	}

	httpReq.Header.Set("User-Agent", c.userAgent)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		err = ClassifyError(ctx, err)
		MediaFetchesTotal.WithLabelValues(errorLabel(err, nil)).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()

		return nil, err
	}

	MediaFetchesTotal.WithLabelValues(statusLabel(httpResp.StatusCode)).Inc()
	span.SetAttributes(attribute.Int("http.response.status_code", httpResp.StatusCode))

	if httpResp.StatusCode >= constants.HTTPStatusBadRequest {
		data, _ := io.ReadAll(httpResp.Body)
		_ = httpResp.Body.Close()

		errResp := igdb.ParseResponseError(httpResp.StatusCode, data)
		span.RecordError(errResp)
		span.SetStatus(codes.Error, errResp.Error())
		span.End()

		return nil, errResp
	}

	return &spanBody{ReadCloser: httpResp.Body, span: span}, nil
}

func (c *Client) buildURL(req *Request) string {
	return c.baseURL + "/" + strings.TrimLeft(req.Path, "/")
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

func encodeBody(body any) ([]byte, string, error) {
	switch value := body.(type) {
	case nil:
		return nil, "", nil
	case string:
		return []byte(value), constants.ContentTypeText, nil
	case []byte:
		return value, constants.ContentTypeText, nil
	default:
		return nil, "", fmt.Errorf("%w: unsupported request body type %T", igdb.ErrInvalidArgument, body)
	}
}

// ClassifyError classifies a failed round trip as a timeout or a transport error.
func ClassifyError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", igdb.ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", igdb.ErrTimeout, err)
	}

	return fmt.Errorf("%w: %w", igdb.ErrTransport, err)
}

func errorLabel(err error, resp *Response) string {
	switch {
	case resp != nil:
		return statusLabel(resp.StatusCode)
	case errors.Is(err, igdb.ErrTimeout):
		return "timeout"
	default:
		return "error"
	}
}

// spanBody ends the media span when the body is closed.
type spanBody struct {
	io.ReadCloser
	span trace.Span
}

func (b *spanBody) Close() error {
	defer b.span.End()

	return b.ReadCloser.Close()
}

// leveledLogger adapts igdb.Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger igdb.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, toFields(keysAndValues))
}

func toFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return fields
}
