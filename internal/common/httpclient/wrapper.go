package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/punyakios/go-kios-client/internal/common"
	"github.com/punyakios/go-kios-client/internal/common/idgenerator"
	xlog "github.com/punyakios/go-kios-client/internal/common/log"
	"github.com/punyakios/go-kios-client/internal/common/metrics"
)

const (
	HeaderAppVersion    = "X-App-Version"
	HeaderAppPlatform   = "X-App-Platform"
	HeaderCorrelationID = "X-Correlation-Id"
)

// TokenSource provides the bearer token of the signed-in user, empty when signed out.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type RequestWrapper struct {
	client     *resty.Client
	metrics    metrics.Metrics
	clientName string
	logPrefix  string

	tokens     TokenSource
	ids        idgenerator.Generator
	appVersion string
	platform   string
}

type WrapperOption func(*RequestWrapper)

func WithTokenSource(tokens TokenSource) WrapperOption {
	return func(w *RequestWrapper) { w.tokens = tokens }
}

func WithAppInfo(version, platform string) WrapperOption {
	return func(w *RequestWrapper) {
		w.appVersion = version
		w.platform = platform
	}
}

func WithIDGenerator(ids idgenerator.Generator) WrapperOption {
	return func(w *RequestWrapper) { w.ids = ids }
}

func NewRequestWrapper(client *resty.Client, metrics metrics.Metrics, clientName, logPrefix string, opts ...WrapperOption) *RequestWrapper {
	w := &RequestWrapper{
		client:     client,
		metrics:    metrics,
		clientName: clientName,
		logPrefix:  logPrefix,
		ids:        idgenerator.New(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// DoRequest sends one request. A transport failure wraps common.ErrNetworkUnreachable,
// a non-2xx answer returns the response together with a *common.ServerError.
func (w *RequestWrapper) DoRequest(ctx context.Context, method, url string, reqFunc func(*resty.Request) *resty.Request) (*resty.Response, error) {
	startTime := time.Now()
	method = strings.ToUpper(method)

	correlationID := xlog.CorrelationID(ctx)
	if correlationID == "" {
		correlationID = w.ids.Generate("KIOS")
		ctx = xlog.WithCorrelationID(ctx, correlationID)
	}

	logFields := []xlog.Field{
		xlog.String("client", w.clientName),
		xlog.String("url", url),
		xlog.String("method", method),
	}

	xlog.Info(ctx, w.logPrefix, append(logFields, xlog.String("message", "send request"))...)

	req := w.client.R().
		SetContext(ctx).
		SetHeader(HeaderCorrelationID, correlationID)
	if w.appVersion != "" {
		req.SetHeader(HeaderAppVersion, w.appVersion)
	}
	if w.platform != "" {
		req.SetHeader(HeaderAppPlatform, w.platform)
	}
	if w.tokens != nil {
		token, err := w.tokens.Token(ctx)
		if err != nil {
			xlog.Warn(ctx, w.logPrefix, append(logFields, xlog.String("message", "failed to read session token"), xlog.Err(err))...)
		}
		if token != "" {
			req.SetAuthToken(token)
		}
	}
	if reqFunc != nil {
		req = reqFunc(req)
	}

	var httpRes *resty.Response
	var err error

	switch method {
	case http.MethodGet:
		httpRes, err = req.Get(url)
	case http.MethodPost:
		httpRes, err = req.Post(url)
	case http.MethodPut:
		httpRes, err = req.Put(url)
	case http.MethodPatch:
		httpRes, err = req.Patch(url)
	case http.MethodDelete:
		httpRes, err = req.Delete(url)
	default:
		return nil, fmt.Errorf("%w: HTTP method %s", common.ErrUnsupportedOperation, method)
	}

	if err != nil {
		w.record(startTime, method, url, 0)
		xlog.Warn(ctx, w.logPrefix, append(logFields, xlog.Err(err))...)
		return nil, fmt.Errorf("failed send request: %w: %w", common.ErrNetworkUnreachable, err)
	}

	w.record(startTime, method, url, httpRes.StatusCode())

	logFields = append(logFields,
		xlog.String("httpStatusCode", httpRes.Status()),
		xlog.Int("responseSize", len(httpRes.Body())),
	)

	if !httpRes.IsSuccess() {
		xlog.Warn(ctx, w.logPrefix, append(logFields, xlog.String("httpResponse", string(httpRes.Body())))...)
		return httpRes, &common.ServerError{
			StatusCode: httpRes.StatusCode(),
			Message:    errorMessage(httpRes),
		}
	}

	xlog.Info(ctx, w.logPrefix, logFields...)
	xlog.Debug(ctx, w.logPrefix, xlog.String("httpResponse", string(httpRes.Body())))

	return httpRes, nil
}

func (w *RequestWrapper) record(startTime time.Time, method, url string, statusCode int) {
	if w.metrics == nil {
		return
	}

	w.metrics.GetHTTPClientPrometheus().Record(
		time.Since(startTime),
		w.clientName,
		method,
		url,
		statusCode,
	)
}

func errorMessage(res *resty.Response) string {
	if msg := gjson.GetBytes(res.Body(), "message"); msg.Exists() && msg.String() != "" {
		return msg.String()
	}
	return http.StatusText(res.StatusCode())
}
