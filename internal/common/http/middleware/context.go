package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/punyakios/go-kios-client/internal/common/httpclient"
	xlog "github.com/punyakios/go-kios-client/internal/common/log"
)

// Context puts the caller's correlation id, or a new one, into the request context
// and echoes it back in the response.
func (m AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			id := req.Header.Get(httpclient.HeaderCorrelationID)
			if id == "" {
				id = m.ids.Generate("KIOS")
			}

			ctx := xlog.WithCorrelationID(req.Context(), id)
			if txn := newrelic.FromContext(ctx); txn != nil {
				txn.AddAttribute("x-correlation-id", id)
			}

			c.SetRequest(req.WithContext(ctx))
			c.Response().Header().Set(httpclient.HeaderCorrelationID, id)
			return next(c)
		}
	}
}
