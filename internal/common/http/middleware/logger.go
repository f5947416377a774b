package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	xlog "github.com/punyakios/go-kios-client/internal/common/log"
)

var logMessage = "[HTTP-SERVER]"

// Logger writes one line per request. Bodies are never logged.
func (m AppMiddleware) Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			fields := []xlog.Field{
				xlog.String("method", c.Request().Method),
				xlog.String("path", c.Path()),
				xlog.Int("status", c.Response().Status),
				xlog.Duration("latency", time.Since(start)),
			}
			ctx := c.Request().Context()
			if c.Response().Status >= 500 {
				xlog.Warn(ctx, logMessage, append(fields, xlog.Err(err))...)
			} else {
				xlog.Info(ctx, logMessage, fields...)
			}
			return nil
		}
	}
}
