package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func requestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return "unknown"
}

// リクエストを1行ずつ記録する。
// handlerのpanicもここで拾って500にする。
func RequestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			start := time.Now()
			req := c.Request()

			defer func() {
				if rec := recover(); rec != nil {
					var errMsg string
					if e, ok := rec.(error); ok {
						errMsg = e.Error()
					} else {
						errMsg = fmt.Sprintf("%v", rec)
					}
					logger.Error().
						Str("request_id", requestID(c)).
						Str("method", req.Method).
						Str("url", req.URL.String()).
						Str("error", errMsg).
						Msg("request panicked")

					err = c.JSON(http.StatusInternalServerError, map[string]string{
						"error": "internal error",
					})
				}
			}()

			err = next(c)
			if err != nil {
				//echoのエラーハンドラに書かせる
				c.Error(err)
			}

			status := c.Response().Status
			ev := logger.Info()
			if status >= http.StatusInternalServerError {
				ev = logger.Error()
			}
			ev.Str("request_id", requestID(c)).
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Int("status", status).
				Dur("latency", time.Since(start)).
				Msg("request completed")

			return nil
		}
	}
}
