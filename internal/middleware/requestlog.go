package middleware

import (
    "time"

    "github.com/labstack/echo/v4"
    "github.com/rs/zerolog"
    "github.com/rs/zerolog/log"
)

// RequestLogger writes one zerolog line per request.  Form values are never
// logged: they may contain a user's name and measurements.
func RequestLogger() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            start := time.Now()
            err := next(c)
            if err != nil {
                c.Error(err)
            }

            status := c.Response().Status
            var ev *zerolog.Event
            switch {
            case status >= 500:
                ev = log.Error().Err(err)
            case status >= 400:
                ev = log.Warn()
            default:
                ev = log.Info()
            }
            ev.Str("method", c.Request().Method).
                Str("path", c.Path()).
                Int("status", status).
                Dur("latency", time.Since(start)).
                Str("ip", c.RealIP()).
                Msg("request")
            return nil
        }
    }
}
