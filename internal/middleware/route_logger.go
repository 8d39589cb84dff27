package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// MetricsRecorder receives the final status code of each request. The health
// module implements this with in-process counters.
type MetricsRecorder interface {
	Record(statusCode int)
}

// RouteLogger logs each request entry and exit with duration and trace ID,
// and feeds the status code to the recorder when one is wired.
func RouteLogger(metrics MetricsRecorder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "no-trace-id"
		}
		start := time.Now()
		log.Info().Str("trace_id", traceID).Str("method", c.Method()).Str("path", c.Path()).Msg("Entering request")
		err := c.Next()
		ms := time.Since(start).Milliseconds()
		// The global error handler has not run yet when err is non-nil, so
		// the response still shows the pre-error status.
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}
		log.Info().Str("trace_id", traceID).Str("method", c.Method()).Str("path", c.Path()).Int("status", status).Int64("ms", ms).Msg("Exiting request")
		if metrics != nil {
			metrics.Record(status)
		}
		return err
	}
}
