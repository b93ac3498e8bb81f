package api

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/debby0330/aqi-analysis/internal/platform/obs"
)

// requestLogger tags every request with an id, propagates it through the
// user context so obs timing lines correlate with the access log, and logs
// method/path/status/duration and response size on completion.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		reqID := uuid.NewString()
		c.SetUserContext(obs.WithRequestID(c.UserContext(), reqID))
		c.Set("X-Request-ID", reqID)

		err := c.Next()

		log.Printf(
			"req_id=%s method=%s path=%s status=%d bytes=%d dur=%dms",
			reqID, c.Method(), c.Path(), c.Response().StatusCode(),
			len(c.Response().Body()), time.Since(start).Milliseconds(),
		)

		return err
	}
}
