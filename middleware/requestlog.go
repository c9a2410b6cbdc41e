package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"ziada-travel/logger"
	"ziada-travel/types"
	"ziada-travel/utils"
)

const maxLoggedBody = 4096

// RequestLog records mutating requests through the async logger. GET traffic
// is skipped; the audit trail exists for form submissions, not page views.
func RequestLog(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodGet || c.Method() == fiber.MethodHead {
			return c.Next()
		}

		requestBody := utils.Truncate(string(c.Body()), maxLoggedBody)
		err := c.Next()

		responseBody := ""
		if ct := string(c.Response().Header.ContentType()); strings.HasPrefix(ct, fiber.MIMEApplicationJSON) {
			responseBody = utils.Truncate(string(c.Response().Body()), maxLoggedBody)
		}

		asyncLogger.Log(types.LogEntry{
			Method:       c.Method(),
			URL:          c.OriginalURL(),
			RequestBody:  requestBody,
			ResponseBody: responseBody,
			StatusCode:   c.Response().StatusCode(),
			CreatedAt:    time.Now(),
		})
		return err
	}
}
