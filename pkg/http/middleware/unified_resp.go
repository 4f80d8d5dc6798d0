package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/obsworks/telegraf-confd/internal/consts"
	httpx "github.com/obsworks/telegraf-confd/pkg/http"
)

// UnifiedResponseMiddleware wraps successful handler output in the standard
// envelope. Handlers put response data in c.Locals(consts.DETAIL) or mark a
// data-less operation with c.Locals(consts.OPERATION). Handlers that write
// the body themselves (e.g. file downloads) set neither and pass through
// untouched, as do error envelopes already written with a non-2xx status.
func UnifiedResponseMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil {
			return err
		}

		status := c.Response().StatusCode()
		if status >= fiber.StatusOK && status < fiber.StatusMultipleChoices {
			if detail := c.Locals(consts.DETAIL); detail != nil {
				return httpx.WithRepJSON(c, detail)
			}

			if c.Locals(consts.OPERATION) != nil {
				return httpx.WithRepNotDetail(c)
			}
		}

		return nil
	}
}
