package middleware

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/obsworks/telegraf-confd/pkg/http"
	"github.com/obsworks/telegraf-confd/pkg/log"
)

// ExceptionMiddleware recovers from panics and answers with a 500 envelope
// instead of tearing the connection down.
func ExceptionMiddleware(c *fiber.Ctx) error {
	defer func() {
		if err := recover(); err != nil {
			_ = http.WithRepErr(c, http.InternalError.Code, errorToString(err), c.Path())
			log.Errorf("panic: %v", err)
		}
	}()

	return c.Next()
}

func errorToString(err any) string {
	switch v := err.(type) {
	case http.ResponseErr:
		if errMsg, ok := v.ErrMsg.(string); ok {
			return errMsg
		}
		return http.InternalError.Msg
	case error:
		// never leak the stack to the client
		log.Errorf("panic: %v\n%s", v, debug.Stack())
		return http.InternalError.Msg
	default:
		if errMsg, ok := v.(string); ok {
			return errMsg
		}
		return http.InternalError.Msg
	}
}
