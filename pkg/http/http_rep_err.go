package http

import (
	"github.com/gofiber/fiber/v2"
)

type ResponseErr struct {
	ErrCode int    `json:"code"`
	ErrMsg  any    `json:"errMsg"`
	Path    string `json:"path,omitempty"`
}

// WithRepErr returns an error envelope with the path field, using the HTTP
// status mapped from the app code.
func WithRepErr(c *fiber.Ctx, code int, errMsg string, path string) error {
	return c.Status(httpStatus(code)).JSON(ResponseErr{
		ErrCode: code,
		ErrMsg:  errMsg,
		Path:    path,
	})
}

// WithRepErrMsg returns an error envelope with the path field.
func WithRepErrMsg(c *fiber.Ctx, code int, errMsg string, path string) error {
	return c.Status(httpStatus(code)).JSON(ResponseErr{
		ErrCode: code,
		ErrMsg:  errMsg,
		Path:    path,
	})
}

// httpStatus maps an app code onto the HTTP status written to the wire.
func httpStatus(code int) int {
	switch {
	case code >= 4040 && code < 4050:
		return fiber.StatusNotFound
	case code >= 4000 && code < 5000:
		return fiber.StatusBadRequest
	case code == 200:
		return fiber.StatusOK
	default:
		return fiber.StatusInternalServerError
	}
}
