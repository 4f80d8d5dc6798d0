package consts

// unified response locals keys
const (
	// DETAIL is set when a handler has response data to return,
	// e.g: c.Locals(DETAIL, value)
	DETAIL = "detail"

	// OPERATION is set when a handler only needs to report the operation
	// result without data, e.g: c.Locals(OPERATION, "")
	OPERATION = "operation"
)
