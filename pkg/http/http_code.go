package http

var (
	Failed = failed(500, "Request failed")

	// BadRequest 400
	BadRequest                    = failed(4000, "Bad request")
	RequestParameterParsingFailed = failed(4001, "Request parameter parsing failed")
	ConfigNameIsRequired          = failed(4002, "Configuration name is required")
	TomlContentIsEmpty            = failed(4003, "TOML content is empty")
	InvalidTomlSyntax             = failed(4004, "Invalid TOML syntax")

	// NotFound 404
	NotFound       = failed(4040, "Not found")
	ConfigNotFound = failed(4041, "Configuration not found")

	InternalError = failed(5000, "Internal error, please contact the administrator")
)

var (
	Success = success(200, "Request Success")
)

func failed(code int, msg string) *Response {
	return &Response{
		Code:   code,
		Msg:    msg,
		Detail: nil,
	}
}

func success(code int, msg string) *Response {
	return &Response{
		Code:   code,
		Msg:    msg,
		Detail: nil,
	}
}
