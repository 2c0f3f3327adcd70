package errors

// Response is the machine-readable rendering of an error, used by the
// json and yaml output formats
type Response struct {
	// Error contains the error code (domain.code format)
	Error string `json:"error" yaml:"error"`

	// Message contains a human-readable error message
	Message string `json:"message" yaml:"message"`
}

// ToResponse converts an Error to a response structure
func (e *Error) ToResponse() Response {
	return Response{
		Error:   string(e.Domain) + "." + string(e.Code),
		Message: e.Message,
	}
}

// NewResponse creates a new error response from an error.
// If the error is an *Error, it uses its domain and code.
// Otherwise, it creates a generic internal error response carrying err's text.
func NewResponse(err error) Response {
	var e *Error
	if As(err, &e) {
		return e.ToResponse()
	}

	return Response{
		Error:   string(DomainInternal) + "." + string(CodeInternal),
		Message: err.Error(),
	}
}
