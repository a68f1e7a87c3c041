package provider

// Error codes shared by provider implementations.
const (
	CodeMissingCredential = "missing_credential"
	CodeUnauthorized      = "unauthorized"
	CodeRateLimited       = "rate_limited"
	CodeNetwork           = "network_error"
	CodeTimeout           = "timeout"
	CodeCanceled          = "canceled"
	CodeService           = "service_error"
	CodeEmptyResponse     = "empty_response"
	CodeRequest           = "request_error"
	CodeConfig            = "config_error"
)

// Error is returned by providers for every failed Generate call. Code is one
// of the Code* constants; Status is the HTTP status when the service answered.
type Error struct {
	Provider  string
	Code      string
	Status    int
	Message   string
	Retryable bool
	Cause     error
}

// NewError wraps err under code, taking the message from err.
func NewError(providerName, code string, err error) *Error {
	e := &Error{Provider: providerName, Code: code, Cause: err}
	if err != nil {
		e.Message = err.Error()
	}
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" {
		msg = "error"
	}
	if e.Code != "" {
		msg = "[" + e.Code + "] " + msg
	}
	if e.Provider == "" {
		return msg
	}
	return e.Provider + " " + msg
}

func (e *Error) Unwrap() error { return e.Cause }
