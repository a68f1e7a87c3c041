package explain

import (
	"context"
	"errors"
	"net/http"

	"github.com/bitop-dev/explain/internal/provider"
)

// Code classifies an *Error. The values match the codes reported by the
// provider layer.
type Code string

const (
	CodeMissingCredential Code = provider.CodeMissingCredential
	CodeUnauthorized      Code = provider.CodeUnauthorized
	CodeRateLimited       Code = provider.CodeRateLimited
	CodeNetwork           Code = provider.CodeNetwork
	CodeTimeout           Code = provider.CodeTimeout
	CodeCanceled          Code = provider.CodeCanceled
	CodeService           Code = provider.CodeService
	CodeEmptyResponse     Code = provider.CodeEmptyResponse
	CodeRequest           Code = provider.CodeRequest
	CodeConfig            Code = provider.CodeConfig
)

// Error is returned for every failed call that reached a provider, and for a
// missing credential. Model is empty when no request was built.
type Error struct {
	Provider  string
	Model     string
	Code      Code
	Status    int
	Message   string
	Retryable bool
	Cause     error
}

// Error renders as "provider/model: message", dropping absent parts.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	switch {
	case msg == "" && e.Code != "":
		msg = string(e.Code)
	case msg == "":
		msg = "error"
	}
	if e.Provider == "" {
		return msg
	}
	if e.Model != "" {
		return e.Provider + "/" + e.Model + ": " + msg
	}
	return e.Provider + ": " + msg
}

func (e *Error) Unwrap() error { return e.Cause }

// IsAuth reports whether err is a missing or rejected credential.
func IsAuth(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Status == http.StatusUnauthorized ||
		e.Status == http.StatusForbidden ||
		e.Code == CodeUnauthorized ||
		e.Code == CodeMissingCredential
}

// IsNetwork reports whether the remote call could not complete at the
// transport level.
func IsNetwork(err error) bool {
	var e *Error
	return errors.As(err, &e) && (e.Code == CodeNetwork || e.Code == CodeTimeout)
}

// IsService reports whether the remote service answered with a failure.
func IsService(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == CodeService || e.Code == CodeRateLimited || e.Status >= 500
}

func IsRateLimited(err error) bool {
	var e *Error
	return errors.As(err, &e) && (e.Status == http.StatusTooManyRequests || e.Code == CodeRateLimited)
}

func IsTimeout(err error) bool {
	var e *Error
	if errors.As(err, &e) && e.Code == CodeTimeout {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func IsCanceled(err error) bool {
	var e *Error
	if errors.As(err, &e) && e.Code == CodeCanceled {
		return true
	}
	return errors.Is(err, context.Canceled)
}

func IsEmptyResponse(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == CodeEmptyResponse
}
