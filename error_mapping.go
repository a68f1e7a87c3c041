package explain

import (
	"context"
	"errors"

	"github.com/bitop-dev/explain/internal/provider"
)

// mapProviderError turns a Generate failure into an *Error tagged with the
// model that was called. Bare context errors become timeout/canceled; other
// untyped errors pass through unchanged.
func mapProviderError(m ModelRef, err error) error {
	if err == nil {
		return nil
	}
	e := &Error{Provider: m.Provider(), Model: m.Name()}

	var pe *provider.Error
	switch {
	case errors.As(err, &pe):
		if pe.Provider != "" {
			e.Provider = pe.Provider
		}
		e.Code = Code(pe.Code)
		e.Status = pe.Status
		e.Message = pe.Message
		e.Retryable = pe.Retryable
		e.Cause = pe.Cause
	case errors.Is(err, context.DeadlineExceeded):
		e.Code = CodeTimeout
		e.Message = "request timed out"
		e.Retryable = true
		e.Cause = err
	case errors.Is(err, context.Canceled):
		e.Code = CodeCanceled
		e.Message = "request canceled"
		e.Cause = err
	default:
		return err
	}
	return e
}
