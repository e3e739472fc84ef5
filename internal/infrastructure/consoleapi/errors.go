package consoleapi

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/orris-inc/statsboard/internal/shared/errors"
)

// transportError is a failure to reach the console at all.
type transportError struct {
	err error
}

func (e *transportError) Error() string {
	return fmt.Sprintf("console unreachable: %v", e.err)
}

func (e *transportError) Unwrap() error {
	return e.err
}

// statusError is a non-2xx answer from the console.
type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	if e.body == "" {
		return fmt.Sprintf("console responded with status %d", e.status)
	}
	return fmt.Sprintf("console responded with status %d: %s", e.status, e.body)
}

// toUpstreamError reports transport and status failures as upstream AppErrors.
// Context errors pass through untouched.
func toUpstreamError(err error) error {
	if err == nil || errors.GetAppError(err) != nil {
		return err
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		var te *transportError
		if !stderrors.As(err, &te) {
			return err
		}
	}
	return errors.NewUpstreamError("console request failed", err.Error())
}

func isRetryable(err error) bool {
	var te *transportError
	if stderrors.As(err, &te) {
		return true
	}
	var se *statusError
	if stderrors.As(err, &se) {
		return se.status >= http.StatusInternalServerError || se.status == http.StatusTooManyRequests
	}
	return false
}
