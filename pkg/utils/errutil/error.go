package errutil

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/leakgate/pkg/utils/logging"
)

// HandleError sends the error to Sentry and logs it. Sentry is a no-op unless it was initialized.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}

// Warn logs a non-fatal error as a diagnostic without reporting it
func Warn(ctx context.Context, msg string, err error) {
	logging.From(ctx).Warn(msg, "error", err)
}
