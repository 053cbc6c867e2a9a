package jsonclient

import (
	"context"
)

// Logger specifies a minimal interface to allow jsonclient to log errors.
type Logger interface {
	Debugf(ctx context.Context, format string, args ...interface{})
}

var logger Logger

// RegisterLogger registers a logger to be used by jsonclient.
// This keeps jsonclient free of a hard dependency on the SDK's logging package.
func RegisterLogger(l Logger) {
	logger = l
}

func logError(ctx context.Context, dontLog bool, method, url, errorMsg string, code int) {
	if logger != nil && !dontLog {
		logger.Debugf(ctx, "http %s request to URL '%s' returned error response (code %d): %s", method, url, code, errorMsg)
	}
}

func logNetworkError(ctx context.Context, dontLog bool, method, url string, err error) {
	if logger != nil && !dontLog {
		logger.Debugf(ctx, "http %s request to URL '%s' failed: %v", method, url, err)
	}
}
