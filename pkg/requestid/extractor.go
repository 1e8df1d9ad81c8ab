package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/viewkit/pkg/logger"
)

// LoggerExtractor returns a ContextExtractor adding "request_id" to records
// logged with a request context.
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return logger.RequestID(id), true
		}
		return slog.Attr{}, false
	}
}
