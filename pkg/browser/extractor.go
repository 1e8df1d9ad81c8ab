package browser

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a ContextExtractor for the logger that adds the
// "ua" group (browser, os, device) to records logged with a request context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		info, ok := FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.Group("ua",
			slog.String("browser", info.Browser.Name),
			slog.String("os", info.OS.Name),
			slog.String("device", info.Device.String()),
		), true
	}
}
