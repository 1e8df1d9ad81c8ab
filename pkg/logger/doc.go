// Package logger builds *slog.Logger values from functional options and adds
// request-scoped attributes pulled out of context.Context.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler from the configured
// Format and wraps it in a ContextHandler. The ContextHandler runs every
// registered ContextExtractor for each record, so values such as the request
// id or the classified user agent follow a request through all log lines
// without being passed around explicitly.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "uaserver"),
//	    logger.WithLevelName(os.Getenv("LOG_LEVEL")),
//	    logger.WithContextExtractors(server.RequestIDExtractor(), browser.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "classified request",
//	    logger.UserAgent(r.UserAgent()),
//	    logger.Duration(time.Since(start)),
//	)
//
// # Options
//
//   - WithEnvironment, WithDevelopment, WithStaging, WithProduction: level
//     and format presets plus service/env attributes.
//   - WithFormat, WithTextFormatter, WithJSONFormatter: output format.
//   - WithLevel, WithLevelName: minimum level.
//   - WithOutput, WithSource, WithAttr: destination, caller info, static attributes.
//   - WithContextExtractors: attributes taken from the context.
//
// Attribute helpers in attr.go keep key names consistent. Error and Errors
// return an empty attribute for nil errors, which slog drops:
//
//	log.Info("keyword table loaded", logger.Error(err))
package logger
