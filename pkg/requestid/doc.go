// Package requestid assigns every HTTP request an identifier.
//
// Middleware keeps a well-formed incoming X-Request-ID header (letters,
// digits, '-' and '_', at most 128 bytes) and otherwise generates a UUIDv7.
// The id is echoed on the response and stored in the request context, where
// FromContext reads it back. LoggerExtractor plugs it into pkg/logger:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
