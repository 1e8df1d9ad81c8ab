package httpserver

import "log/slog"

// Option configures a Server.
type Option func(*Server)

// WithLogger supplies the logger used for lifecycle events. Nil discards them.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}
