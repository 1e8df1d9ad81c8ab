package browser

import "net/http"

// Middleware classifies the request's User-Agent header once and stores the
// result in the request context.
func Middleware(d *Detector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := d.Detect(r.UserAgent())
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), info)))
		})
	}
}
