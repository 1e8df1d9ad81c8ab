package server

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/viewkit/pkg/browser"
	"github.com/dmitrymomot/viewkit/pkg/useragent"
)

// ParseResponse is the body of /v1/parse and /v1/me.
type ParseResponse struct {
	UserAgent string              `json:"user_agent" yaml:"user_agent"`
	Result    useragent.UserAgent `json:"result" yaml:"result"`
	Summary   string              `json:"summary" yaml:"summary"`
}

func newParseResponse(raw string, info browser.Info) ParseResponse {
	return ParseResponse{UserAgent: raw, Result: info.UserAgent, Summary: info.Summary()}
}

type handlers struct {
	detector *browser.Detector
	logger   *slog.Logger
}

// parse classifies the "ua" query parameter, falling back to the caller's
// own User-Agent header when the parameter is absent.
func (h *handlers) parse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	raw := r.UserAgent()
	if q.Has("ua") {
		raw = q.Get("ua")
	}
	render(w, r, h.logger, http.StatusOK, newParseResponse(raw, h.detector.Detect(raw)))
}

// me returns the classification the detection middleware stored for this
// request.
func (h *handlers) me(w http.ResponseWriter, r *http.Request) {
	info, ok := browser.FromContext(r.Context())
	if !ok {
		renderError(w, r, h.logger, http.StatusInternalServerError, "user agent detection is not configured")
		return
	}
	render(w, r, h.logger, http.StatusOK, newParseResponse(r.UserAgent(), info))
}

func (h *handlers) notFound(w http.ResponseWriter, r *http.Request) {
	renderError(w, r, h.logger, http.StatusNotFound, "not found")
}

func (h *handlers) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	renderError(w, r, h.logger, http.StatusMethodNotAllowed, "method not allowed")
}
