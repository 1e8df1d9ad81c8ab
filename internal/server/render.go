package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/viewkit/pkg/logger"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	contentTypeYAML = "application/yaml; charset=utf-8"
)

// wantsYAML reports whether the client asked for YAML, either with
// ?format=yaml or through the Accept header.
func wantsYAML(r *http.Request) bool {
	if f := r.URL.Query().Get("format"); f != "" {
		return strings.EqualFold(f, "yaml") || strings.EqualFold(f, "yml")
	}
	for part := range strings.SplitSeq(r.Header.Get("Accept"), ",") {
		mt, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		switch strings.ToLower(mt) {
		case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
			return true
		}
	}
	return false
}

func render(w http.ResponseWriter, r *http.Request, log *slog.Logger, status int, v any) {
	if wantsYAML(r) {
		data, err := yaml.Marshal(v)
		if err != nil {
			log.ErrorContext(r.Context(), "encode yaml response", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentTypeYAML)
		w.WriteHeader(status)
		_, _ = w.Write(data)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ErrorContext(r.Context(), "encode json response", logger.Error(err))
	}
}

type errorResponse struct {
	Error string `json:"error" yaml:"error"`
}

func renderError(w http.ResponseWriter, r *http.Request, log *slog.Logger, status int, msg string) {
	render(w, r, log, status, errorResponse{Error: msg})
}
