package smoketest

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta GET /test-api/{url}. La URL base viaja escapada en el path
// (http%3A%2F%2Fhost%3A8080%2Fapi%2Fv1); si llega sin escapar también se acepta.
func RegisterRoutes(r chi.Router, runner *Runner) {
	r.Get("/test-api/*", runHandler(runner))
}

// runHandler godoc
// @Summary Correr smoke test contra otra instancia
// @Description Ejecuta testUserList, testSingleUser, testLogin y testLoginError contra la URL dada. Siempre responde 200; "message" es false si algún paso falló.
// @Tags test-api
// @Produce json
// @Param url path string true "URL base escapada, p.ej. http%3A%2F%2Flocalhost%3A8080%2Fapi%2Fv1"
// @Success 200 {object} Report
// @Router /test-api/{url} [get]
func runHandler(runner *Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "*")
		if unescaped, err := url.PathUnescape(raw); err == nil {
			raw = unescaped
		}

		rep := runner.Run(r.Context(), raw)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(rep)
	}
}
