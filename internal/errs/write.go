package errs

import (
	"encoding/json"
	"errors"
	"net/http"
)

// StatusOf devuelve el status HTTP que corresponde a err (500 si no es HTTPError).
func StatusOf(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	return http.StatusInternalServerError
}

// Write serializa err como JSON. Los errores no tipados se ocultan detrás de un 500.
func Write(w http.ResponseWriter, err error) {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = NewInternalServerError()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpErr.Status)
	_ = json.NewEncoder(w).Encode(httpErr)
}
