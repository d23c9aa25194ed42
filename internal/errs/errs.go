// Package errs define el único tipo de error que cruza hacia la capa HTTP.
//
// Lecturas sin resultados => 404, escrituras sin filas afectadas => 400.
// Cualquier otro error que llegue al borde HTTP se trata como 500.
package errs

import (
	"net/http"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldError es un error de validación asociado a un campo del payload.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError lleva el status HTTP junto al mensaje para el cliente.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`

	cause error
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Is compara por status, así errors.Is(err, NotFound) funciona con cualquier mensaje.
func (e *HTTPError) Is(target error) bool {
	t, ok := target.(*HTTPError)
	if !ok {
		return false
	}
	return t.Status == e.Status
}

// WithCause adjunta el error original (driver, red) sin exponerlo al cliente.
func (e *HTTPError) WithCause(err error) *HTTPError {
	cp := *e
	cp.cause = err
	return &cp
}

// Sentinelas para errors.Is.
var (
	NotFound     = &HTTPError{Status: http.StatusNotFound}
	BadRequest   = &HTTPError{Status: http.StatusBadRequest}
	Unauthorized = &HTTPError{Status: http.StatusUnauthorized}
)

func newHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

func NewNotFoundError(message string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message)
}

func NewBadRequestError(message string, fieldErrors ...FieldError) *HTTPError {
	e := newHTTPError(http.StatusBadRequest, message)
	e.Errors = fieldErrors
	return e
}

func NewUnauthorizedError(message string) *HTTPError {
	return newHTTPError(http.StatusUnauthorized, message)
}

func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}

// Humanize convierte nombres de columna (owner_id, cat_name) en texto legible.
func Humanize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.TrimSuffix(strings.ToLower(text), "_id")
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}
