// Package apierror provides standardized error response structures for the API
// plus the typed error kinds the business layer raises. All errors returned to
// clients go through this package to ensure consistency and to prevent leaking
// internal details (stack traces, DB errors, etc.).
package apierror

import "errors"

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// ── Error kinds ───────────────────────────────────────────────────────────────
//
// Services wrap their failures with one of these sentinels so handlers can map
// them to HTTP statuses with errors.Is instead of string matching.

var (
	// ErrNoEncontrado: a referenced entity id does not resolve (404).
	ErrNoEncontrado = errors.New("recurso no encontrado")
	// ErrValidacion: malformed, missing or out-of-range input (400).
	ErrValidacion = errors.New("datos invalidos")
	// ErrConflicto: uniqueness violation at the store layer (409).
	ErrConflicto = errors.New("conflicto de unicidad")
	// ErrNoAutorizado: bad credentials or an invalid/expired token (401).
	ErrNoAutorizado = errors.New("no autorizado")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// NoEncontrado builds a not-found error with a caller-facing message.
func NoEncontrado(msg string) error { return &kindError{kind: ErrNoEncontrado, msg: msg} }

// Validacion builds a validation error with a caller-facing message.
func Validacion(msg string) error { return &kindError{kind: ErrValidacion, msg: msg} }

// Conflicto builds a conflict error with a caller-facing message.
func Conflicto(msg string) error { return &kindError{kind: ErrConflicto, msg: msg} }

// NoAutorizado builds an authentication error with a caller-facing message.
func NoAutorizado(msg string) error { return &kindError{kind: ErrNoAutorizado, msg: msg} }
