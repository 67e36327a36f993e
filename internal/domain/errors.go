package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrProductNotFound  = errors.New("producto no encontrado")
	ErrInvalidSecretKey = errors.New("clave secreta inválida")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrNoSession        = errors.New("no hay sesión activa")
)

// ValidationError rechaza la entrada antes de tocar la red. Field indica el
// campo ofensivo y Reason el motivo legible para el usuario.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: %s: %s", e.Field, e.Reason)
}

// Is permite errors.Is(err, domain.ErrInvalidInput) sobre cualquier ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError construye un ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NetworkError envuelve un fallo de transporte (timeout, DNS, conexión rechazada).
// La petición nunca llegó a producir una respuesta HTTP; no hay reintento.
type NetworkError struct {
	Op  string // operación lógica, ej. "GET /products"
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("red: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerRejectionError representa una respuesta HTTP no-2xx del backend.
type ServerRejectionError struct {
	Op     string
	Status int
	Body   string // primeros bytes del cuerpo, para diagnóstico
}

func (e *ServerRejectionError) Error() string {
	return fmt.Sprintf("backend rechazó %s: HTTP %d", e.Op, e.Status)
}
