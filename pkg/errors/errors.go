package errors

import (
	"fmt"
	"net/http"
)

// Generales
var ErrNotFound = fmt.Errorf("registro no encontrado")

// HttpError lleva el código HTTP junto con el mensaje para el cliente.
// Err y Context son solo para los logs, nunca se serializan.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Context: context,
	}
}

// NewMissingParameterError se usa cuando falta un parámetro de filtro obligatorio.
func NewMissingParameterError(param string) *HttpError {
	return NewHttpError(
		http.StatusBadRequest,
		fmt.Sprintf("el parámetro '%s' es requerido", param),
		nil,
		map[string]interface{}{"param": param},
	)
}

// ValidationError: violación de un invariante entre campos al crear/actualizar.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InvalidStateError: transición de estado no permitida en una orden de trabajo.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string { return e.Message }

func NewInvalidStateError(format string, args ...interface{}) error {
	return &InvalidStateError{Message: fmt.Sprintf(format, args...)}
}
