package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
)

// Códigos de rechazo por campo que la capa de presentación muestra junto al input.
const (
	ReasonRequired                 = "required"
	ReasonMissingBothEndpoints     = "missing-both-endpoints"
	ReasonSameSourceAndDestination = "same-source-and-destination"
	ReasonInvalidQuantity          = "invalid-quantity"
	ReasonUnknownProduct           = "unknown-product"
	ReasonUnknownLocation          = "unknown-location"
	ReasonDuplicateID              = "duplicate-id"
)

// FieldError describe un rechazo asociado a un campo concreto del formulario.
type FieldError struct {
	Field   string
	Reason  string
	Message string
}

// ValidationError agrupa los rechazos por campo. Equivale a ErrInvalidInput con errors.Is.
type ValidationError struct {
	Fields []FieldError
}

// Add registra un rechazo para field.
func (e *ValidationError) Add(field, reason, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason, Message: message})
}

// Empty indica si no hay rechazos registrados.
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

// Has indica si algún campo fue rechazado con reason.
func (e *ValidationError) Has(reason string) bool {
	if e == nil {
		return false
	}
	for _, f := range e.Fields {
		if f.Reason == reason {
			return true
		}
	}
	return false
}

// OrNil devuelve nil cuando no hay rechazos, para poder retornar directamente el resultado.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return ErrInvalidInput.Error() + " (" + strings.Join(parts, ", ") + ")"
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// DuplicateIDError indica que el identificador ya existe en la colección. Equivale a ErrDuplicate.
type DuplicateIDError struct {
	Field string
	ID    string
}

func (e *DuplicateIDError) Error() string {
	return ErrDuplicate.Error() + ": " + e.Field + "=" + e.ID
}

func (e *DuplicateIDError) Unwrap() error { return ErrDuplicate }
