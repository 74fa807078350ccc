package dto

import (
	"github.com/jhoicas/inventory-ledger/internal/domain"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
)

// Funciones de mapeo explícitas entre entidades y DTOs (sin binding reflexivo).

// NewMovementResponse convierte un movimiento del libro en su representación de salida.
func NewMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		MovementID:   m.MovementID,
		ProductID:    m.ProductID,
		FromLocation: m.FromLocation,
		ToLocation:   m.ToLocation,
		Qty:          m.Qty,
		Timestamp:    m.Timestamp,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// NewMovementResponses convierte una lista conservando el orden. Nunca devuelve nil.
func NewMovementResponses(list []*entity.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, NewMovementResponse(m))
	}
	return out
}

// NewFieldErrors convierte los rechazos de dominio en slots de error por campo.
func NewFieldErrors(verr *domain.ValidationError) []FieldErrorResponse {
	if verr == nil {
		return nil
	}
	out := make([]FieldErrorResponse, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		out = append(out, FieldErrorResponse{Field: f.Field, Reason: f.Reason, Message: f.Message})
	}
	return out
}
