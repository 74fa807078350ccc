package inventory

import (
	"strings"

	"github.com/jhoicas/inventory-ledger/internal/domain"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
)

// NormalizeLocation convierte un extremo vacío o en blanco en "ausente" (nil).
func NormalizeLocation(id string) *string {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return &id
}

// ValidateMovement aplica las reglas estructurales de un movimiento (servicio de dominio puro).
// Las reglas que requieren consultar el almacén (producto/ubicación existentes, ID duplicado)
// quedan a cargo del caso de uso.
func ValidateMovement(m *entity.Movement) *domain.ValidationError {
	verr := &domain.ValidationError{}
	if strings.TrimSpace(m.MovementID) == "" {
		verr.Add("movement_id", domain.ReasonRequired, "movement_id es requerido")
	}
	if strings.TrimSpace(m.ProductID) == "" {
		verr.Add("product_id", domain.ReasonRequired, "product_id es requerido")
	}
	switch {
	case !m.HasFrom() && !m.HasTo():
		verr.Add("from_location", domain.ReasonMissingBothEndpoints,
			"debe indicar al menos una ubicación de origen o de destino")
	case m.HasFrom() && m.HasTo() && *m.FromLocation == *m.ToLocation:
		verr.Add("to_location", domain.ReasonSameSourceAndDestination,
			"origen y destino deben ser distintos")
	}
	if m.Qty <= 0 {
		verr.Add("qty", domain.ReasonInvalidQuantity, "la cantidad debe ser un entero positivo")
	}
	return verr
}
