package entity

import "time"

// Movement es una entrada del libro de movimientos: Qty unidades de ProductID pasan de
// FromLocation a ToLocation. Un extremo nil representa el exterior del sistema
// (recepción inicial si falta el origen, consumo o baja si falta el destino).
type Movement struct {
	MovementID   string
	ProductID    string
	FromLocation *string
	ToLocation   *string
	Qty          int
	Timestamp    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasFrom indica si el movimiento sale de una ubicación rastreada.
func (m *Movement) HasFrom() bool { return m.FromLocation != nil }

// HasTo indica si el movimiento entra a una ubicación rastreada.
func (m *Movement) HasTo() bool { return m.ToLocation != nil }

// FromID devuelve el origen o "" si es externo.
func (m *Movement) FromID() string {
	if m.FromLocation == nil {
		return ""
	}
	return *m.FromLocation
}

// ToID devuelve el destino o "" si es externo.
func (m *Movement) ToID() string {
	if m.ToLocation == nil {
		return ""
	}
	return *m.ToLocation
}
