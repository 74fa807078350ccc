package dto

import "time"

// CreateMovementRequest body para POST /api/movements.
// from_location/to_location vacíos equivalen a "exterior". Sin timestamp se usa la hora actual.
type CreateMovementRequest struct {
	MovementID   string     `json:"movement_id"`
	ProductID    string     `json:"product_id"`
	FromLocation string     `json:"from_location,omitempty"`
	ToLocation   string     `json:"to_location,omitempty"`
	Qty          int        `json:"qty"`
	Timestamp    *time.Time `json:"timestamp,omitempty"`
}

// UpdateMovementRequest body para PUT /api/movements/:id. Sin timestamp se conserva el original.
type UpdateMovementRequest struct {
	ProductID    string     `json:"product_id"`
	FromLocation string     `json:"from_location,omitempty"`
	ToLocation   string     `json:"to_location,omitempty"`
	Qty          int        `json:"qty"`
	Timestamp    *time.Time `json:"timestamp,omitempty"`
}

// MovementResponse salida de un movimiento. Un extremo externo se serializa como null.
type MovementResponse struct {
	MovementID   string    `json:"movement_id"`
	ProductID    string    `json:"product_id"`
	FromLocation *string   `json:"from_location"`
	ToLocation   *string   `json:"to_location"`
	Qty          int       `json:"qty"`
	Timestamp    time.Time `json:"timestamp"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MovementListResponse lista de movimientos ordenada por timestamp descendente.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
