package dto

import "time"

// CreateLocationRequest entrada para crear una ubicación.
type CreateLocationRequest struct {
	LocationID string `json:"location_id"`
	Name       string `json:"name"`
}

// UpdateLocationRequest entrada para editar una ubicación (solo el nombre).
type UpdateLocationRequest struct {
	Name string `json:"name"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	LocationID string    `json:"location_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// LocationListResponse lista de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Total int                `json:"total"`
}

// LocationDetailResponse ubicación con sus entradas y salidas.
type LocationDetailResponse struct {
	Location     LocationResponse   `json:"location"`
	MovementsIn  []MovementResponse `json:"movements_in"`
	MovementsOut []MovementResponse `json:"movements_out"`
}
