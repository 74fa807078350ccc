package entity

import "time"

// Location representa un lugar donde puede residir inventario (bodega, tienda, taller).
type Location struct {
	LocationID string
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
