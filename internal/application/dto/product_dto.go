package dto

import "time"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateProductRequest entrada para editar un producto. El identificador viene en la ruta
// y nunca se modifica, aunque el cliente envíe product_id en el cuerpo.
type UpdateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ProductID   string    `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// ProductDetailResponse producto con su historial de movimientos (más recientes primero).
type ProductDetailResponse struct {
	Product   ProductResponse    `json:"product"`
	Movements []MovementResponse `json:"movements"`
}
