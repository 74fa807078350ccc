package entity

import "time"

// Product representa un tipo de artículo rastreable. ProductID es inmutable tras la creación.
type Product struct {
	ProductID   string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
