package dto

// BalanceRowResponse saldo neto de un producto en una ubicación.
type BalanceRowResponse struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`
	Qty          int    `json:"qty"`
}

// BalanceReportResponse reporte de saldos recalculado desde el libro completo.
type BalanceReportResponse struct {
	Rows  []BalanceRowResponse `json:"rows"`
	Total int                  `json:"total"`
}
