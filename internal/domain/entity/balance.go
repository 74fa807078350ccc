package entity

// BalanceRow es el saldo neto de un producto en una ubicación, derivado de los movimientos.
// No se persiste.
type BalanceRow struct {
	ProductID    string
	ProductName  string
	LocationID   string
	LocationName string
	Qty          int
}
