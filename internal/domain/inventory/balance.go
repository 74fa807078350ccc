package inventory

import (
	"sort"

	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
)

type balanceKey struct {
	productID  string
	locationID string
}

// ComputeBalances recorre el libro una sola vez: cada movimiento suma Qty al par
// (producto, destino) y resta Qty al par (producto, origen). Se emite una fila por cada par
// tocado al menos una vez, incluso si el neto es cero; los pares sin movimientos no aparecen.
// El resultado se ordena por (product_id, location_id). Si falta un nombre en los mapas se
// usa el identificador.
func ComputeBalances(movements []*entity.Movement, productNames, locationNames map[string]string) []entity.BalanceRow {
	totals := make(map[balanceKey]int)
	for _, m := range movements {
		if m == nil {
			continue
		}
		if m.HasTo() {
			totals[balanceKey{m.ProductID, *m.ToLocation}] += m.Qty
		}
		if m.HasFrom() {
			totals[balanceKey{m.ProductID, *m.FromLocation}] -= m.Qty
		}
	}

	rows := make([]entity.BalanceRow, 0, len(totals))
	for k, qty := range totals {
		rows = append(rows, entity.BalanceRow{
			ProductID:    k.productID,
			ProductName:  nameOr(productNames, k.productID),
			LocationID:   k.locationID,
			LocationName: nameOr(locationNames, k.locationID),
			Qty:          qty,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ProductID != rows[j].ProductID {
			return rows[i].ProductID < rows[j].ProductID
		}
		return rows[i].LocationID < rows[j].LocationID
	})
	return rows
}

// NetExternalFlow devuelve, por producto, entradas externas menos salidas externas.
// Por conservación coincide con la suma de los saldos del producto en todas las ubicaciones.
func NetExternalFlow(movements []*entity.Movement) map[string]int {
	net := make(map[string]int)
	for _, m := range movements {
		if m == nil {
			continue
		}
		switch {
		case !m.HasFrom() && m.HasTo():
			net[m.ProductID] += m.Qty
		case m.HasFrom() && !m.HasTo():
			net[m.ProductID] -= m.Qty
		}
	}
	return net
}

func nameOr(names map[string]string, id string) string {
	if n, ok := names[id]; ok && n != "" {
		return n
	}
	return id
}
