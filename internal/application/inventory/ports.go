package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén, pasando repositorios
// atados a esa transacción. Si fn falla no queda nada escrito.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
		movementRepo repository.MovementRepository,
	) error) error
}

// BalancePDFGenerator genera la representación en PDF del reporte de saldos.
type BalancePDFGenerator interface {
	GenerateBalancePDF(ctx context.Context, rows []entity.BalanceRow, generatedAt time.Time) ([]byte, error)
}
