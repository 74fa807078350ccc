package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventory-ledger/internal/application/dto"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	invrules "github.com/jhoicas/inventory-ledger/internal/domain/inventory"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
)

// BalanceUseCase deriva el reporte de saldos recorriendo el libro completo en cada solicitud.
// No hay materialización incremental: el saldo nunca se desvía del libro.
type BalanceUseCase struct {
	movements repository.MovementRepository
	products  repository.ProductRepository
	locations repository.LocationRepository
	pdf       BalancePDFGenerator
}

// NewBalanceUseCase construye el caso de uso. pdf puede ser nil si no se exporta a PDF.
func NewBalanceUseCase(
	movements repository.MovementRepository,
	products repository.ProductRepository,
	locations repository.LocationRepository,
	pdf BalancePDFGenerator,
) *BalanceUseCase {
	return &BalanceUseCase{movements: movements, products: products, locations: locations, pdf: pdf}
}

// Rows calcula las filas del reporte: una por par (producto, ubicación) con al menos un movimiento.
func (uc *BalanceUseCase) Rows(ctx context.Context) ([]entity.BalanceRow, error) {
	movements, err := uc.movements.List(ctx, repository.MovementFilter{})
	if err != nil {
		return nil, fmt.Errorf("saldos: listar movimientos: %w", err)
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("saldos: listar productos: %w", err)
	}
	locations, err := uc.locations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("saldos: listar ubicaciones: %w", err)
	}

	productNames := make(map[string]string, len(products))
	for _, p := range products {
		productNames[p.ProductID] = p.Name
	}
	locationNames := make(map[string]string, len(locations))
	for _, l := range locations {
		locationNames[l.LocationID] = l.Name
	}
	return invrules.ComputeBalances(movements, productNames, locationNames), nil
}

// Report devuelve el reporte de saldos listo para la capa de presentación.
func (uc *BalanceUseCase) Report(ctx context.Context) (*dto.BalanceReportResponse, error) {
	rows, err := uc.Rows(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BalanceRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.BalanceRowResponse{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			LocationID:   r.LocationID,
			LocationName: r.LocationName,
			Qty:          r.Qty,
		})
	}
	return &dto.BalanceReportResponse{Rows: out, Total: len(out)}, nil
}

// ReportPDF genera el reporte en PDF y devuelve sus bytes y un nombre de archivo sugerido.
func (uc *BalanceUseCase) ReportPDF(ctx context.Context) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("saldos: generador PDF no configurado")
	}
	rows, err := uc.Rows(ctx)
	if err != nil {
		return nil, "", err
	}
	now := time.Now()
	doc, err := uc.pdf.GenerateBalancePDF(ctx, rows, now)
	if err != nil {
		return nil, "", fmt.Errorf("saldos: generar PDF: %w", err)
	}
	return doc, "saldos-" + now.Format("20060102-150405") + ".pdf", nil
}
