package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/inventory-ledger/internal/application/dto"
	"github.com/jhoicas/inventory-ledger/internal/domain"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
)

// ProductUseCase casos de uso de productos: alta con unicidad de ID, consulta, edición y listado.
// No hay borrado.
type ProductUseCase struct {
	repo      repository.ProductRepository
	movements repository.MovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, movements repository.MovementRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, movements: movements}
}

// Create crea un producto. Falla con domain.DuplicateIDError si el ID ya existe.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	id := strings.TrimSpace(in.ProductID)
	verr := &domain.ValidationError{}
	if id == "" {
		verr.Add("product_id", domain.ReasonRequired, "product_id es requerido")
	}
	if strings.TrimSpace(in.Name) == "" {
		verr.Add("name", domain.ReasonRequired, "name es requerido")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.DuplicateIDError{Field: "product_id", ID: id}
	}

	now := time.Now()
	product := &entity.Product{
		ProductID:   id,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		// La verificación previa puede perder una carrera; el almacén tiene la última palabra.
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, &domain.DuplicateIDError{Field: "product_id", ID: id}
		}
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// View devuelve el producto con sus movimientos, más recientes primero.
func (uc *ProductUseCase) View(ctx context.Context, id string) (*dto.ProductDetailResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	movements, err := uc.movements.List(ctx, repository.MovementFilter{ProductID: id})
	if err != nil {
		return nil, err
	}
	return &dto.ProductDetailResponse{
		Product:   *toProductResponse(product),
		Movements: dto.NewMovementResponses(movements),
	}, nil
}

// Update reemplaza nombre y descripción. El ID nunca cambia. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		verr := &domain.ValidationError{}
		verr.Add("name", domain.ReasonRequired, "name es requerido")
		return nil, verr
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	product.Name = in.Name
	product.Description = in.Description
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista todos los productos ordenados por ID.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ProductID:   p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
