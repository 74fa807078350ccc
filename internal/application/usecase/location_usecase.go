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

// LocationUseCase casos de uso de ubicaciones. Mismo ciclo de vida que productos:
// alta con unicidad de ID y luego solo edición del nombre.
type LocationUseCase struct {
	repo      repository.LocationRepository
	movements repository.MovementRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, movements repository.MovementRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo, movements: movements}
}

// Create crea una ubicación. Falla con domain.DuplicateIDError si el ID ya existe.
func (uc *LocationUseCase) Create(ctx context.Context, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	id := strings.TrimSpace(in.LocationID)
	verr := &domain.ValidationError{}
	if id == "" {
		verr.Add("location_id", domain.ReasonRequired, "location_id es requerido")
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
		return nil, &domain.DuplicateIDError{Field: "location_id", ID: id}
	}

	now := time.Now()
	location := &entity.Location{
		LocationID: id,
		Name:       in.Name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, location); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, &domain.DuplicateIDError{Field: "location_id", ID: id}
		}
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene una ubicación por ID. Devuelve (nil, nil) si no existe.
func (uc *LocationUseCase) GetByID(ctx context.Context, id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// View devuelve la ubicación con las entradas (destino) y salidas (origen) que la involucran.
func (uc *LocationUseCase) View(ctx context.Context, id string) (*dto.LocationDetailResponse, error) {
	location, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	in, err := uc.movements.List(ctx, repository.MovementFilter{ToLocation: id})
	if err != nil {
		return nil, err
	}
	out, err := uc.movements.List(ctx, repository.MovementFilter{FromLocation: id})
	if err != nil {
		return nil, err
	}
	return &dto.LocationDetailResponse{
		Location:     *toLocationResponse(location),
		MovementsIn:  dto.NewMovementResponses(in),
		MovementsOut: dto.NewMovementResponses(out),
	}, nil
}

// Update reemplaza el nombre. El ID nunca cambia. Devuelve (nil, nil) si no existe.
func (uc *LocationUseCase) Update(ctx context.Context, id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		verr := &domain.ValidationError{}
		verr.Add("name", domain.ReasonRequired, "name es requerido")
		return nil, verr
	}
	location, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	location.Name = in.Name
	location.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// List lista todas las ubicaciones ordenadas por ID.
func (uc *LocationUseCase) List(ctx context.Context) (*dto.LocationListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{Items: items, Total: len(items)}, nil
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		LocationID: l.LocationID,
		Name:       l.Name,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}
