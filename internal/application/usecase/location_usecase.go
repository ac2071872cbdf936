package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para ubicaciones (almacén central y furgonetas).
type LocationUseCase struct {
	repo    repository.LocationRepository
	movRepo repository.MovementRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, movRepo repository.MovementRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo, movRepo: movRepo}
}

// Create crea una ubicación nueva (warehouse o van).
func (uc *LocationUseCase) Create(ctx context.Context, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Name == "" || !entity.ValidLocationKind(in.Kind) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	location := &entity.Location{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Kind:      in.Kind,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene una ubicación por ID.
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

// Update renombra una ubicación; el tipo no cambia una vez creada.
func (uc *LocationUseCase) Update(ctx context.Context, id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	if in.Name != "" {
		location.Name = in.Name
	}
	location.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// List lista ubicaciones con paginación; kind vacío = todas.
func (uc *LocationUseCase) List(ctx context.Context, kind string, limit, offset int) (*dto.LocationListResponse, error) {
	if kind != "" && !entity.ValidLocationKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(ctx, kind, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return &dto.LocationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una ubicación solo si no tiene movimientos referenciados.
func (uc *LocationUseCase) Delete(ctx context.Context, id string) error {
	location, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if location == nil {
		return domain.ErrNotFound
	}
	inUse, err := uc.movRepo.ExistsForLocation(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrLocationInUse
	}
	return uc.repo.Delete(ctx, id)
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Kind:      l.Kind,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
