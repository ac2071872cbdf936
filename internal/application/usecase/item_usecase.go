package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/pkg/normalize"
)

// ItemUseCase casos de uso CRUD para artículos.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create crea un artículo nuevo.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.AlertThreshold.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.Item{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Unit:           in.Unit,
		AlertThreshold: in.AlertThreshold,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un artículo por ID.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// Update actualiza nombre, unidad, umbral o estado de un artículo.
// Los artículos no se borran: se desactivan para no romper el histórico.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != "" {
		item.Name = in.Name
	}
	if in.Unit != "" {
		item.Unit = in.Unit
	}
	if in.AlertThreshold != nil {
		if in.AlertThreshold.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.AlertThreshold = *in.AlertThreshold
	}
	if in.Active != nil {
		item.Active = *in.Active
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List busca artículos por nombre sin distinguir tildes ni mayúsculas.
func (uc *ItemUseCase) List(ctx context.Context, search string, limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.repo.List(ctx, normalize.Fold(search), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toItemResponse(i))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Alerts artículos activos con stock total por debajo de su umbral.
func (uc *ItemUseCase) Alerts(ctx context.Context) ([]dto.ItemAlertResponse, error) {
	alerts, err := uc.repo.ListBelowThreshold(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, dto.ItemAlertResponse{
			Item:  *toItemResponse(&a.Item),
			Total: a.Total,
		})
	}
	return out, nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:             i.ID,
		Name:           i.Name,
		Unit:           i.Unit,
		AlertThreshold: i.AlertThreshold,
		Active:         i.Active,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}
