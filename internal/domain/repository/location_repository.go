package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// LocationRepository define el puerto de persistencia para ubicaciones (DIP).
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	Update(ctx context.Context, location *entity.Location) error
	// List lista ubicaciones; kind vacío = todas.
	List(ctx context.Context, kind string, limit, offset int) ([]*entity.Location, error)
	Delete(ctx context.Context, id string) error
}
