package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ItemAlert artículo cuyo stock total está por debajo de su umbral de reposición.
type ItemAlert struct {
	Item  entity.Item
	Total decimal.Decimal
}

// ItemRepository define el puerto de persistencia para artículos (DIP).
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	// List busca por clave normalizada (sin tildes); search vacío = todos.
	List(ctx context.Context, search string, limit, offset int) ([]*entity.Item, error)
	ListActive(ctx context.Context) ([]*entity.Item, error)
	// ListBelowThreshold artículos activos con stock total < umbral de alerta.
	ListBelowThreshold(ctx context.Context) ([]ItemAlert, error)
}
