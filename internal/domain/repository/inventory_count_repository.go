package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// InventoryCountRepository define el puerto de persistencia de recuentos físicos (DIP).
// Las variantes ForUpdate bloquean la cabecera del recuento para que la comprobación
// "ya finalizado" y la escritura ocurran sin carrera dentro de la misma transacción.
type InventoryCountRepository interface {
	// Create persiste cabecera y líneas del recuento.
	Create(ctx context.Context, count *entity.InventoryCount) error
	GetByID(ctx context.Context, id string) (*entity.InventoryCount, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entity.InventoryCount, error)
	// UpdateLine fija contado y diferencia de una línea; ErrNotFound si no existe.
	UpdateLine(ctx context.Context, countID, itemID string, counted, difference decimal.Decimal) error
	SetStatus(ctx context.Context, id, status string) error
	// List cabeceras (sin líneas), más recientes primero; locationID vacío = todas.
	List(ctx context.Context, locationID string, limit, offset int) ([]*entity.InventoryCount, error)
}
