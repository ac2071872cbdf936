package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// MovementFilter filtros de consulta del libro de movimientos. Los campos vacíos
// no filtran. LocationID casa contra origen O destino.
type MovementFilter struct {
	ItemID      string
	LocationID  string
	Kind        string
	WorkOrder   string
	Responsible string
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// LocationStock cantidad agregada de un artículo en una ubicación.
type LocationStock struct {
	LocationID string
	Quantity   decimal.Decimal
}

// ItemStock cantidad agregada de un artículo (en una ubicación o en total).
type ItemStock struct {
	ItemID   string
	ItemName string
	Unit     string
	Quantity decimal.Decimal
}

// MovementRepository define el puerto de persistencia del libro de movimientos (DIP).
// Insert es la única escritura: el libro es append-only y las agregaciones de stock
// se derivan siempre de él, nunca de un contador mutable.
type MovementRepository interface {
	Insert(ctx context.Context, movement *entity.Movement) error
	Query(ctx context.Context, filter MovementFilter) ([]*entity.Movement, error)

	// SumAt aplica la regla de signos para una (ubicación, artículo); 0 sin movimientos.
	SumAt(ctx context.Context, locationID, itemID string) (decimal.Decimal, error)
	// SumTotal stock total del artículo en todas las ubicaciones.
	SumTotal(ctx context.Context, itemID string) (decimal.Decimal, error)
	// SumByLocation desglose por ubicación del stock de un artículo.
	SumByLocation(ctx context.Context, itemID string) ([]LocationStock, error)
	// SnapshotAt stock por artículo en una ubicación (solo artículos con movimientos).
	SnapshotAt(ctx context.Context, locationID string) ([]ItemStock, error)

	// ExistsForLocation indica si la ubicación aparece en algún movimiento
	// (guarda de borrado: las ubicaciones referenciadas no se eliminan).
	ExistsForLocation(ctx context.Context, locationID string) (bool, error)
}
